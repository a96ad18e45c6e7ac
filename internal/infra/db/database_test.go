package db

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/young-finance/config"
	"github.com/finance-tracker/young-finance/internal/integration/persistence/model"
)

func newSQLiteDatabase(t *testing.T) *Database {
	t.Helper()

	name := strings.ReplaceAll(uuid.NewString(), "-", "")
	database, err := NewConnection(&config.DatabaseConfig{
		Driver: DriverSQLite,
		URL:    "file:db_" + name + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	return database
}

func TestNewConnection_UnsupportedDriver(t *testing.T) {
	_, err := NewConnection(&config.DatabaseConfig{Driver: "oracle"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestDatabase_Ping(t *testing.T) {
	database := newSQLiteDatabase(t)

	assert.NoError(t, database.Ping(context.Background()))
}

func TestDatabase_MigrateSQLiteSeedsLessonsOnce(t *testing.T) {
	database := newSQLiteDatabase(t)

	require.NoError(t, database.Migrate())
	require.NoError(t, database.Migrate())

	var lessons []model.LessonModel
	require.NoError(t, database.DB().Order("sort_order ASC").Find(&lessons).Error)

	require.Len(t, lessons, 5)
	assert.Equal(t, "Qué es un presupuesto", lessons[0].Title)
	assert.Equal(t, "basic", lessons[0].Level)
	assert.True(t, lessons[0].Active)
	assert.Equal(t, "advanced", lessons[4].Level)
}

func TestSplitStatements(t *testing.T) {
	script := `-- leading comment
INSERT INTO a VALUES (1);

INSERT INTO a
VALUES (2);
SELECT 1`

	statements := splitStatements(script)

	require.Len(t, statements, 3)
	assert.Equal(t, "INSERT INTO a VALUES (1);", statements[0])
	assert.Equal(t, "INSERT INTO a\nVALUES (2);", statements[1])
	assert.Equal(t, "SELECT 1", statements[2])
}
