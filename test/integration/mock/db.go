package mock

import (
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/young-finance/internal/infra/db"
	"github.com/finance-tracker/young-finance/internal/integration/persistence/model"
)

var (
	dbOnce sync.Once
	testDB *Db
	dbErr  error
)

// Db is the shared in-memory database behind the feature suite.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the suite database once and migrates every persistence model.
func NewDb(name string) (*Db, error) {
	dbOnce.Do(func() {
		testDB, dbErr = open(name)
	})
	return testDB, dbErr
}

func open(name string) (*Db, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	d := &Db{
		DbConn: conn,
		models: make(map[string]any),
	}

	for _, m := range model.All() {
		stmt := &gorm.Statement{DB: conn}
		if err := stmt.Parse(m); err != nil {
			return nil, err
		}
		d.models[stmt.Schema.Table] = m
	}

	if err := conn.AutoMigrate(model.All()...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	for table, m := range d.models {
		if !conn.Migrator().HasTable(m) {
			return nil, fmt.Errorf("table %s was not created", table)
		}
	}

	return d, d.ClearDB()
}

// ClearDB removes every row, soft-deleted ones included, and re-seeds the lesson catalog.
func (d *Db) ClearDB() error {
	for table, m := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	return db.SeedLessons(d.DbConn)
}

// GetModel returns the model registered for table.
func (d *Db) GetModel(table string) (any, bool) {
	m, ok := d.models[table]
	return m, ok
}
