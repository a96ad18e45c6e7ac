package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/young-finance/internal/domain/entity"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
	"github.com/finance-tracker/young-finance/internal/integration/persistence"
	"github.com/finance-tracker/young-finance/internal/testutil"
)

func TestLessonRepository_OnlyActiveInOrder(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.NewSeeder(t, db)
	repo := persistence.NewLessonRepository(db)
	ctx := context.Background()

	seed.Lesson("Invertir", entity.LessonLevelAdvanced, 3, true)
	seed.Lesson("Presupuesto", entity.LessonLevelBasic, 1, true)
	hidden := seed.Lesson("Borrador", entity.LessonLevelBasic, 0, false)
	seed.Lesson("Ahorro", entity.LessonLevelBasic, 2, true)

	lessons, err := repo.FindActive(ctx, nil)
	require.NoError(t, err)
	require.Len(t, lessons, 3)
	assert.Equal(t, "Presupuesto", lessons[0].Title)
	assert.Equal(t, "Ahorro", lessons[1].Title)
	assert.Equal(t, "Invertir", lessons[2].Title)

	basic := entity.LessonLevelBasic
	basics, err := repo.FindActive(ctx, &basic)
	require.NoError(t, err)
	assert.Len(t, basics, 2)

	_, err = repo.FindActiveByID(ctx, hidden.ID)
	assert.ErrorIs(t, err, domainerror.ErrLessonNotFound)
}
