package persistence_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/young-finance/internal/domain/entity"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
	"github.com/finance-tracker/young-finance/internal/integration/persistence"
	"github.com/finance-tracker/young-finance/internal/testutil"
)

func TestGoalRepository_AddAmountCompletesOnce(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.NewSeeder(t, db)
	repo := persistence.NewGoalRepository(db)
	ctx := context.Background()

	goal := seed.Goal("Laptop", 100000, 40000, entity.GoalStatusInProgress)

	updated, completed, err := repo.AddAmount(ctx, goal.ID, decimal.NewFromInt(60000))
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, entity.GoalStatusCompleted, updated.Status)
	assert.True(t, updated.CurrentAmount.Equal(decimal.NewFromInt(100000)))

	updated, completed, err = repo.AddAmount(ctx, goal.ID, decimal.NewFromInt(1000))
	require.NoError(t, err)
	assert.False(t, completed, "completion is reported only once")
	assert.Equal(t, entity.GoalStatusCompleted, updated.Status)
	assert.True(t, updated.CurrentAmount.Equal(decimal.NewFromInt(101000)))

	stored, err := repo.FindByID(ctx, goal.ID)
	require.NoError(t, err)
	assert.True(t, stored.CurrentAmount.Equal(decimal.NewFromInt(101000)))
	assert.Equal(t, entity.GoalStatusCompleted, stored.Status)
}

func TestGoalRepository_AddAmountConcurrent(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.NewSeeder(t, db)
	repo := persistence.NewGoalRepository(db)
	ctx := context.Background()

	goal := seed.Goal("Viaje", 100000, 0, entity.GoalStatusInProgress)

	const workers = 20
	var (
		wg          sync.WaitGroup
		mu          sync.Mutex
		completions int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, completed, err := repo.AddAmount(ctx, goal.ID, decimal.NewFromInt(10000))
			assert.NoError(t, err)
			if completed {
				mu.Lock()
				completions++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	stored, err := repo.FindByID(ctx, goal.ID)
	require.NoError(t, err)
	assert.True(t, stored.CurrentAmount.Equal(decimal.NewFromInt(workers*10000)), "no contribution is lost, got %s", stored.CurrentAmount)
	assert.Equal(t, 1, completions)
}

func TestGoalRepository_AddAmountErrors(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.NewSeeder(t, db)
	repo := persistence.NewGoalRepository(db)
	ctx := context.Background()

	cancelled := seed.Goal("Moto", 100000, 0, entity.GoalStatusCancelled)
	_, _, err := repo.AddAmount(ctx, cancelled.ID, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domainerror.ErrGoalCancelled)

	removed := seed.Goal("Casa", 100000, 0, entity.GoalStatusInProgress)
	require.NoError(t, repo.Delete(ctx, removed.ID))
	_, _, err = repo.AddAmount(ctx, removed.ID, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)
}

func TestGoalRepository_FindAllByStatus(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.NewSeeder(t, db)
	repo := persistence.NewGoalRepository(db)

	seed.Goal("a", 10, 0, entity.GoalStatusInProgress)
	seed.Goal("b", 10, 10, entity.GoalStatusCompleted)
	seed.Goal("c", 10, 0, entity.GoalStatusInProgress)

	status := entity.GoalStatusInProgress
	goals, err := repo.FindAll(context.Background(), &status)
	require.NoError(t, err)
	assert.Len(t, goals, 2)

	all, err := repo.FindAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGoalRepository_UpdateLeavesSavedAmount(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.NewSeeder(t, db)
	repo := persistence.NewGoalRepository(db)
	ctx := context.Background()

	goal := seed.Goal("Laptop", 100000, 0, entity.GoalStatusInProgress)

	_, _, err := repo.AddAmount(ctx, goal.ID, decimal.NewFromInt(40000))
	require.NoError(t, err)

	// goal still holds the stale saved amount; apply works on the stored row.
	updated, err := repo.Update(ctx, goal.ID, func(g *entity.Goal) error {
		assert.True(t, g.CurrentAmount.Equal(decimal.NewFromInt(40000)), "apply sees the committed contribution")
		g.Title = "Laptop nueva"
		g.CurrentAmount = goal.CurrentAmount
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Laptop nueva", updated.Title)

	stored, err := repo.FindByID(ctx, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop nueva", stored.Title)
	assert.True(t, stored.CurrentAmount.Equal(decimal.NewFromInt(40000)), "got %s", stored.CurrentAmount)
}

func TestGoalRepository_UpdateErrors(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.NewSeeder(t, db)
	repo := persistence.NewGoalRepository(db)
	ctx := context.Background()

	goal := seed.Goal("Laptop", 100000, 0, entity.GoalStatusInProgress)

	rejected := errors.New("rejected")
	_, err := repo.Update(ctx, goal.ID, func(g *entity.Goal) error {
		g.Title = "no se guarda"
		return rejected
	})
	assert.ErrorIs(t, err, rejected)

	stored, err := repo.FindByID(ctx, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", stored.Title)

	_, err = repo.Update(ctx, uuid.New(), func(*entity.Goal) error { return nil })
	assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)
}
