package goal_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/young-finance/internal/application/adapter"
	"github.com/finance-tracker/young-finance/internal/application/usecase/goal"
	"github.com/finance-tracker/young-finance/internal/domain/entity"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
	"github.com/finance-tracker/young-finance/internal/integration/persistence"
	"github.com/finance-tracker/young-finance/internal/testutil"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []adapter.DomainEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event adapter.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func goalErrorCode(t *testing.T, err error) domainerror.GoalErrorCode {
	t.Helper()
	var goalErr *domainerror.GoalError
	require.True(t, errors.As(err, &goalErr), "expected GoalError, got %v", err)
	return goalErr.Code
}

func TestCreateGoalUseCase(t *testing.T) {
	uc := goal.NewCreateGoalUseCase(persistence.NewGoalRepository(testutil.NewDB(t)))
	ctx := context.Background()

	out, err := uc.Execute(ctx, goal.CreateGoalInput{
		Title:        "Laptop",
		TargetAmount: decimal.NewFromInt(100000),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.GoalStatusInProgress, out.Goal.Status)
	assert.True(t, out.Goal.CurrentAmount.IsZero())

	_, err = uc.Execute(ctx, goal.CreateGoalInput{Title: "x", TargetAmount: decimal.Zero})
	assert.Equal(t, domainerror.ErrCodeInvalidTargetAmount, goalErrorCode(t, err))

	_, err = uc.Execute(ctx, goal.CreateGoalInput{Title: "x", TargetAmount: decimal.RequireFromString("0.001")})
	assert.Equal(t, domainerror.ErrCodeInvalidTargetAmount, goalErrorCode(t, err))

	_, err = uc.Execute(ctx, goal.CreateGoalInput{Title: "  ", TargetAmount: decimal.NewFromInt(1)})
	assert.Equal(t, domainerror.ErrCodeGoalTitleRequired, goalErrorCode(t, err))
}

func TestAddAmountUseCase_CompletesAndPublishesOnce(t *testing.T) {
	db := testutil.NewDB(t)
	existing := testutil.NewSeeder(t, db).Goal("Laptop", 100000, 40000, entity.GoalStatusInProgress)

	publisher := &recordingPublisher{}
	uc := goal.NewAddAmountUseCase(persistence.NewGoalRepository(db), publisher)
	ctx := context.Background()

	out, err := uc.Execute(ctx, goal.AddAmountInput{GoalID: existing.ID, Amount: decimal.NewFromInt(60000)})
	require.NoError(t, err)
	assert.True(t, out.Completed)
	assert.True(t, out.Goal.CurrentAmount.Equal(decimal.NewFromInt(100000)))
	assert.True(t, out.Goal.PercentComplete().Equal(decimal.NewFromInt(100)))
	assert.Equal(t, entity.GoalStatusCompleted, out.Goal.Status)

	out, err = uc.Execute(ctx, goal.AddAmountInput{GoalID: existing.ID, Amount: decimal.NewFromInt(5000)})
	require.NoError(t, err)
	assert.False(t, out.Completed)
	assert.True(t, out.Goal.PercentComplete().Equal(decimal.NewFromInt(100)), "percent is capped")

	require.Len(t, publisher.events, 1)
	assert.Equal(t, adapter.EventGoalCompleted, publisher.events[0].Type)
	payload, ok := publisher.events[0].Payload.(goal.GoalCompletedPayload)
	require.True(t, ok)
	assert.Equal(t, existing.ID, payload.GoalID)
}

func TestAddAmountUseCase_PublishFailureDoesNotFail(t *testing.T) {
	db := testutil.NewDB(t)
	existing := testutil.NewSeeder(t, db).Goal("Laptop", 100, 0, entity.GoalStatusInProgress)

	uc := goal.NewAddAmountUseCase(persistence.NewGoalRepository(db), &recordingPublisher{err: errors.New("broker down")})

	out, err := uc.Execute(context.Background(), goal.AddAmountInput{GoalID: existing.ID, Amount: decimal.NewFromInt(100)})
	require.NoError(t, err)
	assert.True(t, out.Completed)
}

func TestAddAmountUseCase_Errors(t *testing.T) {
	db := testutil.NewDB(t)
	cancelled := testutil.NewSeeder(t, db).Goal("Moto", 100, 0, entity.GoalStatusCancelled)
	inProgress := testutil.NewSeeder(t, db).Goal("Casa", 100, 0, entity.GoalStatusInProgress)

	uc := goal.NewAddAmountUseCase(persistence.NewGoalRepository(db), nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		input goal.AddAmountInput
		code  domainerror.GoalErrorCode
	}{
		{"zero amount", goal.AddAmountInput{GoalID: inProgress.ID, Amount: decimal.Zero}, domainerror.ErrCodeInvalidContribution},
		{"negative amount", goal.AddAmountInput{GoalID: inProgress.ID, Amount: decimal.NewFromInt(-1)}, domainerror.ErrCodeInvalidContribution},
		{"amount finer than cents", goal.AddAmountInput{GoalID: inProgress.ID, Amount: decimal.RequireFromString("0.004")}, domainerror.ErrCodeInvalidContribution},
		{"cancelled goal", goal.AddAmountInput{GoalID: cancelled.ID, Amount: decimal.NewFromInt(1)}, domainerror.ErrCodeGoalCancelled},
		{"unknown goal", goal.AddAmountInput{GoalID: uuid.New(), Amount: decimal.NewFromInt(1)}, domainerror.ErrCodeGoalNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			assert.Equal(t, tt.code, goalErrorCode(t, err))
		})
	}
}

func TestUpdateGoalUseCase(t *testing.T) {
	db := testutil.NewDB(t)
	existing := testutil.NewSeeder(t, db).Goal("Laptop", 100, 0, entity.GoalStatusInProgress)
	repo := persistence.NewGoalRepository(db)
	uc := goal.NewUpdateGoalUseCase(repo)
	ctx := context.Background()

	status := entity.GoalStatusCancelled
	title := "Laptop nueva"
	out, err := uc.Execute(ctx, goal.UpdateGoalInput{GoalID: existing.ID, Status: &status, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, entity.GoalStatusCancelled, out.Goal.Status)

	bogus := entity.GoalStatus("paused")
	_, err = uc.Execute(ctx, goal.UpdateGoalInput{GoalID: existing.ID, Status: &bogus})
	assert.Equal(t, domainerror.ErrCodeInvalidGoalStatus, goalErrorCode(t, err))

	cancelled := entity.GoalStatusCancelled
	listed, err := goal.NewListGoalsUseCase(repo).Execute(ctx, goal.ListGoalsInput{Status: &cancelled})
	require.NoError(t, err)
	require.Len(t, listed.Goals, 1)
	assert.Equal(t, "Laptop nueva", listed.Goals[0].Title)
}

// contributionBeforeWrite commits an AddAmount after the PATCH input has been
// read and before the update reaches the database.
type contributionBeforeWrite struct {
	adapter.GoalRepository
	amount decimal.Decimal
}

func (r *contributionBeforeWrite) Update(
	ctx context.Context,
	id uuid.UUID,
	apply func(goal *entity.Goal) error,
) (*entity.Goal, error) {
	if _, _, err := r.GoalRepository.AddAmount(ctx, id, r.amount); err != nil {
		return nil, err
	}
	return r.GoalRepository.Update(ctx, id, apply)
}

func TestUpdateGoalUseCase_KeepsConcurrentContribution(t *testing.T) {
	db := testutil.NewDB(t)
	existing := testutil.NewSeeder(t, db).Goal("Laptop", 100000, 0, entity.GoalStatusInProgress)
	repo := persistence.NewGoalRepository(db)
	ctx := context.Background()

	uc := goal.NewUpdateGoalUseCase(&contributionBeforeWrite{GoalRepository: repo, amount: decimal.NewFromInt(40000)})
	title := "Laptop nueva"
	out, err := uc.Execute(ctx, goal.UpdateGoalInput{GoalID: existing.ID, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Laptop nueva", out.Goal.Title)
	assert.True(t, out.Goal.CurrentAmount.Equal(decimal.NewFromInt(40000)), "got %s", out.Goal.CurrentAmount)

	stored, err := repo.FindByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop nueva", stored.Title)
	assert.True(t, stored.CurrentAmount.Equal(decimal.NewFromInt(40000)), "got %s", stored.CurrentAmount)
}

func TestUpdateGoalUseCase_StatusMustMatchSavedAmount(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.NewSeeder(t, db)
	reached := seed.Goal("Laptop", 100000, 100000, entity.GoalStatusCompleted)
	halfway := seed.Goal("Viaje", 100000, 50000, entity.GoalStatusInProgress)
	publisher := &recordingPublisher{}
	repo := persistence.NewGoalRepository(db)
	uc := goal.NewUpdateGoalUseCase(repo)
	ctx := context.Background()

	inProgress := entity.GoalStatusInProgress
	completed := entity.GoalStatusCompleted
	cancelled := entity.GoalStatusCancelled

	t.Run("completed goal cannot be reopened while the target is reached", func(t *testing.T) {
		_, err := uc.Execute(ctx, goal.UpdateGoalInput{GoalID: reached.ID, Status: &inProgress})
		assert.Equal(t, domainerror.ErrCodeGoalStatusConflict, goalErrorCode(t, err))

		stored, err := repo.FindByID(ctx, reached.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.GoalStatusCompleted, stored.Status)
	})

	t.Run("goal cannot be completed below target", func(t *testing.T) {
		_, err := uc.Execute(ctx, goal.UpdateGoalInput{GoalID: halfway.ID, Status: &completed})
		assert.Equal(t, domainerror.ErrCodeGoalStatusConflict, goalErrorCode(t, err))
	})

	t.Run("raising the target reopens a completed goal", func(t *testing.T) {
		target := decimal.NewFromInt(150000)
		out, err := uc.Execute(ctx, goal.UpdateGoalInput{GoalID: reached.ID, TargetAmount: &target, Status: &inProgress})
		require.NoError(t, err)
		assert.Equal(t, entity.GoalStatusInProgress, out.Goal.Status)

		added, err := goal.NewAddAmountUseCase(repo, publisher).Execute(ctx, goal.AddAmountInput{
			GoalID: reached.ID,
			Amount: decimal.NewFromInt(50000),
		})
		require.NoError(t, err)
		assert.True(t, added.Completed, "reaching the new target completes the goal again")
		assert.Len(t, publisher.events, 1)
	})

	t.Run("cancelling is always allowed", func(t *testing.T) {
		out, err := uc.Execute(ctx, goal.UpdateGoalInput{GoalID: halfway.ID, Status: &cancelled})
		require.NoError(t, err)
		assert.Equal(t, entity.GoalStatusCancelled, out.Goal.Status)
	})

	t.Run("unknown goal", func(t *testing.T) {
		title := "x"
		_, err := uc.Execute(ctx, goal.UpdateGoalInput{GoalID: uuid.New(), Title: &title})
		assert.Equal(t, domainerror.ErrCodeGoalNotFound, goalErrorCode(t, err))
	})
}

func TestDeleteGoalUseCase(t *testing.T) {
	db := testutil.NewDB(t)
	existing := testutil.NewSeeder(t, db).Goal("Laptop", 100, 0, entity.GoalStatusInProgress)
	repo := persistence.NewGoalRepository(db)
	ctx := context.Background()

	_, err := goal.NewDeleteGoalUseCase(repo).Execute(ctx, goal.DeleteGoalInput{GoalID: existing.ID})
	require.NoError(t, err)

	_, err = goal.NewGetGoalUseCase(repo).Execute(ctx, goal.GetGoalInput{GoalID: existing.ID})
	assert.Equal(t, domainerror.ErrCodeGoalNotFound, goalErrorCode(t, err))
}
