package goal

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/persistencetest"
)

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func createGoal(t *testing.T, env *persistencetest.Env, userID uuid.UUID, target string, targetDate *time.Time) *entity.SavingGoal {
	t.Helper()

	output, err := NewCreateGoalUseCase(env.Repos.Goals).Execute(context.Background(), CreateGoalInput{
		UserID:       userID,
		Name:         "Vacation",
		TargetAmount: amount(target),
		TargetDate:   targetDate,
	})
	require.NoError(t, err)
	return output.Goal
}

func TestContributeToGoal_AchievesOnce(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "1500")
	goal := createGoal(t, env, userID, "1000", nil)
	uc := NewContributeToGoalUseCase(env.UoW, env.Clock)

	first, err := uc.Execute(context.Background(), ContributeToGoalInput{UserID: userID, GoalID: goal.ID, AccountID: account.ID, Amount: amount("600")})
	require.NoError(t, err)
	assert.False(t, first.Achieved)
	assert.True(t, first.Goal.Progress.Equal(amount("60")))

	second, err := uc.Execute(context.Background(), ContributeToGoalInput{UserID: userID, GoalID: goal.ID, AccountID: account.ID, Amount: amount("400")})
	require.NoError(t, err)
	assert.True(t, second.Achieved)
	assert.Equal(t, entity.GoalStatusAchieved, second.Goal.Goal.Status)
	require.NotNil(t, second.Goal.Goal.CompletedAt)

	_, err = uc.Execute(context.Background(), ContributeToGoalInput{UserID: userID, GoalID: goal.ID, AccountID: account.ID, Amount: amount("1")})
	require.Error(t, err)
	assert.Equal(t, string(domainerror.ErrCodeGoalAchieved), domainerror.CodeOf(err))

	assert.True(t, env.Balance(t, account.ID).Equal(amount("500")))
	assert.Equal(t, int64(2), persistencetest.CountRows(t, env.DB, "transactions", "goal_id = ? AND deleted_at IS NULL", goal.ID))
}

func TestContributeToGoal_ExpiredGoalAcceptsContributions(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "100")
	targetDate := testNow.AddDate(0, -1, 0)
	goal := createGoal(t, env, userID, "1000", &targetDate)

	output, err := NewContributeToGoalUseCase(env.UoW, env.Clock).Execute(context.Background(), ContributeToGoalInput{
		UserID:    userID,
		GoalID:    goal.ID,
		AccountID: account.ID,
		Amount:    amount("50"),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.GoalStatusExpired, output.Goal.EffectiveStatus)
	assert.Equal(t, entity.GoalStatusInProgress, output.Goal.Goal.Status)
}

func TestContributeToGoal_CancelledGoal(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "100")
	goal := createGoal(t, env, userID, "1000", nil)

	_, err := NewUpdateGoalStatusUseCase(env.UoW, env.Clock).Execute(context.Background(), UpdateGoalStatusInput{
		UserID: userID,
		GoalID: goal.ID,
		Status: entity.GoalStatusCancelled,
	})
	require.NoError(t, err)

	_, err = NewContributeToGoalUseCase(env.UoW, env.Clock).Execute(context.Background(), ContributeToGoalInput{
		UserID:    userID,
		GoalID:    goal.ID,
		AccountID: account.ID,
		Amount:    amount("50"),
	})

	require.Error(t, err)
	assert.Equal(t, string(domainerror.ErrCodeGoalCancelled), domainerror.CodeOf(err))
	assert.True(t, env.Balance(t, account.ID).Equal(amount("100")))
}

func TestDeleteContribution_WithdrawsFromGoal(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "300")
	goal := createGoal(t, env, userID, "1000", nil)

	contributed, err := NewContributeToGoalUseCase(env.UoW, env.Clock).Execute(context.Background(), ContributeToGoalInput{
		UserID:    userID,
		GoalID:    goal.ID,
		AccountID: account.ID,
		Amount:    amount("200"),
	})
	require.NoError(t, err)

	_, err = transaction.NewDeleteTransactionUseCase(env.UoW, env.Clock).Execute(context.Background(), transaction.DeleteTransactionInput{
		TransactionID: contributed.Transaction.ID,
		UserID:        userID,
	})
	require.NoError(t, err)

	stored, err := env.Repos.Goals.FindByID(context.Background(), goal.ID, userID)
	require.NoError(t, err)
	assert.True(t, stored.CurrentAmount.IsZero())
	assert.True(t, env.Balance(t, account.ID).Equal(amount("300")))
}

func TestContributeToGoal_OvershootIsNotCapped(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "2000")
	goal := createGoal(t, env, userID, "1000", nil)
	uc := NewContributeToGoalUseCase(env.UoW, env.Clock)

	_, err := uc.Execute(context.Background(), ContributeToGoalInput{UserID: userID, GoalID: goal.ID, AccountID: account.ID, Amount: amount("800")})
	require.NoError(t, err)

	output, err := uc.Execute(context.Background(), ContributeToGoalInput{UserID: userID, GoalID: goal.ID, AccountID: account.ID, Amount: amount("300")})
	require.NoError(t, err)

	assert.True(t, output.Achieved)
	assert.True(t, output.Goal.Goal.CurrentAmount.Equal(amount("1100")), "got %s", output.Goal.Goal.CurrentAmount)
	assert.Equal(t, entity.GoalStatusAchieved, output.Goal.Goal.Status)
	require.NotNil(t, output.Goal.Goal.CompletedAt)
	assert.True(t, env.Balance(t, account.ID).Equal(amount("900")))
}

func TestContributeToGoal_RejectsSubCentAmount(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "100")
	goal := createGoal(t, env, userID, "1000", nil)

	_, err := NewContributeToGoalUseCase(env.UoW, env.Clock).Execute(context.Background(), ContributeToGoalInput{
		UserID:    userID,
		GoalID:    goal.ID,
		AccountID: account.ID,
		Amount:    amount("0.001"),
	})

	require.Error(t, err)
	assert.Equal(t, domainerror.KindValidation, domainerror.KindOf(err))
	assert.True(t, env.Balance(t, account.ID).Equal(amount("100")))

	stored, err := env.Repos.Goals.FindByID(context.Background(), goal.ID, userID)
	require.NoError(t, err)
	assert.True(t, stored.CurrentAmount.IsZero())
}

func TestCreateGoal_RejectsSubCentTarget(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)

	_, err := NewCreateGoalUseCase(env.Repos.Goals).Execute(context.Background(), CreateGoalInput{
		UserID:       uuid.New(),
		Name:         "Vacation",
		TargetAmount: amount("999.999"),
	})

	require.Error(t, err)
	assert.Equal(t, domainerror.KindValidation, domainerror.KindOf(err))
}
