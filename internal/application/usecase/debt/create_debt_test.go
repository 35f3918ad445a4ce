package debt

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/persistencetest"
)

func TestCreateDebt_Validation(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	uc := NewCreateDebtUseCase(env.Repos.Debts, env.Clock)
	yesterday := testNow.AddDate(0, 0, -1)
	tooMany := 361

	tests := []struct {
		name     string
		input    CreateDebtInput
		wantCode string
	}{
		{
			name:     "blank name",
			input:    CreateDebtInput{Name: "  ", OriginalAmount: amount("10")},
			wantCode: string(domainerror.ErrCodeDebtNameRequired),
		},
		{
			name:     "zero amount",
			input:    CreateDebtInput{Name: "Phone", OriginalAmount: amount("0")},
			wantCode: string(domainerror.ErrCodeInvalidDebtAmount),
		},
		{
			name:     "sub-cent amount",
			input:    CreateDebtInput{Name: "Phone", OriginalAmount: amount("0.001")},
			wantCode: string(domainerror.ErrCodeInvalidDebtAmount),
		},
		{
			name:     "negative interest",
			input:    CreateDebtInput{Name: "Phone", OriginalAmount: amount("10"), InterestRate: amount("-1")},
			wantCode: string(domainerror.ErrCodeInvalidInterestRate),
		},
		{
			name:     "due before start",
			input:    CreateDebtInput{Name: "Phone", OriginalAmount: amount("10"), DueDate: &yesterday},
			wantCode: string(domainerror.ErrCodeDebtDueDateBeforeStart),
		},
		{
			name:     "too many installments",
			input:    CreateDebtInput{Name: "Phone", OriginalAmount: amount("10"), InstallmentCount: &tooMany},
			wantCode: string(domainerror.ErrCodeInvalidInstallmentCount),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.UserID = uuid.New()

			_, err := uc.Execute(context.Background(), tt.input)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, domainerror.CodeOf(err))
			assert.Equal(t, domainerror.KindValidation, domainerror.KindOf(err))
		})
	}
}

func TestCreateDebt_StoresInstallments(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	count := 12

	debt := createDebt(t, env, userID, "1200", &count)

	assert.True(t, debt.HasInstallments)
	installments, err := env.Repos.Debts.FindInstallments(context.Background(), debt.ID)
	require.NoError(t, err)
	require.Len(t, installments, 12)
	assert.True(t, installments[0].Amount.Equal(amount("100")))
	assert.Equal(t, time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC), installments[0].DueDate.UTC())
}
