package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// SettleDebt applies a payment to a locked debt, persists it and spreads the applied part
// over the open installments. The caller posts the matching transaction.
func SettleDebt(ctx context.Context, repos adapter.Repositories, debt *entity.Debt, amount decimal.Decimal, paidOn time.Time) (valueobject.PaymentAllocation, error) {
	allocation := debt.ApplyPayment(amount, paidOn)

	if err := repos.Debts.Update(ctx, debt); err != nil {
		return allocation, fmt.Errorf("failed to update debt: %w", err)
	}

	if !debt.HasInstallments || !allocation.Applied.IsPositive() {
		return allocation, nil
	}
	installments, err := repos.Debts.FindInstallments(ctx, debt.ID)
	if err != nil {
		return allocation, fmt.Errorf("failed to find installments: %w", err)
	}
	changed := entity.AllocateToInstallments(installments, allocation.Applied, paidOn)
	if err := repos.Debts.UpdateInstallments(ctx, changed); err != nil {
		return allocation, fmt.Errorf("failed to update installments: %w", err)
	}
	return allocation, nil
}

// SettleLoan applies a received payment to a locked loan and persists it.
func SettleLoan(ctx context.Context, repos adapter.Repositories, loan *entity.Loan, amount decimal.Decimal, receivedOn time.Time) (valueobject.PaymentAllocation, error) {
	allocation := loan.ApplyPayment(amount, receivedOn)

	if err := repos.Loans.Update(ctx, loan); err != nil {
		return allocation, fmt.Errorf("failed to update loan: %w", err)
	}
	return allocation, nil
}
