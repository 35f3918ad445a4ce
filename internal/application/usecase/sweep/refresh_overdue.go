// Package sweep contains the periodic maintenance use cases run by the background worker.
package sweep

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// RefreshOverdueInput represents the input for an overdue refresh run.
type RefreshOverdueInput struct {
	BatchSize int
}

// RefreshOverdueOutput counts the records moved to overdue.
type RefreshOverdueOutput struct {
	PendingPayments int
	Debts           int
	Loans           int
}

// RefreshOverdueUseCase persists the overdue status that reads already derive lazily.
type RefreshOverdueUseCase struct {
	pendingRepo adapter.PendingPaymentRepository
	debtRepo    adapter.DebtRepository
	loanRepo    adapter.LoanRepository
	uow         adapter.UnitOfWork
	clock       adapter.Clock
}

// NewRefreshOverdueUseCase creates a new RefreshOverdueUseCase instance.
func NewRefreshOverdueUseCase(
	pendingRepo adapter.PendingPaymentRepository,
	debtRepo adapter.DebtRepository,
	loanRepo adapter.LoanRepository,
	uow adapter.UnitOfWork,
	clock adapter.Clock,
) *RefreshOverdueUseCase {
	return &RefreshOverdueUseCase{
		pendingRepo: pendingRepo,
		debtRepo:    debtRepo,
		loanRepo:    loanRepo,
		uow:         uow,
		clock:       clock,
	}
}

// Execute refreshes each candidate under its row lock so that a concurrent settlement wins.
func (uc *RefreshOverdueUseCase) Execute(ctx context.Context, input RefreshOverdueInput) (*RefreshOverdueOutput, error) {
	now := uc.clock.Now()
	output := &RefreshOverdueOutput{}

	payments, err := uc.pendingRepo.FindNewlyOverdue(ctx, now, input.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to find overdue pending payments: %w", err)
	}
	for _, candidate := range payments {
		changed := false
		err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
			payment, err := repos.PendingPayments.FindByIDForUpdate(ctx, candidate.ID, candidate.UserID)
			if err != nil {
				return err
			}
			if changed = payment.RefreshStatus(now); !changed {
				return nil
			}
			return repos.PendingPayments.Update(ctx, payment)
		})
		if err != nil {
			slog.Warn("Failed to mark pending payment overdue", "pending_payment_id", candidate.ID, "error", err)
			continue
		}
		if changed {
			output.PendingPayments++
		}
	}

	debts, err := uc.debtRepo.FindNewlyOverdue(ctx, now, input.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to find overdue debts: %w", err)
	}
	for _, candidate := range debts {
		changed := false
		err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
			debt, err := repos.Debts.FindByIDForUpdate(ctx, candidate.ID, candidate.UserID)
			if err != nil {
				return err
			}
			if changed = debt.RefreshStatus(now); !changed {
				return nil
			}
			return repos.Debts.Update(ctx, debt)
		})
		if err != nil {
			slog.Warn("Failed to mark debt overdue", "debt_id", candidate.ID, "error", err)
			continue
		}
		if changed {
			output.Debts++
		}
	}

	loans, err := uc.loanRepo.FindNewlyOverdue(ctx, now, input.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to find overdue loans: %w", err)
	}
	for _, candidate := range loans {
		changed := false
		err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
			loan, err := repos.Loans.FindByIDForUpdate(ctx, candidate.ID, candidate.UserID)
			if err != nil {
				return err
			}
			if changed = loan.RefreshStatus(now); !changed {
				return nil
			}
			return repos.Loans.Update(ctx, loan)
		})
		if err != nil {
			slog.Warn("Failed to mark loan overdue", "loan_id", candidate.ID, "error", err)
			continue
		}
		if changed {
			output.Loans++
		}
	}

	return output, nil
}
