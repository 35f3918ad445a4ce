package debt

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// detailsBuilder derives the read model of a debt from the ledger.
type detailsBuilder struct {
	debtRepo        adapter.DebtRepository
	transactionRepo adapter.TransactionRepository
}

// build aggregates the payments of debt, reports the remaining amount the ledger implies
// and the status at asOf. The stored remaining amount is treated as a cache: when it
// disagrees with the ledger the drift is logged and the ledger figure wins.
func (b detailsBuilder) build(ctx context.Context, debt *entity.Debt, asOf time.Time) (*entity.DebtDetails, error) {
	summary, err := b.transactionRepo.SummarizeByDebt(ctx, debt.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize debt payments: %w", err)
	}

	ledgerRemaining := valueobject.ClampNonNegative(debt.OriginalAmount.Sub(summary.Total))
	if !ledgerRemaining.Equal(debt.RemainingAmount) {
		slog.Warn("Debt remaining amount differs from ledger",
			"debt_id", debt.ID,
			"stored_remaining", debt.RemainingAmount.String(),
			"ledger_remaining", ledgerRemaining.String(),
		)
		debt.RemainingAmount = ledgerRemaining
	}
	debt.Status = entity.DebtStatusFor(debt.RemainingAmount, debt.DueDate, asOf)

	details := &entity.DebtDetails{
		Debt:            debt,
		Payments:        *summary,
		LedgerRemaining: ledgerRemaining,
	}

	if debt.HasInstallments {
		installments, err := b.debtRepo.FindInstallments(ctx, debt.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to find installments: %w", err)
		}
		stats := entity.SummarizeInstallments(installments)
		details.Installments = &stats
	}

	return details, nil
}
