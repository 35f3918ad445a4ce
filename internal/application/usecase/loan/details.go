package loan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// buildDetails derives the read model of a loan from the ledger. A stored remaining
// amount that disagrees with the ledger is logged and replaced by the ledger figure.
func buildDetails(ctx context.Context, transactionRepo adapter.TransactionRepository, loan *entity.Loan, asOf time.Time) (*entity.LoanDetails, error) {
	summary, err := transactionRepo.SummarizeByLoan(ctx, loan.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize loan payments: %w", err)
	}

	ledgerRemaining := valueobject.ClampNonNegative(loan.OriginalAmount.Sub(summary.Total))
	if !ledgerRemaining.Equal(loan.RemainingAmount) {
		slog.Warn("Loan remaining amount differs from ledger",
			"loan_id", loan.ID,
			"stored_remaining", loan.RemainingAmount.String(),
			"ledger_remaining", ledgerRemaining.String(),
		)
		loan.RemainingAmount = ledgerRemaining
	}
	loan.Status = entity.LoanStatusFor(loan.OriginalAmount, loan.RemainingAmount, loan.DueDate, asOf)

	return &entity.LoanDetails{
		Loan:            loan,
		Payments:        *summary,
		LedgerRemaining: ledgerRemaining,
	}, nil
}
