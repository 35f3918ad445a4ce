package loan

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// GetLoanInput represents the input for retrieving a loan.
type GetLoanInput struct {
	UserID uuid.UUID
	LoanID uuid.UUID
}

// GetLoanOutput represents the output of retrieving a loan.
type GetLoanOutput struct {
	Details *entity.LoanDetails
}

// GetLoanUseCase handles retrieving a single loan.
type GetLoanUseCase struct {
	loanRepo        adapter.LoanRepository
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewGetLoanUseCase creates a new GetLoanUseCase instance.
func NewGetLoanUseCase(
	loanRepo adapter.LoanRepository,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *GetLoanUseCase {
	return &GetLoanUseCase{
		loanRepo:        loanRepo,
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute loads the loan and derives its payment figures from the ledger.
func (uc *GetLoanUseCase) Execute(ctx context.Context, input GetLoanInput) (*GetLoanOutput, error) {
	loan, err := uc.loanRepo.FindByID(ctx, input.LoanID, input.UserID)
	if err != nil {
		return nil, loanLookupError(err)
	}

	details, err := buildDetails(ctx, uc.transactionRepo, loan, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	return &GetLoanOutput{
		Details: details,
	}, nil
}
