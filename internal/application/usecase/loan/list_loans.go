package loan

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ListLoansInput represents the input for listing loans.
type ListLoansInput struct {
	UserID uuid.UUID
	Status *entity.LoanStatus // Optional filter on the effective status
}

// ListLoansOutput represents the output of listing loans.
type ListLoansOutput struct {
	Loans []*entity.LoanDetails
}

// ListLoansUseCase handles listing loans logic.
type ListLoansUseCase struct {
	loanRepo        adapter.LoanRepository
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewListLoansUseCase creates a new ListLoansUseCase instance.
func NewListLoansUseCase(
	loanRepo adapter.LoanRepository,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *ListLoansUseCase {
	return &ListLoansUseCase{
		loanRepo:        loanRepo,
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute performs the loan listing.
func (uc *ListLoansUseCase) Execute(ctx context.Context, input ListLoansInput) (*ListLoansOutput, error) {
	loans, err := uc.loanRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}

	now := uc.clock.Now()
	result := make([]*entity.LoanDetails, 0, len(loans))
	for _, loan := range loans {
		details, err := buildDetails(ctx, uc.transactionRepo, loan, now)
		if err != nil {
			return nil, err
		}
		if input.Status != nil && details.Loan.Status != *input.Status {
			continue
		}
		result = append(result, details)
	}

	return &ListLoansOutput{
		Loans: result,
	}, nil
}
