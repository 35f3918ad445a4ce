// Package loan contains loan-related use cases. Loans are receivables: collecting a loan
// credits the receiving account.
package loan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// CreateLoanInput represents the input for loan creation.
type CreateLoanInput struct {
	UserID         uuid.UUID
	Name           string
	Borrower       string
	OriginalAmount decimal.Decimal
	InterestRate   decimal.Decimal
	StartDate      *time.Time // Optional, defaults to today
	DueDate        *time.Time
	Notes          string
}

// CreateLoanOutput represents the output of loan creation.
type CreateLoanOutput struct {
	Loan *entity.Loan
}

// CreateLoanUseCase handles loan creation logic.
type CreateLoanUseCase struct {
	loanRepo adapter.LoanRepository
	clock    adapter.Clock
}

// NewCreateLoanUseCase creates a new CreateLoanUseCase instance.
func NewCreateLoanUseCase(loanRepo adapter.LoanRepository, clock adapter.Clock) *CreateLoanUseCase {
	return &CreateLoanUseCase{
		loanRepo: loanRepo,
		clock:    clock,
	}
}

// Execute performs the loan creation.
func (uc *CreateLoanUseCase) Execute(ctx context.Context, input CreateLoanInput) (*CreateLoanOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeLoanNameRequired,
			"loan name is required",
			domainerror.ErrLoanNameRequired,
		)
	}
	if !valueobject.IsValidAmount(input.OriginalAmount) {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeInvalidLoanAmount,
			"original amount must be a positive amount of whole cents",
			domainerror.ErrInvalidLoanAmount,
		)
	}
	if input.InterestRate.IsNegative() {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeInvalidLoanInterestRate,
			"interest rate cannot be negative",
			domainerror.ErrInvalidInterestRate,
		)
	}

	now := uc.clock.Now()
	startDate := now
	if input.StartDate != nil {
		startDate = *input.StartDate
	}
	if input.DueDate != nil && entity.TruncateToDay(*input.DueDate).Before(entity.TruncateToDay(startDate)) {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeLoanDueDateBeforeStart,
			"due date cannot be before start date",
			domainerror.ErrDueDateBeforeStart,
		)
	}

	loan := entity.NewLoan(
		input.UserID,
		name,
		strings.TrimSpace(input.Borrower),
		input.OriginalAmount,
		input.InterestRate,
		startDate,
		input.DueDate,
		input.Notes,
		now,
	)

	if err := uc.loanRepo.Create(ctx, loan); err != nil {
		return nil, fmt.Errorf("failed to create loan: %w", err)
	}

	return &CreateLoanOutput{
		Loan: loan,
	}, nil
}
