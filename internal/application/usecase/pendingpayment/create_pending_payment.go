// Package pendingpayment contains use cases for obligations that are settled into the
// ledger later, optionally towards a debt or a loan.
package pendingpayment

import (
	"context"
	"errors"
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

// CreatePendingPaymentInput represents the input for pending payment creation.
type CreatePendingPaymentInput struct {
	UserID        uuid.UUID
	Description   string
	Amount        decimal.Decimal
	DueDate       *time.Time
	Priority      entity.Priority // Optional, defaults to medium
	DebtID        *uuid.UUID
	LoanID        *uuid.UUID
	ReminderEmail string
}

// CreatePendingPaymentOutput represents the output of pending payment creation.
type CreatePendingPaymentOutput struct {
	PendingPayment *entity.PendingPayment
}

// CreatePendingPaymentUseCase handles pending payment creation logic.
type CreatePendingPaymentUseCase struct {
	pendingRepo adapter.PendingPaymentRepository
	debtRepo    adapter.DebtRepository
	loanRepo    adapter.LoanRepository
	clock       adapter.Clock
}

// NewCreatePendingPaymentUseCase creates a new CreatePendingPaymentUseCase instance.
func NewCreatePendingPaymentUseCase(
	pendingRepo adapter.PendingPaymentRepository,
	debtRepo adapter.DebtRepository,
	loanRepo adapter.LoanRepository,
	clock adapter.Clock,
) *CreatePendingPaymentUseCase {
	return &CreatePendingPaymentUseCase{
		pendingRepo: pendingRepo,
		debtRepo:    debtRepo,
		loanRepo:    loanRepo,
		clock:       clock,
	}
}

// Execute performs the pending payment creation.
func (uc *CreatePendingPaymentUseCase) Execute(ctx context.Context, input CreatePendingPaymentInput) (*CreatePendingPaymentOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerror.NewPendingPaymentError(
			domainerror.ErrCodePendingDescriptionRequired,
			"description is required",
			domainerror.ErrPendingDescriptionRequired,
		)
	}
	if len(description) > entity.MaxDescriptionLength {
		return nil, domainerror.NewPendingPaymentError(
			domainerror.ErrCodePendingDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", entity.MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if !valueobject.IsValidAmount(input.Amount) {
		return nil, domainerror.NewPendingPaymentError(
			domainerror.ErrCodeInvalidPendingAmount,
			"amount must be a positive amount of whole cents",
			domainerror.ErrInvalidPendingAmount,
		)
	}

	priority := input.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, domainerror.NewPendingPaymentError(
			domainerror.ErrCodeInvalidPriority,
			"priority must be one of high, medium, low",
			domainerror.ErrInvalidPriority,
		)
	}

	if input.DebtID != nil && input.LoanID != nil {
		return nil, domainerror.NewPendingPaymentError(
			domainerror.ErrCodeBothDebtAndLoan,
			"a pending payment cannot reference both a debt and a loan",
			domainerror.ErrBothDebtAndLoan,
		)
	}

	if err := uc.validateLink(ctx, input); err != nil {
		return nil, err
	}

	payment := entity.NewPendingPayment(
		input.UserID,
		description,
		input.Amount,
		input.DueDate,
		priority,
		input.DebtID,
		input.LoanID,
		input.ReminderEmail,
		uc.clock.Now(),
	)

	if err := uc.pendingRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create pending payment: %w", err)
	}

	return &CreatePendingPaymentOutput{
		PendingPayment: payment,
	}, nil
}

// validateLink checks that the referenced debt or loan belongs to the user.
func (uc *CreatePendingPaymentUseCase) validateLink(ctx context.Context, input CreatePendingPaymentInput) error {
	var err error
	switch {
	case input.DebtID != nil:
		_, err = uc.debtRepo.FindByID(ctx, *input.DebtID, input.UserID)
	case input.LoanID != nil:
		_, err = uc.loanRepo.FindByID(ctx, *input.LoanID, input.UserID)
	default:
		return nil
	}
	if err != nil {
		return linkLookupError(err)
	}
	return nil
}

func linkLookupError(err error) error {
	if errors.Is(err, domainerror.ErrDebtNotFound) || errors.Is(err, domainerror.ErrLoanNotFound) {
		return domainerror.NewPendingPaymentError(
			domainerror.ErrCodePendingLinkNotFound,
			"linked debt or loan not found",
			err,
		)
	}
	return fmt.Errorf("failed to find linked entity: %w", err)
}

func pendingLookupError(err error) error {
	if errors.Is(err, domainerror.ErrPendingPaymentNotFound) {
		return domainerror.NewPendingPaymentError(
			domainerror.ErrCodePendingPaymentNotFound,
			"pending payment not found",
			domainerror.ErrPendingPaymentNotFound,
		)
	}
	return fmt.Errorf("failed to find pending payment: %w", err)
}
