// Package recurring contains recurring expense use cases.
package recurring

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/ledger"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// CreateRecurringExpenseInput represents the input for recurring expense creation.
type CreateRecurringExpenseInput struct {
	UserID     uuid.UUID
	AccountID  uuid.UUID
	CategoryID *uuid.UUID
	Name       string
	Amount     decimal.Decimal
	Frequency  valueobject.Frequency
	ChargeDay  int
}

// CreateRecurringExpenseOutput represents the output of recurring expense creation.
type CreateRecurringExpenseOutput struct {
	RecurringExpense *entity.RecurringExpense
}

// CreateRecurringExpenseUseCase handles recurring expense creation logic.
type CreateRecurringExpenseUseCase struct {
	recurringRepo adapter.RecurringExpenseRepository
	accountRepo   adapter.AccountRepository
	categoryRepo  adapter.CategoryRepository
	clock         adapter.Clock
}

// NewCreateRecurringExpenseUseCase creates a new CreateRecurringExpenseUseCase instance.
func NewCreateRecurringExpenseUseCase(
	recurringRepo adapter.RecurringExpenseRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
) *CreateRecurringExpenseUseCase {
	return &CreateRecurringExpenseUseCase{
		recurringRepo: recurringRepo,
		accountRepo:   accountRepo,
		categoryRepo:  categoryRepo,
		clock:         clock,
	}
}

// Execute validates the schedule and stores the expense with its first charge date.
func (uc *CreateRecurringExpenseUseCase) Execute(ctx context.Context, input CreateRecurringExpenseInput) (*CreateRecurringExpenseOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringNameRequired,
			"recurring expense name is required",
			domainerror.ErrRecurringNameRequired,
		)
	}

	if !valueobject.IsValidAmount(input.Amount) {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringAmount,
			"amount must be a positive amount of whole cents",
			domainerror.ErrInvalidRecurringAmount,
		)
	}

	if err := ValidateSchedule(input.Frequency, input.ChargeDay); err != nil {
		return nil, err
	}

	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, ledger.AccountLookupError(err)
	}
	if !account.IsUsableBy(input.UserID) {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringInvalidAccount,
			"account cannot be used for this recurring expense",
			domainerror.ErrInvalidPaymentAccount,
		)
	}

	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID, input.UserID); err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil, domainerror.NewCategoryError(
					domainerror.ErrCodeCategoryNotFound,
					"category not found",
					domainerror.ErrCategoryNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
	}

	nextChargeDate, err := valueobject.NextChargeDate(input.Frequency, input.ChargeDay, uc.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to compute next charge date: %w", err)
	}

	expense := entity.NewRecurringExpense(
		input.UserID,
		account.ID,
		input.CategoryID,
		name,
		input.Amount,
		input.Frequency,
		input.ChargeDay,
		nextChargeDate,
	)

	if err := uc.recurringRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create recurring expense: %w", err)
	}

	return &CreateRecurringExpenseOutput{
		RecurringExpense: expense,
	}, nil
}

// ValidateSchedule checks the frequency and that the charge day lies within its domain.
func ValidateSchedule(frequency valueobject.Frequency, chargeDay int) error {
	err := valueobject.ValidateChargeDay(frequency, chargeDay)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domainerror.ErrInvalidFrequency):
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be one of weekly, biweekly, monthly, annual",
			err,
		)
	default:
		minDay, maxDay, _ := valueobject.ChargeDayDomain(frequency)
		return domainerror.NewRecurringError(
			domainerror.ErrCodeChargeDayOutOfRange,
			fmt.Sprintf("charge day for %s expenses must be between %d and %d", frequency, minDay, maxDay),
			err,
		)
	}
}
