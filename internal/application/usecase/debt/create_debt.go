// Package debt contains debt-related use cases.
package debt

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

// CreateDebtInput represents the input for debt creation.
type CreateDebtInput struct {
	UserID           uuid.UUID
	Name             string
	Creditor         string
	OriginalAmount   decimal.Decimal
	InterestRate     decimal.Decimal
	StartDate        *time.Time // Optional, defaults to today
	DueDate          *time.Time
	Notes            string
	InstallmentCount *int
}

// CreateDebtOutput represents the output of debt creation.
type CreateDebtOutput struct {
	Debt         *entity.Debt
	Installments []*entity.DebtInstallment
}

// CreateDebtUseCase handles debt creation logic.
type CreateDebtUseCase struct {
	debtRepo adapter.DebtRepository
	clock    adapter.Clock
}

// NewCreateDebtUseCase creates a new CreateDebtUseCase instance.
func NewCreateDebtUseCase(debtRepo adapter.DebtRepository, clock adapter.Clock) *CreateDebtUseCase {
	return &CreateDebtUseCase{
		debtRepo: debtRepo,
		clock:    clock,
	}
}

// Execute performs the debt creation.
func (uc *CreateDebtUseCase) Execute(ctx context.Context, input CreateDebtInput) (*CreateDebtOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeDebtNameRequired,
			"debt name is required",
			domainerror.ErrDebtNameRequired,
		)
	}
	if !valueobject.IsValidAmount(input.OriginalAmount) {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtAmount,
			"original amount must be a positive amount of whole cents",
			domainerror.ErrInvalidDebtAmount,
		)
	}
	if input.InterestRate.IsNegative() {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidInterestRate,
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
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeDebtDueDateBeforeStart,
			"due date cannot be before start date",
			domainerror.ErrDueDateBeforeStart,
		)
	}

	if input.InstallmentCount != nil {
		count := *input.InstallmentCount
		if count < entity.MinInstallments || count > entity.MaxInstallments {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeInvalidInstallmentCount,
				fmt.Sprintf("installment count must be between %d and %d", entity.MinInstallments, entity.MaxInstallments),
				domainerror.ErrInvalidInstallmentCount,
			)
		}
	}

	debt := entity.NewDebt(
		input.UserID,
		name,
		strings.TrimSpace(input.Creditor),
		input.OriginalAmount,
		input.InterestRate,
		startDate,
		input.DueDate,
		input.Notes,
		now,
	)

	var installments []*entity.DebtInstallment
	if input.InstallmentCount != nil {
		installments = entity.BuildInstallments(debt.ID, debt.OriginalAmount, *input.InstallmentCount, debt.StartDate)
		debt.HasInstallments = true
	}

	if err := uc.debtRepo.Create(ctx, debt, installments); err != nil {
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}

	return &CreateDebtOutput{
		Debt:         debt,
		Installments: installments,
	}, nil
}
