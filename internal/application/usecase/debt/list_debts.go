package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ListDebtsInput represents the input for listing debts.
type ListDebtsInput struct {
	UserID uuid.UUID
	Status *entity.DebtStatus // Optional filter on the effective status
}

// ListDebtsOutput represents the output of listing debts.
type ListDebtsOutput struct {
	Debts []*entity.DebtDetails
}

// ListDebtsUseCase handles listing debts logic.
type ListDebtsUseCase struct {
	debtRepo adapter.DebtRepository
	details  detailsBuilder
	clock    adapter.Clock
}

// NewListDebtsUseCase creates a new ListDebtsUseCase instance.
func NewListDebtsUseCase(
	debtRepo adapter.DebtRepository,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *ListDebtsUseCase {
	return &ListDebtsUseCase{
		debtRepo: debtRepo,
		details:  detailsBuilder{debtRepo: debtRepo, transactionRepo: transactionRepo},
		clock:    clock,
	}
}

// Execute performs the debt listing.
func (uc *ListDebtsUseCase) Execute(ctx context.Context, input ListDebtsInput) (*ListDebtsOutput, error) {
	debts, err := uc.debtRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	now := uc.clock.Now()
	result := make([]*entity.DebtDetails, 0, len(debts))
	for _, debt := range debts {
		details, err := uc.details.build(ctx, debt, now)
		if err != nil {
			return nil, err
		}
		if input.Status != nil && details.Debt.Status != *input.Status {
			continue
		}
		result = append(result, details)
	}

	return &ListDebtsOutput{
		Debts: result,
	}, nil
}
