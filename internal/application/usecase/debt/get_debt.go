package debt

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// GetDebtInput represents the input for retrieving a debt.
type GetDebtInput struct {
	UserID uuid.UUID
	DebtID uuid.UUID
}

// GetDebtOutput represents the output of retrieving a debt.
type GetDebtOutput struct {
	Details *entity.DebtDetails
}

// GetDebtUseCase handles retrieving a single debt.
type GetDebtUseCase struct {
	debtRepo adapter.DebtRepository
	details  detailsBuilder
	clock    adapter.Clock
}

// NewGetDebtUseCase creates a new GetDebtUseCase instance.
func NewGetDebtUseCase(
	debtRepo adapter.DebtRepository,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *GetDebtUseCase {
	return &GetDebtUseCase{
		debtRepo: debtRepo,
		details:  detailsBuilder{debtRepo: debtRepo, transactionRepo: transactionRepo},
		clock:    clock,
	}
}

// Execute loads the debt and derives its payment figures from the ledger.
func (uc *GetDebtUseCase) Execute(ctx context.Context, input GetDebtInput) (*GetDebtOutput, error) {
	debt, err := uc.debtRepo.FindByID(ctx, input.DebtID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDebtNotFound) {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeDebtNotFound,
				"debt not found",
				domainerror.ErrDebtNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find debt: %w", err)
	}

	details, err := uc.details.build(ctx, debt, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	return &GetDebtOutput{
		Details: details,
	}, nil
}
