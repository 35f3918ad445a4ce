// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create saves a new account.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by ID regardless of owner.
	// Callers check ownership so they can tell "missing" from "not usable".
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByIDForUpdate retrieves an account and locks its row until the surrounding
	// transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByUser retrieves the accounts of a user.
	FindByUser(ctx context.Context, userID uuid.UUID, includeInactive bool) ([]*entity.Account, error)

	// Update persists balance and activity changes.
	Update(ctx context.Context, account *entity.Account) error

	// LedgerBalance derives the balance of an account from its ledger rows.
	LedgerBalance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error)
}
