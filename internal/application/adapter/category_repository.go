package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create saves a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category owned by userID.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)

	// FindByUser retrieves a user's categories, optionally filtered by type.
	FindByUser(ctx context.Context, userID uuid.UUID, categoryType *entity.CategoryType) ([]*entity.Category, error)
}
