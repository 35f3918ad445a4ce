package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// LoanRepository defines the interface for loan persistence operations.
type LoanRepository interface {
	Create(ctx context.Context, loan *entity.Loan) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Loan, error)
	FindByIDForUpdate(ctx context.Context, id, userID uuid.UUID) (*entity.Loan, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Loan, error)
	Update(ctx context.Context, loan *entity.Loan) error
	FindNewlyOverdue(ctx context.Context, asOf time.Time, limit int) ([]*entity.Loan, error)
}
