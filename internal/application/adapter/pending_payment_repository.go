package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// PendingPaymentRepository defines the interface for pending payment persistence operations.
type PendingPaymentRepository interface {
	// Create saves a new pending payment.
	Create(ctx context.Context, payment *entity.PendingPayment) error

	// FindByID retrieves a pending payment owned by userID.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.PendingPayment, error)

	// FindByIDForUpdate retrieves a pending payment owned by userID and locks its row.
	FindByIDForUpdate(ctx context.Context, id, userID uuid.UUID) (*entity.PendingPayment, error)

	// FindByUser retrieves a user's pending payments, optionally filtered by stored status.
	FindByUser(ctx context.Context, userID uuid.UUID, statuses []entity.PendingPaymentStatus) ([]*entity.PendingPayment, error)

	// Update persists status, settlement and reminder changes.
	Update(ctx context.Context, payment *entity.PendingPayment) error

	// FindNewlyOverdue retrieves pending payments past their due date still stored as pending.
	FindNewlyOverdue(ctx context.Context, asOf time.Time, limit int) ([]*entity.PendingPayment, error)

	// FindAwaitingReminder retrieves overdue payments whose reminder has not been sent.
	FindAwaitingReminder(ctx context.Context, limit int) ([]*entity.PendingPayment, error)
}
