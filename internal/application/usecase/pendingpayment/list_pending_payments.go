package pendingpayment

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ListPendingPaymentsInput represents the input for listing pending payments.
type ListPendingPaymentsInput struct {
	UserID   uuid.UUID
	Statuses []entity.PendingPaymentStatus // Optional filter on the effective status
}

// ListPendingPaymentsOutput represents the output of listing pending payments.
type ListPendingPaymentsOutput struct {
	PendingPayments []*entity.PendingPayment
}

// ListPendingPaymentsUseCase handles listing pending payments. Payments past their due date
// are reported as overdue even before the sweep persists it.
type ListPendingPaymentsUseCase struct {
	pendingRepo adapter.PendingPaymentRepository
	clock       adapter.Clock
}

// NewListPendingPaymentsUseCase creates a new ListPendingPaymentsUseCase instance.
func NewListPendingPaymentsUseCase(pendingRepo adapter.PendingPaymentRepository, clock adapter.Clock) *ListPendingPaymentsUseCase {
	return &ListPendingPaymentsUseCase{
		pendingRepo: pendingRepo,
		clock:       clock,
	}
}

// Execute performs the pending payment listing.
func (uc *ListPendingPaymentsUseCase) Execute(ctx context.Context, input ListPendingPaymentsInput) (*ListPendingPaymentsOutput, error) {
	// The stored status may lag behind, so filter after deriving.
	payments, err := uc.pendingRepo.FindByUser(ctx, input.UserID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending payments: %w", err)
	}

	now := uc.clock.Now()
	result := make([]*entity.PendingPayment, 0, len(payments))
	for _, payment := range payments {
		payment.Status = payment.EffectiveStatus(now)
		if len(input.Statuses) > 0 && !slices.Contains(input.Statuses, payment.Status) {
			continue
		}
		result = append(result, payment)
	}

	return &ListPendingPaymentsOutput{
		PendingPayments: result,
	}, nil
}
