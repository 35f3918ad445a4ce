package pendingpayment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// CancelPendingPaymentInput represents the input for cancelling a pending payment.
type CancelPendingPaymentInput struct {
	UserID           uuid.UUID
	PendingPaymentID uuid.UUID
}

// CancelPendingPaymentOutput represents the output of cancelling a pending payment.
type CancelPendingPaymentOutput struct {
	PendingPayment *entity.PendingPayment
}

// CancelPendingPaymentUseCase closes an open pending payment without settling it.
type CancelPendingPaymentUseCase struct {
	uow adapter.UnitOfWork
}

// NewCancelPendingPaymentUseCase creates a new CancelPendingPaymentUseCase instance.
func NewCancelPendingPaymentUseCase(uow adapter.UnitOfWork) *CancelPendingPaymentUseCase {
	return &CancelPendingPaymentUseCase{
		uow: uow,
	}
}

// Execute performs the cancellation.
func (uc *CancelPendingPaymentUseCase) Execute(ctx context.Context, input CancelPendingPaymentInput) (*CancelPendingPaymentOutput, error) {
	var payment *entity.PendingPayment
	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		locked, err := repos.PendingPayments.FindByIDForUpdate(ctx, input.PendingPaymentID, input.UserID)
		if err != nil {
			return pendingLookupError(err)
		}
		payment = locked

		switch payment.Status {
		case entity.PendingPaymentStatusPaid:
			return domainerror.NewPendingPaymentError(
				domainerror.ErrCodePendingPaymentAlreadyPaid,
				"pending payment is already paid",
				domainerror.ErrPendingPaymentAlreadyPaid,
			)
		case entity.PendingPaymentStatusCancelled:
			return domainerror.NewPendingPaymentError(
				domainerror.ErrCodePendingPaymentCancelled,
				"pending payment is already cancelled",
				domainerror.ErrPendingPaymentCancelled,
			)
		}

		payment.Cancel()
		if err := repos.PendingPayments.Update(ctx, payment); err != nil {
			return fmt.Errorf("failed to update pending payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CancelPendingPaymentOutput{
		PendingPayment: payment,
	}, nil
}
