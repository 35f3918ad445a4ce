package sweep

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// SendRemindersInput represents the input for a reminder run.
type SendRemindersInput struct {
	BatchSize int
}

// SendRemindersOutput counts the outcome of a reminder run.
type SendRemindersOutput struct {
	Sent    int
	Dropped int // Permanently rejected, never retried
	Retried int // Left for the next run
}

// SendRemindersUseCase emails a single reminder for each overdue pending payment.
type SendRemindersUseCase struct {
	pendingRepo adapter.PendingPaymentRepository
	notifier    adapter.ReminderNotifier
	uow         adapter.UnitOfWork
	clock       adapter.Clock
}

// NewSendRemindersUseCase creates a new SendRemindersUseCase instance.
func NewSendRemindersUseCase(
	pendingRepo adapter.PendingPaymentRepository,
	notifier adapter.ReminderNotifier,
	uow adapter.UnitOfWork,
	clock adapter.Clock,
) *SendRemindersUseCase {
	return &SendRemindersUseCase{
		pendingRepo: pendingRepo,
		notifier:    notifier,
		uow:         uow,
		clock:       clock,
	}
}

// Execute sends the reminders. Payments whose delivery failed temporarily stay unstamped
// and are picked up again by the next run.
func (uc *SendRemindersUseCase) Execute(ctx context.Context, input SendRemindersInput) (*SendRemindersOutput, error) {
	payments, err := uc.pendingRepo.FindAwaitingReminder(ctx, input.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to find payments awaiting reminder: %w", err)
	}

	output := &SendRemindersOutput{}
	for _, payment := range payments {
		if ctx.Err() != nil {
			break
		}

		logger := slog.With("pending_payment_id", payment.ID)

		if err := uc.notifier.SendOverdueReminder(ctx, payment); err != nil {
			if !domainerror.IsPermanentEmailFailure(err) {
				logger.Info("Reminder scheduled for retry", "error", err)
				output.Retried++
				continue
			}
			logger.Warn("Reminder permanently failed", "error", err)
			output.Dropped++
		} else {
			output.Sent++
		}

		// Reload under lock so a settlement made meanwhile is not overwritten.
		err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
			locked, err := repos.PendingPayments.FindByIDForUpdate(ctx, payment.ID, payment.UserID)
			if err != nil {
				return err
			}
			locked.MarkReminded(uc.clock.Now())
			return repos.PendingPayments.Update(ctx, locked)
		})
		if err != nil {
			logger.Error("Failed to stamp reminder", "error", err)
		}
	}

	return output, nil
}
