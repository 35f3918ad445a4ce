package adapter

import (
	"context"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	MessageID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// ReminderNotifier notifies users about overdue pending payments.
type ReminderNotifier interface {
	// SendOverdueReminder delivers a reminder for payment to its ReminderEmail.
	SendOverdueReminder(ctx context.Context, payment *entity.PendingPayment) error
}
