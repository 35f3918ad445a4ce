package email

import (
	"context"
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/email/templates"
)

// ReminderService renders and sends overdue payment reminders.
type ReminderService struct {
	sender     adapter.EmailSender
	renderer   *templates.Renderer
	appBaseURL string
}

// NewReminderService creates a new reminder service.
func NewReminderService(sender adapter.EmailSender, renderer *templates.Renderer, appBaseURL string) *ReminderService {
	return &ReminderService{
		sender:     sender,
		renderer:   renderer,
		appBaseURL: appBaseURL,
	}
}

// SendOverdueReminder sends a reminder for an overdue pending payment.
func (s *ReminderService) SendOverdueReminder(ctx context.Context, payment *entity.PendingPayment) error {
	data := templates.OverduePaymentData{
		Description: payment.Description,
		Amount:      payment.Amount.StringFixed(2),
		Priority:    string(payment.Priority),
		PaymentURL:  fmt.Sprintf("%s/pending-payments/%s", s.appBaseURL, payment.ID),
	}
	if payment.DueDate != nil {
		data.DueDate = payment.DueDate.Format("2006-01-02")
	}

	html, text, err := s.renderer.Render(templates.OverduePayment, data)
	if err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			"failed to render overdue reminder",
			err,
		)
	}

	_, err = s.sender.Send(ctx, adapter.SendEmailInput{
		To:      payment.ReminderEmail,
		Subject: fmt.Sprintf("Payment overdue: %s", payment.Description),
		HTML:    html,
		Text:    text,
	})
	return err
}

// Ensure ReminderService implements adapter.ReminderNotifier.
var _ adapter.ReminderNotifier = (*ReminderService)(nil)
