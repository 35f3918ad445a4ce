// Package email delivers overdue payment reminders via Resend.
package email

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// NewResendClientWithBaseURL creates a Resend client that talks to baseURL instead of
// the public API.
func NewResendClientWithBaseURL(apiKey, baseURL, fromName, fromEmail string) (*ResendClient, error) {
	c := NewResendClient(apiKey, fromName, fromEmail)
	if baseURL == "" {
		return c, nil
	}

	// Request paths are resolved relative to the base URL.
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse resend base URL: %w", err)
	}
	c.client.BaseURL = u
	return c, nil
}

// Send delivers one message through the Resend API.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	from := fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return nil, deliveryError(isPermanentError(err), err)
	}

	return &adapter.SendEmailResult{
		MessageID: resp.Id,
	}, nil
}

// deliveryError wraps a provider failure so callers can tell whether a retry may help.
func deliveryError(permanent bool, cause error) error {
	if permanent {
		return domainerror.NewEmailError(domainerror.ErrCodePermanentEmailFailure, "permanent email failure", cause)
	}
	return domainerror.NewEmailError(domainerror.ErrCodeTemporaryEmailFailure, "temporary email failure", cause)
}

// rejectionMarkers appear in Resend errors for requests that will fail the same way
// every time: bad credentials, a blocked sender or a malformed payload.
var rejectionMarkers = []string{
	"401", "unauthorized",
	"403", "forbidden",
	"422", "validation", "invalid",
	"400", "bad request",
}

// isPermanentError classifies a Resend error. Rate limits, timeouts and anything
// unrecognised stay retryable.
func isPermanentError(err error) bool {
	if err == nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "429") || strings.Contains(msg, "rate limit") {
		return false
	}
	return slices.ContainsFunc(rejectionMarkers, func(marker string) bool {
		return strings.Contains(msg, marker)
	})
}

var _ adapter.EmailSender = (*ResendClient)(nil)
