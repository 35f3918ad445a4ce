package email

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// MockEmailSender records messages in memory instead of delivering them.
type MockEmailSender struct {
	mu        sync.Mutex
	sent      []adapter.SendEmailInput
	failWith  error
	permanent bool
}

// NewMockEmailSender returns a sender that accepts every message.
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{}
}

// Send records input, or fails as configured by SetFailure.
func (m *MockEmailSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return nil, deliveryError(m.permanent, m.failWith)
	}

	m.sent = append(m.sent, input)
	return &adapter.SendEmailResult{MessageID: fmt.Sprintf("mock-%d", len(m.sent))}, nil
}

// SetFailure makes every following Send fail with err.
func (m *MockEmailSender) SetFailure(err error, permanent bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
	m.permanent = permanent
}

// ClearFailure makes subsequent sends succeed again.
func (m *MockEmailSender) ClearFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = nil
}

// Sent returns a copy of the messages recorded so far.
func (m *MockEmailSender) Sent() []adapter.SendEmailInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.sent)
}

var _ adapter.EmailSender = (*MockEmailSender)(nil)
