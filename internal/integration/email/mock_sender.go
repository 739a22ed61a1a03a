package email

import (
	"context"
	"fmt"
	"sync"

	"github.com/strategic-planning/backend/internal/application/adapter"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
)

// MockEmailSender records sent emails instead of delivering them.
// It backs the integration suite and deployments without a Resend key.
type MockEmailSender struct {
	mu          sync.Mutex
	sent        []adapter.SendEmailInput
	failErr     error
	isPermanent bool
}

// NewMockEmailSender creates a new mock email sender.
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{}
}

// Send implements the adapter.EmailSender interface.
func (m *MockEmailSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failErr != nil {
		code := domainerror.ErrCodeTemporaryEmailFailure
		if m.isPermanent {
			code = domainerror.ErrCodePermanentEmailFailure
		}
		return nil, domainerror.NewEmailError(code, "mock send failure", m.failErr)
	}

	m.sent = append(m.sent, input)
	return &adapter.SendEmailResult{
		ResendID: fmt.Sprintf("mock-%d", len(m.sent)),
	}, nil
}

// Sent returns a copy of the emails sent so far.
func (m *MockEmailSender) Sent() []adapter.SendEmailInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]adapter.SendEmailInput, len(m.sent))
	copy(out, m.sent)
	return out
}

// SetFailure makes every following Send fail with err.
func (m *MockEmailSender) SetFailure(err error, permanent bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failErr = err
	m.isPermanent = permanent
}

// Reset clears sent emails and any configured failure.
func (m *MockEmailSender) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
	m.failErr = nil
	m.isPermanent = false
}

var _ adapter.EmailSender = (*MockEmailSender)(nil)
