package app

import "shoutout_backend/internal/email"

// MockEmailProvider swallows all mail. Used when SMTP is not configured
// and in tests.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(_ *email.Email) error { return nil }
func (m *MockEmailProvider) SendTemplate(_ []string, _, _ string, _ email.TemplateData) error {
	return nil
}
func (m *MockEmailProvider) SendVerification(_, _ string) error { return nil }
func (m *MockEmailProvider) Close() error                       { return nil }
