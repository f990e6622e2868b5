package email

// Provider sends transactional email. The SMTP implementation is used
// in production; tests and development use the mock in internal/app.
type Provider interface {
	// Send delivers a prepared message.
	Send(email *Email) error

	// SendTemplate renders a named template and delivers it.
	SendTemplate(to []string, subject, templateName string, data TemplateData) error

	// SendVerification delivers the account verification mail.
	SendVerification(email, token string) error

	// Close releases the transport.
	Close() error
}
