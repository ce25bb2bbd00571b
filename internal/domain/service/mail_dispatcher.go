package service

import (
	"context"
)

// MailEvent is the payload queued for the mail worker when a registration
// needs its activation email sent.
type MailEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Email     string `json:"email"`                // Recipient address
	Username  string `json:"username"`             // Display name used in the mail body
	Token     string `json:"token"`                // Activation token embedded in the link
}

// MailDispatcher defines the interface for fire-and-forget mail dispatch.
// Publishing happens asynchronously relative to the request/response cycle;
// a dispatch failure must never fail the registration that triggered it.
type MailDispatcher interface {
	// DispatchActivationEmail queues an activation email for async delivery.
	DispatchActivationEmail(ctx context.Context, event *MailEvent) error

	// Close releases any resources held by the dispatcher.
	Close() error
}

// Mailer defines the worker-side interface that actually delivers mail.
type Mailer interface {
	// SendActivationEmail sends the registration activation email containing
	// the given activation link.
	SendActivationEmail(ctx context.Context, email, username, activateURL string) error
}
