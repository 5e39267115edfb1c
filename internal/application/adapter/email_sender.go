// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// PasswordResetEmailInput represents the input for a password reset email.
type PasswordResetEmailInput struct {
	UserEmail string
	UserName  string
	ResetURL  string
	ExpiresIn string
}

// EmailSender defines the interface for sending transactional mail via an
// external provider. The back office only sends password-reset mail; delivery
// failures surface to the caller, which decides whether to fail the request.
type EmailSender interface {
	// SendPasswordReset renders and sends a password reset email.
	SendPasswordReset(ctx context.Context, input PasswordResetEmailInput) error
}
