// Package email provides email sending functionality via Resend.
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/university-finance/backend/internal/application/adapter"
	"github.com/university-finance/backend/internal/integration/email/templates"
)

const passwordResetSubject = "Reset your password"

// ResendSender implements the adapter.EmailSender interface using Resend.
type ResendSender struct {
	client    *resend.Client
	renderer  *templates.Renderer
	fromName  string
	fromEmail string
}

// NewResendSender creates a new Resend-backed email sender.
func NewResendSender(apiKey, fromName, fromEmail string) (*ResendSender, error) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize email templates: %w", err)
	}

	return &ResendSender{
		client:    resend.NewClient(apiKey),
		renderer:  renderer,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// SendPasswordReset renders and sends a password reset email.
func (s *ResendSender) SendPasswordReset(ctx context.Context, input adapter.PasswordResetEmailInput) error {
	html, text, err := s.renderer.Render("password_reset", templates.PasswordResetData{
		UserName:  input.UserName,
		ResetURL:  input.ResetURL,
		ExpiresIn: input.ExpiresIn,
	})
	if err != nil {
		return fmt.Errorf("failed to render password reset email: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{input.UserEmail},
		Subject: passwordResetSubject,
		Html:    html,
		Text:    text,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}
