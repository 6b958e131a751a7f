// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/walletbook/backend/internal/application/adapter"
	domainerror "github.com/walletbook/backend/internal/domain/error"
)

// Service delivers application emails through an EmailSender.
type Service struct {
	sender adapter.EmailSender
}

// NewService creates a new email service.
func NewService(sender adapter.EmailSender) *Service {
	return &Service{
		sender: sender,
	}
}

// SendPasswordResetEmail sends a password reset email.
func (s *Service) SendPasswordResetEmail(ctx context.Context, input adapter.PasswordResetEmailInput) error {
	name := input.UserName
	if name == "" {
		name = "there"
	}

	html := fmt.Sprintf(passwordResetHTML, name, input.ResetURL, input.ResetURL, input.ExpiresIn)
	text := fmt.Sprintf(passwordResetText, name, input.ResetURL, input.ExpiresIn)

	_, err := s.sender.Send(ctx, adapter.SendEmailInput{
		To:      input.UserEmail,
		Subject: "Reset your password - Walletbook",
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeTemporaryEmailFailure,
			"failed to send password reset email",
			err,
		)
	}

	return nil
}

const passwordResetHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Reset your password</h2>
  <p>Hi %s,</p>
  <p>We received a request to reset your Walletbook password. Click the button below to choose a new one:</p>
  <p><a href="%s" style="display: inline-block; padding: 10px 20px; background-color: #2563eb; color: #fff; text-decoration: none; border-radius: 6px;">Reset password</a></p>
  <p>Or copy this link into your browser:<br>%s</p>
  <p>This link expires in %s. If you did not request a reset, you can safely ignore this email.</p>
  <p>The Walletbook team</p>
</body>
</html>`

const passwordResetText = `Hi %s,

We received a request to reset your Walletbook password. Open the link below to choose a new one:

%s

This link expires in %s. If you did not request a reset, you can safely ignore this email.

The Walletbook team`

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
