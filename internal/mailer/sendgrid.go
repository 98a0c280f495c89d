package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/aayakar/webinar-backend/config"
)

// SendGrid sends mail through the SendGrid v3 API.
type SendGrid struct {
	client *sendgrid.Client
	cfg    config.EmailConfig
	logger *zap.Logger
}

// NewSendGrid creates a SendGrid mailer from config.
func NewSendGrid(cfg config.EmailConfig, logger *zap.Logger) *SendGrid {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SendGrid{
		client: sendgrid.NewSendClient(cfg.APIKey),
		cfg:    cfg,
		logger: logger,
	}
}

// SendConfirmation sends the registration confirmation email.
func (s *SendGrid) SendConfirmation(ctx context.Context, name, email string) error {
	plain := fmt.Sprintf("Hi %s, thanks for registering! Webinar Link: %s", name, s.cfg.WebinarLink)
	html := fmt.Sprintf(
		`<p>Hi <strong>%s</strong></p><p>Thanks for registering!</p><p><strong>Webinar Link:</strong> <a href=%q>Join Here</a></p>`,
		name, s.cfg.WebinarLink)
	return s.send(ctx, SubjectConfirmation, name, email, plain, html)
}

// SendReminder sends the webinar reminder email.
func (s *SendGrid) SendReminder(ctx context.Context, name, email string) error {
	plain := fmt.Sprintf("Hi %s, %s starts soon. Webinar Link: %s", name, s.cfg.WebinarTitle, s.cfg.WebinarLink)
	html := fmt.Sprintf(
		`<p>Hi <strong>%s</strong></p><p>%s starts soon.</p><p><strong>Webinar Link:</strong> <a href=%q>Join Here</a></p>`,
		name, s.cfg.WebinarTitle, s.cfg.WebinarLink)
	return s.send(ctx, SubjectReminder, name, email, plain, html)
}

func (s *SendGrid) send(ctx context.Context, subject, name, email, plain, html string) error {
	from := mail.NewEmail(s.cfg.FromName, s.cfg.FromAddress)
	to := mail.NewEmail(name, email)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	s.logger.Debug("email sent", zap.String("to", email), zap.String("subject", subject))
	return nil
}
