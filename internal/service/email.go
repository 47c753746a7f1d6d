package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	client      *resend.Client
	fromEmail   string
	senderName  string
	frontendURL string
	appName     string
	isDev       bool
}

func NewEmailService(apiKey, fromEmail, senderName, frontendURL, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:      client,
		fromEmail:   fromEmail,
		senderName:  senderName,
		frontendURL: strings.TrimSuffix(frontendURL, "/"),
		appName:     appName,
		isDev:       isDev,
	}
}

// SendPasswordResetEmail delivers the reset link carrying the raw token.
// The raw token appears only here and in the requester's mailbox; the store
// never sees it.
func (s *EmailService) SendPasswordResetEmail(ctx context.Context, email, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password/%s", s.frontendURL, token)
	subject, html := passwordResetEmailTemplate(resetURL, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "password_reset", "to", email, "subject", subject, "url", resetURL)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.senderName, s.fromEmail),
		To:      []string{email},
		Subject: subject,
		Html:    html,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return err
	}

	slog.Info("email sent", "type", "password_reset", "to", email, "message_id", sent.Id)
	return nil
}
