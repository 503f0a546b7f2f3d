package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"legali_app_go/config"
	"legali_app_go/logger"
	"legali_app_go/models"
	"legali_app_go/templates/components"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In test mode, log the email instead of sending
	if cfg.EmailTestMode {
		logger.L().Info("email logged (test mode, not sent)",
			zap.Strings("to", email.To),
			zap.String("subject", email.Subject),
			zap.String("text", email.TextBody),
			zap.String("html", truncate(email.HTMLBody, 500)),
		)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return errors.New("RESEND_API_KEY not configured")
	}
	if email.HTMLBody == "" && email.TextBody == "" {
		return errors.New("email must have either HTMLBody or TextBody")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	logger.L().Info("email sent", zap.String("resend_id", sent.Id), zap.Strings("to", email.To))
	return nil
}

// SendEmailAsync sends an email on its own goroutine so handlers never wait on Resend
func SendEmailAsync(cfg *config.Config, email *Email) {
	emailCopy := &Email{
		To:       append([]string{}, email.To...),
		Subject:  email.Subject,
		HTMLBody: email.HTMLBody,
		TextBody: email.TextBody,
	}

	go func() {
		if err := SendEmail(cfg, emailCopy); err != nil {
			logger.L().Error("async email failed", zap.Error(err), zap.Strings("to", emailCopy.To))
		}
	}()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// BuildBookingConfirmationEmail renders the confirmation sent to the client after booking
func BuildBookingConfirmationEmail(ctx context.Context, cfg *config.Config, booking models.Booking, lawyerName string) (*Email, error) {
	data := components.BookingEmailData{
		Booking:    booking,
		LawyerName: lawyerName,
		ManageURL:  cfg.AppURL + "/bookings/" + booking.ID,
	}

	var buf bytes.Buffer
	if err := components.BookingConfirmationEmail(data).Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("failed to render booking email: %w", err)
	}

	return &Email{
		To:       []string{booking.ClientEmail},
		Subject:  fmt.Sprintf("Consultation request with %s", lawyerName),
		HTMLBody: buf.String(),
		TextBody: components.BookingConfirmationText(data),
	}, nil
}
