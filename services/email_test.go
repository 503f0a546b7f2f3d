package services

import (
	"context"
	"testing"

	"legali_app_go/config"
	"legali_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendEmailTestMode(t *testing.T) {
	cfg := &config.Config{EmailTestMode: true}
	err := SendEmail(cfg, &Email{To: []string{"user@legali.io"}, Subject: "hi", TextBody: "hello"})
	assert.NoError(t, err)
}

func TestSendEmailRequiresAPIKey(t *testing.T) {
	cfg := &config.Config{EmailTestMode: false}
	err := SendEmail(cfg, &Email{To: []string{"user@legali.io"}, Subject: "hi", TextBody: "hello"})
	assert.EqualError(t, err, "RESEND_API_KEY not configured")
}

func TestSendEmailRequiresBody(t *testing.T) {
	cfg := &config.Config{ResendAPIKey: "re_test"}
	err := SendEmail(cfg, &Email{To: []string{"user@legali.io"}, Subject: "hi"})
	assert.Error(t, err)
}

func TestBuildBookingConfirmationEmail(t *testing.T) {
	cfg := &config.Config{AppURL: "https://legali.id"}
	booking := models.Booking{
		ID:               "b-1",
		ClientName:       "John Doe",
		ClientEmail:      "user@legali.io",
		ScheduledDate:    "2025-06-11",
		ScheduledTime:    "09:00 AM",
		Duration:         60,
		ConsultationType: models.ConsultationPhone,
		TotalAmount:      350,
	}

	email, err := BuildBookingConfirmationEmail(context.Background(), cfg, booking, "Sarah Johnson")
	require.NoError(t, err)

	assert.Equal(t, []string{"user@legali.io"}, email.To)
	assert.Equal(t, "Consultation request with Sarah Johnson", email.Subject)
	assert.Contains(t, email.HTMLBody, "https://legali.id/bookings/b-1")
	assert.Contains(t, email.HTMLBody, "Phone call")
	assert.Contains(t, email.TextBody, "09:00 AM")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
}
