package components

import (
	"context"
	"fmt"
	"io"

	"legali_app_go/models"

	"github.com/a-h/templ"
)

// BookingEmailData is what the booking confirmation email shows
type BookingEmailData struct {
	Booking    models.Booking
	LawyerName string
	ManageURL  string
}

var consultationLabels = map[string]string{
	models.ConsultationPhone:    "Phone call",
	models.ConsultationVideo:    "Video call",
	models.ConsultationInPerson: "In person",
}

// BookingConfirmationEmail renders the HTML body sent after a consultation is booked
func BookingConfirmationEmail(data BookingEmailData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := data.Booking
		kind := consultationLabels[b.ConsultationType]
		if kind == "" {
			kind = b.ConsultationType
		}

		_, err := fmt.Fprintf(w,
			`<div><p>Hi %s,</p><p>Your consultation request with <strong>%s</strong> has been received.</p>`+
				`<ul><li>Date: %s</li><li>Time: %s</li><li>Duration: %d minutes</li><li>Type: %s</li><li>Total: %s</li></ul>`,
			templ.EscapeString(b.ClientName),
			templ.EscapeString(data.LawyerName),
			templ.EscapeString(b.ScheduledDate),
			templ.EscapeString(b.ScheduledTime),
			b.Duration,
			templ.EscapeString(kind),
			money(b.TotalAmount),
		)
		if err != nil {
			return err
		}
		if data.ManageURL != "" {
			if _, err := fmt.Fprintf(w, `<p><a href="%s">View your booking</a></p>`, templ.EscapeString(data.ManageURL)); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `<p>The lawyer will confirm the appointment shortly.</p></div>`)
		return err
	})
}

// BookingConfirmationText is the plain text alternative of BookingConfirmationEmail
func BookingConfirmationText(data BookingEmailData) string {
	b := data.Booking
	return fmt.Sprintf("Hi %s,\n\nYour consultation request with %s has been received.\n\nDate: %s\nTime: %s\nDuration: %d minutes\nTotal: %s\n",
		b.ClientName, data.LawyerName, b.ScheduledDate, b.ScheduledTime, b.Duration, money(b.TotalAmount))
}
