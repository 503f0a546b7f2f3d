package models

import "time"

// Booking status constants
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Payment status constants
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// Consultation types
const (
	ConsultationPhone    = "phone"
	ConsultationVideo    = "video"
	ConsultationInPerson = "in-person"
)

// DefaultBookingDuration is the consultation length used when none is chosen (minutes)
const DefaultBookingDuration = 60

// Booking is a consultation request with a lawyer
type Booking struct {
	ID               string    `json:"id"`
	LawyerID         string    `json:"lawyerId"`
	ClientID         string    `json:"clientId"`
	PackageID        string    `json:"packageId"`
	Status           string    `json:"status"`
	ScheduledDate    string    `json:"scheduledDate"` // YYYY-MM-DD
	ScheduledTime    string    `json:"scheduledTime"` // e.g. "09:00 AM"
	Duration         int       `json:"duration"`      // minutes
	TotalAmount      float64   `json:"totalAmount"`
	PaymentStatus    string    `json:"paymentStatus"`
	Notes            string    `json:"notes,omitempty"`
	ConsultationType string    `json:"consultationType,omitempty"`
	ClientName       string    `json:"clientName,omitempty"`
	ClientEmail      string    `json:"clientEmail,omitempty"`
	ClientPhone      string    `json:"clientPhone,omitempty"`
	CancelReason     string    `json:"cancelReason,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// IsCancellable checks if the booking can be cancelled
func (b *Booking) IsCancellable() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// IsValidConsultationType checks if the consultation type is known
func IsValidConsultationType(t string) bool {
	switch t {
	case ConsultationPhone, ConsultationVideo, ConsultationInPerson:
		return true
	}
	return false
}
