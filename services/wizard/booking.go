package wizard

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"legali_app_go/models"
)

// BookingStep is a state of the booking wizard
type BookingStep string

const (
	StepDateTime     BookingStep = "datetime"
	StepDetails      BookingStep = "details"
	StepConfirmation BookingStep = "confirmation"
	StepSubmitted    BookingStep = "submitted"
)

// DateLayout is the civil date format used for bookings
const DateLayout = "2006-01-02"

// Default operational hours, weekdays only
var operationalHours = []string{"09:00 AM", "10:00 AM", "11:00 AM", "01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM"}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AvailableTimeSlots returns the bookable slots for a YYYY-MM-DD date.
// Weekends and unparseable dates have no slots.
func AvailableTimeSlots(date string) []string {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return []string{}
	}
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return []string{}
	}
	slots := make([]string, len(operationalHours))
	copy(slots, operationalHours)
	return slots
}

// BookingDetails holds the client details step
type BookingDetails struct {
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	ConsultationType string `json:"consultationType"`
	CaseDescription  string `json:"caseDescription"`
	Duration         int    `json:"duration"`
}

// BookingSubmitFunc persists a materialized booking
type BookingSubmitFunc func(ctx context.Context, booking models.Booking) (*models.Booking, error)

// BookingState is a read-only snapshot of the wizard
type BookingState struct {
	Step           BookingStep     `json:"step"`
	LawyerID       string          `json:"lawyerId"`
	LawyerName     string          `json:"lawyerName"`
	PackageID      string          `json:"packageId,omitempty"`
	Date           string          `json:"date"`
	TimeSlot       string          `json:"timeSlot"`
	AvailableSlots []string        `json:"availableSlots"`
	Details        BookingDetails  `json:"details"`
	TotalAmount    float64         `json:"totalAmount"`
	Submitting     bool            `json:"submitting"`
	Result         *models.Booking `json:"result,omitempty"`
}

// Booking is the consultation booking wizard:
// datetime -> details -> confirmation -> submitted.
type Booking struct {
	mu         sync.Mutex
	now        func() time.Time
	lawyer     models.Lawyer
	pkg        *models.PricingPackage
	clientID   string
	step       BookingStep
	date       string
	timeSlot   string
	details    BookingDetails
	submitting bool
	result     *models.Booking
}

// BookingOption configures a booking wizard
type BookingOption func(*Booking)

// WithClock overrides the clock used to reject past dates
func WithClock(now func() time.Time) BookingOption {
	return func(b *Booking) {
		b.now = now
	}
}

// WithPackage prices the booking from a pricing package instead of the hourly rate
func WithPackage(pkg models.PricingPackage) BookingOption {
	return func(b *Booking) {
		b.pkg = &pkg
	}
}

// NewBooking starts a booking wizard for a lawyer
func NewBooking(lawyer models.Lawyer, clientID string, opts ...BookingOption) *Booking {
	b := &Booking{
		now:      time.Now,
		lawyer:   lawyer,
		clientID: clientID,
		step:     StepDateTime,
		details: BookingDetails{
			ConsultationType: models.ConsultationVideo,
			Duration:         models.DefaultBookingDuration,
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Step returns the current step
func (b *Booking) Step() BookingStep {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.step
}

// SelectDate sets the date. A different date clears the selected slot.
func (b *Booking) SelectDate(date string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.editable(StepDateTime); err != nil {
		return err
	}
	if date != b.date {
		b.date = date
		b.timeSlot = ""
	}
	return nil
}

// SelectTimeSlot sets the time slot for the selected date
func (b *Booking) SelectTimeSlot(slot string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.editable(StepDateTime); err != nil {
		return err
	}
	b.timeSlot = slot
	return nil
}

// UpdateDetails replaces the client details. Empty consultation type and
// duration fall back to video and 60 minutes.
func (b *Booking) UpdateDetails(details BookingDetails) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.editable(StepDetails); err != nil {
		return err
	}
	if details.ConsultationType == "" {
		details.ConsultationType = models.ConsultationVideo
	}
	if details.Duration == 0 {
		details.Duration = models.DefaultBookingDuration
	}
	b.details = details
	return nil
}

// Next validates the current step and advances. Confirmation advances only through Submit.
func (b *Booking) Next() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.submitting {
		return ErrSubmissionInProgress
	}

	switch b.step {
	case StepDateTime:
		if err := b.validateDateTime().orNil(); err != nil {
			return err
		}
		b.step = StepDetails
	case StepDetails:
		if err := b.validateDetails().orNil(); err != nil {
			return err
		}
		b.step = StepConfirmation
	default:
		return fmt.Errorf("%w: cannot advance from %s", ErrInvalidTransition, b.step)
	}
	return nil
}

// Back returns to the previous step keeping all entered data.
// It is a no-op on the first step and after submission.
func (b *Booking) Back() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.submitting {
		return ErrSubmissionInProgress
	}

	switch b.step {
	case StepDetails:
		b.step = StepDateTime
	case StepConfirmation:
		b.step = StepDetails
	}
	return nil
}

// Submit materializes the booking and hands it to submit. On failure the
// wizard stays on confirmation so the caller can retry.
func (b *Booking) Submit(ctx context.Context, submit BookingSubmitFunc) (*models.Booking, error) {
	b.mu.Lock()
	if b.submitting {
		b.mu.Unlock()
		return nil, ErrSubmissionInProgress
	}
	if b.step != StepConfirmation {
		step := b.step
		b.mu.Unlock()
		return nil, fmt.Errorf("%w: cannot submit from %s", ErrInvalidTransition, step)
	}
	b.submitting = true
	booking := b.materialize()
	b.mu.Unlock()

	created, err := submit(ctx, booking)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.submitting = false
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubmissionRejected, err)
	}

	b.result = created
	b.step = StepSubmitted
	return created, nil
}

// State returns a snapshot of the wizard
func (b *Booking) State() BookingState {
	b.mu.Lock()
	defer b.mu.Unlock()

	state := BookingState{
		Step:           b.step,
		LawyerID:       b.lawyer.ID,
		LawyerName:     b.lawyer.Name,
		Date:           b.date,
		TimeSlot:       b.timeSlot,
		AvailableSlots: AvailableTimeSlots(b.date),
		Details:        b.details,
		TotalAmount:    b.totalAmount(),
		Submitting:     b.submitting,
		Result:         b.result,
	}
	if b.pkg != nil {
		state.PackageID = b.pkg.ID
	}
	return state
}

func (b *Booking) editable(step BookingStep) error {
	if b.submitting {
		return ErrSubmissionInProgress
	}
	if b.step != step {
		return fmt.Errorf("%w: wizard is at %s", ErrInvalidTransition, b.step)
	}
	return nil
}

func (b *Booking) validateDateTime() ValidationErrors {
	errs := ValidationErrors{}

	dateOK := false
	if b.date == "" {
		errs["date"] = "Please select a date"
	} else if d, err := time.ParseInLocation(DateLayout, b.date, b.now().Location()); err != nil {
		errs["date"] = "Please enter a valid date"
	} else if d.Before(startOfDay(b.now())) {
		errs["date"] = "Cannot book for past dates"
	} else {
		dateOK = true
	}

	if b.timeSlot == "" {
		errs["timeSlot"] = "Please select a time slot"
	} else if dateOK && !contains(AvailableTimeSlots(b.date), b.timeSlot) {
		errs["timeSlot"] = "Selected time slot is not available"
	}
	return errs
}

func (b *Booking) validateDetails() ValidationErrors {
	errs := ValidationErrors{}
	d := b.details

	name := strings.TrimSpace(d.FullName)
	if name == "" {
		errs["fullName"] = "Full name is required"
	} else if len([]rune(name)) < 2 {
		errs["fullName"] = "Full name must be at least 2 characters"
	}

	email := strings.TrimSpace(d.Email)
	if email == "" {
		errs["email"] = "Email address is required"
	} else if !emailRegex.MatchString(email) {
		errs["email"] = "Please enter a valid email address"
	}

	desc := strings.TrimSpace(d.CaseDescription)
	if desc == "" {
		errs["caseDescription"] = "Case description is required"
	} else if len([]rune(desc)) < 10 {
		errs["caseDescription"] = "Please provide at least 10 characters describing your case"
	}

	if !models.IsValidConsultationType(d.ConsultationType) {
		errs["consultationType"] = "Please select a valid consultation type"
	}
	switch d.Duration {
	case 30, 60, 90:
	default:
		errs["duration"] = "Duration must be 30, 60 or 90 minutes"
	}
	return errs
}

func (b *Booking) totalAmount() float64 {
	if b.pkg != nil {
		return b.pkg.Price
	}
	return b.lawyer.HourlyRate * float64(b.details.Duration) / 60
}

func (b *Booking) materialize() models.Booking {
	booking := models.Booking{
		LawyerID:         b.lawyer.ID,
		ClientID:         b.clientID,
		Status:           models.BookingStatusPending,
		ScheduledDate:    b.date,
		ScheduledTime:    b.timeSlot,
		Duration:         b.details.Duration,
		TotalAmount:      b.totalAmount(),
		PaymentStatus:    models.PaymentStatusPending,
		Notes:            strings.TrimSpace(b.details.CaseDescription),
		ConsultationType: b.details.ConsultationType,
		ClientName:       strings.TrimSpace(b.details.FullName),
		ClientEmail:      strings.TrimSpace(b.details.Email),
		ClientPhone:      strings.TrimSpace(b.details.Phone),
	}
	if b.pkg != nil {
		booking.PackageID = b.pkg.ID
	}
	return booking
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
