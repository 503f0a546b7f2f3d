package wizard

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"legali_app_go/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// InvestmentStep is a state of the investment wizard
type InvestmentStep string

const (
	StepAmount      InvestmentStep = "amount"
	StepDisclosures InvestmentStep = "disclosures"
	StepPayment     InvestmentStep = "payment"
	StepCompleted   InvestmentStep = "confirmation"
)

// PlatformFeeRate is the flat fee charged on every investment
const PlatformFeeRate = 0.025

// MaxInvestment is the largest single investment accepted
const MaxInvestment = 1_000_000_000

// Multiples used when a case does not publish its expected return
const (
	DefaultReturnMin = 1.5
	DefaultReturnMax = 3.0
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatUSD formats a whole-dollar amount, e.g. $25,000
func FormatUSD(amount float64) string {
	return usd.Sprintf("$%.0f", math.Round(amount))
}

// ExpectedReturn returns the payout range for an amount invested in c
func ExpectedReturn(c models.LitigationCase, amount float64) (float64, float64) {
	lo, hi := c.ExpectedReturnMin, c.ExpectedReturnMax
	if lo == 0 {
		lo = DefaultReturnMin
	}
	if hi == 0 {
		hi = DefaultReturnMax
	}
	return amount * lo, amount * hi
}

// PlatformFee returns the fee charged on amount
func PlatformFee(amount float64) float64 {
	return amount * PlatformFeeRate
}

// Disclosures are the acknowledgments required before payment
type Disclosures struct {
	DisclosureAcknowledged bool `json:"disclosureAcknowledged"`
	RiskAcknowledged       bool `json:"riskAcknowledged"`
	KYCConfirmed           bool `json:"kycConfirmed"`
}

func (d Disclosures) complete() bool {
	return d.DisclosureAcknowledged && d.RiskAcknowledged && d.KYCConfirmed
}

// InvestmentSubmitFunc processes a materialized investment
type InvestmentSubmitFunc func(ctx context.Context, investment models.Investment) (*models.Investment, error)

// InvestmentState is a read-only snapshot of the wizard
type InvestmentState struct {
	Step                InvestmentStep     `json:"step"`
	CaseID              string             `json:"caseId"`
	CaseTitle           string             `json:"caseTitle"`
	MinimumInvestment   float64            `json:"minimumInvestment"`
	Amount              float64            `json:"amount"`
	InvestorNote        string             `json:"investorNote,omitempty"`
	PlatformFee         float64            `json:"platformFee"`
	Total               float64            `json:"total"`
	ExpectedReturnMin   float64            `json:"expectedReturnMin"`
	ExpectedReturnMax   float64            `json:"expectedReturnMax"`
	ExpectedReturnLabel string             `json:"expectedReturnLabel"`
	Disclosures         Disclosures        `json:"disclosures"`
	TermsAccepted       bool               `json:"termsAccepted"`
	Submitting          bool               `json:"submitting"`
	Receipt             *models.Investment `json:"receipt,omitempty"`
}

// Investment is the case investment wizard:
// amount -> disclosures -> payment -> confirmation.
type Investment struct {
	mu            sync.Mutex
	lawsuit       models.LitigationCase
	investorID    string
	step          InvestmentStep
	amount        float64
	note          string
	disclosures   Disclosures
	termsAccepted bool
	submitting    bool
	receipt       *models.Investment
}

// NewInvestment starts an investment wizard for a case
func NewInvestment(lawsuit models.LitigationCase, investorID string) *Investment {
	return &Investment{
		lawsuit:    lawsuit,
		investorID: investorID,
		step:       StepAmount,
	}
}

// Step returns the current step
func (w *Investment) Step() InvestmentStep {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// CaseID returns the case being invested in
func (w *Investment) CaseID() string {
	return w.lawsuit.ID
}

// EnterAmount validates the amount against the case minimum and advances to disclosures
func (w *Investment) EnterAmount(amount, note string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.at(StepAmount); err != nil {
		return err
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 || value < w.lawsuit.MinimumInvestment {
		return ValidationErrors{
			"amount": "Minimum investment is " + FormatUSD(w.lawsuit.MinimumInvestment),
		}
	}
	if value > MaxInvestment {
		return ValidationErrors{"amount": "Maximum investment is " + FormatUSD(MaxInvestment)}
	}

	w.amount = value
	w.note = strings.TrimSpace(note)
	w.step = StepDisclosures
	return nil
}

// Acknowledge records the disclosures and advances to payment when all are given
func (w *Investment) Acknowledge(d Disclosures) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.at(StepDisclosures); err != nil {
		return err
	}

	w.disclosures = d
	if !d.complete() {
		return ValidationErrors{"disclosures": "Please review and acknowledge all required disclosures."}
	}
	w.step = StepPayment
	return nil
}

// Pay accepts the terms and submits the investment. On failure the wizard
// stays on payment with its data intact.
func (w *Investment) Pay(ctx context.Context, termsAccepted bool, submit InvestmentSubmitFunc) (*models.Investment, error) {
	w.mu.Lock()
	if err := w.at(StepPayment); err != nil {
		w.mu.Unlock()
		return nil, err
	}
	w.termsAccepted = termsAccepted
	if !termsAccepted {
		w.mu.Unlock()
		return nil, ValidationErrors{"terms": "Please accept the terms and conditions to proceed."}
	}
	w.submitting = true
	investment := w.materialize()
	w.mu.Unlock()

	processed, err := submit(ctx, investment)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubmissionRejected, err)
	}

	w.receipt = processed
	w.step = StepCompleted
	return processed, nil
}

// Back returns to the previous step. exit reports that the caller should
// leave the flow for the case detail page.
func (w *Investment) Back() (exit bool, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.submitting {
		return false, ErrSubmissionInProgress
	}

	switch w.step {
	case StepAmount:
		return true, nil
	case StepDisclosures:
		w.step = StepAmount
	case StepPayment:
		w.step = StepDisclosures
	}
	return false, nil
}

// Receipt returns the processed investment once the flow completed
func (w *Investment) Receipt() (*models.Investment, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.receipt, w.receipt != nil
}

// State returns a snapshot of the wizard
func (w *Investment) State() InvestmentState {
	w.mu.Lock()
	defer w.mu.Unlock()

	// before an amount is entered the range is shown for the minimum
	basis := w.amount
	if basis == 0 {
		basis = w.lawsuit.MinimumInvestment
	}
	lo, hi := ExpectedReturn(w.lawsuit, basis)

	return InvestmentState{
		Step:                w.step,
		CaseID:              w.lawsuit.ID,
		CaseTitle:           w.lawsuit.Title,
		MinimumInvestment:   w.lawsuit.MinimumInvestment,
		Amount:              w.amount,
		InvestorNote:        w.note,
		PlatformFee:         PlatformFee(w.amount),
		Total:               w.amount + PlatformFee(w.amount),
		ExpectedReturnMin:   lo,
		ExpectedReturnMax:   hi,
		ExpectedReturnLabel: FormatUSD(lo) + " - " + FormatUSD(hi),
		Disclosures:         w.disclosures,
		TermsAccepted:       w.termsAccepted,
		Submitting:          w.submitting,
		Receipt:             w.receipt,
	}
}

func (w *Investment) at(step InvestmentStep) error {
	if w.submitting {
		return ErrSubmissionInProgress
	}
	if w.step != step {
		return fmt.Errorf("%w: wizard is at %s", ErrInvalidTransition, w.step)
	}
	return nil
}

func (w *Investment) materialize() models.Investment {
	fee := PlatformFee(w.amount)
	lo, hi := ExpectedReturn(w.lawsuit, w.amount)
	return models.Investment{
		CaseID:            w.lawsuit.ID,
		CaseTitle:         w.lawsuit.Title,
		InvestorID:        w.investorID,
		Amount:            w.amount,
		PlatformFee:       fee,
		Total:             w.amount + fee,
		ExpectedReturnMin: lo,
		ExpectedReturnMax: hi,
		InvestorNote:      w.note,
		Status:            models.InvestmentStatusActive,
	}
}
