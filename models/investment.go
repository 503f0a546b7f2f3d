package models

import "time"

// Investment status constants
const (
	InvestmentStatusActive  = "Active"
	InvestmentStatusSettled = "Settled"
	InvestmentStatusLost    = "Lost"
)

// Investment is a completed commitment of funds to a litigation case
type Investment struct {
	ID                string    `json:"id"`
	CaseID            string    `json:"caseId"`
	CaseTitle         string    `json:"caseTitle"`
	InvestorID        string    `json:"investorId"`
	Amount            float64   `json:"amount"`
	PlatformFee       float64   `json:"platformFee"`
	Total             float64   `json:"total"`
	ExpectedReturnMin float64   `json:"expectedReturnMin"` // currency, not multiple
	ExpectedReturnMax float64   `json:"expectedReturnMax"`
	InvestorNote      string    `json:"investorNote,omitempty"`
	Status            string    `json:"status"`
	ReceiptNumber     string    `json:"receiptNumber"`
	CurrentValue      float64   `json:"currentValue,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Value returns the current value, falling back to the invested amount
func (i *Investment) Value() float64 {
	if i.CurrentValue > 0 {
		return i.CurrentValue
	}
	return i.Amount
}
