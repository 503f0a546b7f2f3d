package models

import "time"

// Lawyer availability constants
const (
	AvailabilityAvailable = "available"
	AvailabilityBusy      = "busy"
	AvailabilityOffline   = "offline"
)

// Lawyer verification constants
const (
	VerificationVerified   = "verified"
	VerificationPending    = "pending"
	VerificationUnverified = "unverified"
)

// Lawyer is a marketplace listing. Listings are read-only during a session.
type Lawyer struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	Email               string               `json:"email"`
	ProfileImage        string               `json:"profileImage,omitempty"`
	Credentials         []string             `json:"credentials"`
	Jurisdiction        []string             `json:"jurisdiction"`
	Specialties         []string             `json:"specialties"`
	Experience          int                  `json:"experience"` // years
	Rating              float64              `json:"rating"`     // 1-5
	ReviewCount         int                  `json:"reviewCount"`
	HourlyRate          float64              `json:"hourlyRate"`
	Availability        string               `json:"availability"`
	Languages           []string             `json:"languages"`
	Bio                 string               `json:"bio"`
	CaseResults         []CaseResult         `json:"caseResults"`
	PricingPackages     []PricingPackage     `json:"pricingPackages"`
	VideoIntroURL       string               `json:"videoIntroUrl,omitempty"`
	VerificationStatus  string               `json:"verificationStatus"`
	DisciplinaryHistory []DisciplinaryRecord `json:"disciplinaryHistory"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

// CaseResult is a past outcome advertised on a lawyer profile
type CaseResult struct {
	ID          string `json:"id"`
	CaseType    string `json:"caseType"`
	Outcome     string `json:"outcome"`
	Description string `json:"description"`
	Year        int    `json:"year"`
}

// PricingPackage is a bookable service offered by a lawyer
type PricingPackage struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Duration    string   `json:"duration"` // e.g. "1 hour", "consultation"
	Features    []string `json:"features"`
}

// DisciplinaryRecord is a public disciplinary entry
type DisciplinaryRecord struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Resolution  string `json:"resolution"`
}

// FindPackage returns the pricing package with the given ID
func (l *Lawyer) FindPackage(id string) (*PricingPackage, bool) {
	for i := range l.PricingPackages {
		if l.PricingPackages[i].ID == id {
			return &l.PricingPackages[i], true
		}
	}
	return nil, false
}

// IsValidAvailability checks if the availability value is known
func IsValidAvailability(availability string) bool {
	switch availability {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityOffline:
		return true
	}
	return false
}
