package models

// Risk level constants
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Case moderation constants. Only approved cases are public.
const (
	AdminStatusPending  = "Pending"
	AdminStatusApproved = "Approved"
	AdminStatusRejected = "Rejected"
)

// Case funding status constants
const (
	CaseStatusActive    = "Active"
	CaseStatusFunded    = "Funded"
	CaseStatusCompleted = "Completed"
	CaseStatusCancelled = "Cancelled"
)

// LitigationCase is a crowdfunding listing for a lawsuit.
// AmountRaised <= FundingGoal is expected but not enforced.
type LitigationCase struct {
	ID                 string       `json:"id"`
	Title              string       `json:"title"`
	Description        string       `json:"description"`
	Summary            string       `json:"summary"`
	Category           string       `json:"category"`
	PracticeArea       string       `json:"practiceArea"`
	FundingGoal        float64      `json:"fundingGoal"`
	AmountRaised       float64      `json:"amountRaised"`
	InvestorCount      int          `json:"investorCount"`
	RiskLevel          string       `json:"riskLevel"`
	RiskProfile        string       `json:"riskProfile"`
	ExpectedReturn     string       `json:"expectedReturn"`
	ExpectedReturnMin  float64      `json:"expectedReturnMin"`
	ExpectedReturnMax  float64      `json:"expectedReturnMax"`
	Timeframe          string       `json:"timeframe"`
	LawFirm            string       `json:"lawFirm"`
	LeadCounsel        string       `json:"leadCounsel"`
	CounselExperience  string       `json:"counselExperience"`
	Image              string       `json:"image"`
	Status             string       `json:"status"`
	FundingStage       string       `json:"fundingStage"`
	ProgressPercentage float64      `json:"progressPercentage"`
	DaysRemaining      int          `json:"daysRemaining"`
	MinimumInvestment  float64      `json:"minimumInvestment"`
	CaseType           string       `json:"caseType"`
	Jurisdiction       string       `json:"jurisdiction"`
	FiledDate          string       `json:"filedDate"` // YYYY-MM-DD
	LastUpdate         string       `json:"lastUpdate"`
	DisclosureDocument string       `json:"disclosureDocument"`
	KYCRequired        bool         `json:"kycRequired"`
	EscrowStatus       string       `json:"escrowStatus"`
	Updates            []CaseUpdate `json:"updates"`
	KeyFactors         []string     `json:"keyFactors"`
	Risks              []string     `json:"risks"`
	AdminStatus        string       `json:"adminStatus"`
	ComplianceNotes    string       `json:"complianceNotes"`
}

// CaseUpdate is a dated progress note on a litigation case
type CaseUpdate struct {
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// IsPublic reports whether the case may be shown to public consumers
func (c *LitigationCase) IsPublic() bool {
	return c.AdminStatus == AdminStatusApproved
}

// Progress returns the funded fraction (AmountRaised / FundingGoal)
func (c *LitigationCase) Progress() float64 {
	if c.FundingGoal <= 0 {
		return 0
	}
	return c.AmountRaised / c.FundingGoal
}

// RiskOrdinal orders risk levels Low < Medium < High. Unknown levels sort last.
func RiskOrdinal(level string) int {
	switch level {
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	}
	return 4
}
