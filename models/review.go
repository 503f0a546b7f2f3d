package models

// Review is a client review of a lawyer
type Review struct {
	ID                 string  `json:"id"`
	LawyerID           string  `json:"lawyerId"`
	ClientName         string  `json:"clientName"`
	Rating             float64 `json:"rating"`
	Comment            string  `json:"comment"`
	CaseType           string  `json:"caseType"`
	Date               string  `json:"date"`
	VerificationStatus string  `json:"verificationStatus"` // verified, pending
	IsAnonymous        bool    `json:"isAnonymous"`
}

// DisplayName hides the client name of anonymous reviews
func (r Review) DisplayName() string {
	if r.IsAnonymous {
		return "Anonymous"
	}
	return r.ClientName
}
