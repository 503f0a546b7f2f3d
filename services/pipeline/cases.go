package pipeline

import (
	"sort"
	"strings"

	"legali_app_go/models"
)

// Filter sentinels. Selecting one disables the corresponding filter.
const (
	AllPracticeAreas = "All Practice Areas"
	AllStages        = "All Stages"
	AllRiskLevels    = "All Risk Levels"
	AllReturns       = "All Returns"
)

// Case sort keys
const (
	CaseSortNewest        = "newest"
	CaseSortHighestReturn = "highest-return"
	CaseSortLowestRisk    = "lowest-risk"
	CaseSortFundingHigh   = "funding-high"
	CaseSortProgress      = "progress"
)

// ReturnRange is a labelled band of expected return multiples
type ReturnRange struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// ReturnRanges is the fixed table of selectable return bands
var ReturnRanges = []ReturnRange{
	{Label: AllReturns, Min: 0, Max: 100},
	{Label: "1.5x - 2.5x", Min: 1.5, Max: 2.5},
	{Label: "2.5x - 4x", Min: 2.5, Max: 4.0},
	{Label: "3x - 6x", Min: 3.0, Max: 6.0},
	{Label: "4x+", Min: 4.0, Max: 100},
}

// PracticeAreas lists the selectable practice areas, sentinel first
var PracticeAreas = []string{
	AllPracticeAreas,
	"Employment Law",
	"Intellectual Property",
	"Personal Injury",
	"Commercial Litigation",
	"Securities Litigation",
	"Product Liability",
	"Medical Malpractice",
	"Antitrust",
	"Environmental Law",
}

// FundingStages lists the selectable funding stages, sentinel first
var FundingStages = []string{
	AllStages,
	"Early Funding",
	"Active Funding",
	"Fully Funded",
	"Pre-Settlement",
}

// RiskLevels lists the selectable risk profiles, sentinel first
var RiskLevels = []string{
	AllRiskLevels,
	models.RiskLow,
	models.RiskMedium,
	models.RiskHigh,
}

// CaseSorts lists the supported case sort keys
var CaseSorts = []string{
	CaseSortNewest,
	CaseSortHighestReturn,
	CaseSortLowestRisk,
	CaseSortFundingHigh,
	CaseSortProgress,
}

// CaseFilters holds the case browse criteria
type CaseFilters struct {
	SearchTerm   string `json:"searchTerm,omitempty" query:"search"`
	PracticeArea string `json:"practiceArea,omitempty" query:"practiceArea"`
	FundingStage string `json:"fundingStage,omitempty" query:"fundingStage"`
	RiskProfile  string `json:"riskProfile,omitempty" query:"riskProfile"`
	ReturnRange  string `json:"returnRange,omitempty" query:"returnRange"`
	SortBy       string `json:"sortBy,omitempty" query:"sortBy"`
	Page         int    `json:"page,omitempty" query:"page"`
	Limit        int    `json:"limit,omitempty" query:"limit"`
}

// CasePage is the result of a case browse
type CasePage struct {
	Cases      []models.LitigationCase `json:"cases"`
	Total      int                     `json:"total"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
	TotalPages int                     `json:"totalPages"`
}

// CaseStats summarises the public case listing
type CaseStats struct {
	TotalCases  int     `json:"totalCases"`
	ActiveCases int     `json:"activeCases"`
	FundedCases int     `json:"fundedCases"`
	TotalRaised float64 `json:"totalRaised"`
}

// FindReturnRange looks up a return band by label
func FindReturnRange(label string) (ReturnRange, bool) {
	for _, r := range ReturnRanges {
		if r.Label == label {
			return r, true
		}
	}
	return ReturnRange{}, false
}

// Overlaps reports whether [min, max] intersects the band, bounds inclusive
func (r ReturnRange) Overlaps(min, max float64) bool {
	return min <= r.Max && max >= r.Min
}

// FilterCases applies the approval gate, the filters and the sort.
// Only approved cases are ever returned. The input slice is not modified.
func FilterCases(cases []models.LitigationCase, filters CaseFilters) CasePage {
	filtered := make([]models.LitigationCase, 0, len(cases))
	for _, c := range cases {
		if !c.IsPublic() {
			continue
		}
		if matchesCase(c, filters) {
			filtered = append(filtered, c)
		}
	}

	SortCases(filtered, filters.SortBy)

	result := CasePage{Cases: filtered, Total: len(filtered), Page: 1, Limit: len(filtered), TotalPages: 1}
	if filters.Limit > 0 {
		result.Cases, result.Page, result.Limit, result.TotalPages = Paginate(filtered, filters.Page, filters.Limit)
	} else if len(filtered) == 0 {
		result.TotalPages = 0
	}
	return result
}

func matchesCase(c models.LitigationCase, f CaseFilters) bool {
	if f.SearchTerm != "" {
		term := strings.ToLower(f.SearchTerm)
		if !containsFold(c.Title, term) && !containsFold(c.Description, term) && !containsFold(c.LawFirm, term) {
			return false
		}
	}
	if selected(f.PracticeArea, AllPracticeAreas) && c.PracticeArea != f.PracticeArea {
		return false
	}
	if selected(f.FundingStage, AllStages) && c.FundingStage != f.FundingStage {
		return false
	}
	if selected(f.RiskProfile, AllRiskLevels) && c.RiskProfile != f.RiskProfile {
		return false
	}
	if selected(f.ReturnRange, AllReturns) {
		r, ok := FindReturnRange(f.ReturnRange)
		if !ok || !r.Overlaps(c.ExpectedReturnMin, c.ExpectedReturnMax) {
			return false
		}
	}
	return true
}

func selected(value, sentinel string) bool {
	return value != "" && value != sentinel
}

// SortCases sorts in place. Unknown keys leave the order untouched.
func SortCases(cases []models.LitigationCase, sortBy string) {
	var less func(a, b *models.LitigationCase) bool
	switch sortBy {
	case CaseSortNewest:
		// FiledDate is YYYY-MM-DD so lexical order is chronological
		less = func(a, b *models.LitigationCase) bool { return a.FiledDate > b.FiledDate }
	case CaseSortHighestReturn:
		less = func(a, b *models.LitigationCase) bool { return a.ExpectedReturnMax > b.ExpectedReturnMax }
	case CaseSortLowestRisk:
		less = func(a, b *models.LitigationCase) bool {
			return models.RiskOrdinal(a.RiskLevel) < models.RiskOrdinal(b.RiskLevel)
		}
	case CaseSortFundingHigh:
		less = func(a, b *models.LitigationCase) bool { return a.AmountRaised > b.AmountRaised }
	case CaseSortProgress:
		less = func(a, b *models.LitigationCase) bool { return a.Progress() > b.Progress() }
	default:
		return
	}

	sort.SliceStable(cases, func(i, j int) bool {
		return less(&cases[i], &cases[j])
	})
}

// Stats computes the listing banner over approved cases only
func Stats(cases []models.LitigationCase) CaseStats {
	var stats CaseStats
	for _, c := range cases {
		if !c.IsPublic() {
			continue
		}
		stats.TotalCases++
		switch c.Status {
		case models.CaseStatusActive:
			stats.ActiveCases++
		case models.CaseStatusFunded:
			stats.FundedCases++
		}
		stats.TotalRaised += c.AmountRaised
	}
	return stats
}

// FindPublicCase returns the approved case with the given ID
func FindPublicCase(cases []models.LitigationCase, id string) (*models.LitigationCase, bool) {
	for i := range cases {
		if cases[i].ID == id && cases[i].IsPublic() {
			c := cases[i]
			return &c, true
		}
	}
	return nil, false
}
