package pipeline

import (
	"testing"

	"legali_app_go/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCases() []models.LitigationCase {
	return []models.LitigationCase{
		{ID: "c1", Title: "Tech Workers v. MegaCorp", Description: "Wage theft class action", LawFirm: "Smith & Partners",
			PracticeArea: "Employment Law", FundingStage: "Active Funding", RiskLevel: models.RiskMedium, RiskProfile: models.RiskMedium,
			ExpectedReturnMin: 2.0, ExpectedReturnMax: 3.0, FundingGoal: 500000, AmountRaised: 250000,
			Status: models.CaseStatusActive, FiledDate: "2024-01-15", AdminStatus: models.AdminStatusApproved},
		{ID: "c2", Title: "Patent Infringement Claim", Description: "Software patent dispute", LawFirm: "IP Legal Group",
			PracticeArea: "Intellectual Property", FundingStage: "Early Funding", RiskLevel: models.RiskHigh, RiskProfile: models.RiskHigh,
			ExpectedReturnMin: 4.0, ExpectedReturnMax: 8.0, FundingGoal: 1000000, AmountRaised: 100000,
			Status: models.CaseStatusActive, FiledDate: "2024-03-01", AdminStatus: models.AdminStatusApproved},
		{ID: "c3", Title: "Hidden Pending Case", Description: "Awaiting review", LawFirm: "Smith & Partners",
			PracticeArea: "Employment Law", FundingStage: "Active Funding", RiskLevel: models.RiskLow, RiskProfile: models.RiskLow,
			ExpectedReturnMin: 1.5, ExpectedReturnMax: 2.0, FundingGoal: 100000, AmountRaised: 90000,
			Status: models.CaseStatusActive, FiledDate: "2024-06-01", AdminStatus: models.AdminStatusPending},
		{ID: "c4", Title: "Injury Settlement", Description: "Truck accident", LawFirm: "Roadway Law",
			PracticeArea: "Personal Injury", FundingStage: "Fully Funded", RiskLevel: models.RiskLow, RiskProfile: models.RiskLow,
			ExpectedReturnMin: 1.5, ExpectedReturnMax: 2.2, FundingGoal: 200000, AmountRaised: 200000,
			Status: models.CaseStatusFunded, FiledDate: "2023-11-20", AdminStatus: models.AdminStatusApproved},
		{ID: "c5", Title: "Rejected Case", Description: "Did not pass compliance", LawFirm: "Roadway Law",
			PracticeArea: "Personal Injury", FundingStage: "Early Funding", RiskLevel: models.RiskHigh, RiskProfile: models.RiskHigh,
			ExpectedReturnMin: 5, ExpectedReturnMax: 9, FundingGoal: 100000, AmountRaised: 5000,
			Status: models.CaseStatusActive, FiledDate: "2024-07-01", AdminStatus: models.AdminStatusRejected},
	}
}

func caseIDs(cases []models.LitigationCase) []string {
	out := make([]string, len(cases))
	for i, c := range cases {
		out[i] = c.ID
	}
	return out
}

func TestFilterCasesApprovalGate(t *testing.T) {
	page := FilterCases(testCases(), CaseFilters{
		PracticeArea: AllPracticeAreas,
		FundingStage: AllStages,
		RiskProfile:  AllRiskLevels,
		ReturnRange:  AllReturns,
	})

	assert.Equal(t, []string{"c1", "c2", "c4"}, caseIDs(page.Cases))
	for _, c := range page.Cases {
		assert.Equal(t, models.AdminStatusApproved, c.AdminStatus)
	}

	// the gate wins even when every filter points at a hidden case
	page = FilterCases(testCases(), CaseFilters{SearchTerm: "hidden", RiskProfile: models.RiskLow})
	assert.Empty(t, page.Cases)
}

func TestFilterCasesFilters(t *testing.T) {
	tests := []struct {
		name    string
		filters CaseFilters
		want    []string
	}{
		{"search title", CaseFilters{SearchTerm: "megacorp"}, []string{"c1"}},
		{"search description", CaseFilters{SearchTerm: "TRUCK"}, []string{"c4"}},
		{"search law firm", CaseFilters{SearchTerm: "smith"}, []string{"c1"}},
		{"practice area", CaseFilters{PracticeArea: "Intellectual Property"}, []string{"c2"}},
		{"funding stage", CaseFilters{FundingStage: "Fully Funded"}, []string{"c4"}},
		{"risk profile", CaseFilters{RiskProfile: models.RiskMedium}, []string{"c1"}},
		{"return 1.5x - 2.5x", CaseFilters{ReturnRange: "1.5x - 2.5x"}, []string{"c1", "c4"}},
		{"return 4x+", CaseFilters{ReturnRange: "4x+"}, []string{"c2"}},
		{"return 2.5x - 4x touches bounds", CaseFilters{ReturnRange: "2.5x - 4x"}, []string{"c1", "c2"}},
		{"unknown return label", CaseFilters{ReturnRange: "10x"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := FilterCases(testCases(), tt.filters)
			if diff := cmp.Diff(tt.want, caseIDs(page.Cases)); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReturnRangeOverlap(t *testing.T) {
	low, ok := FindReturnRange("1.5x - 2.5x")
	require.True(t, ok)
	high, ok := FindReturnRange("4x+")
	require.True(t, ok)

	assert.True(t, low.Overlaps(2.0, 3.0))
	assert.False(t, high.Overlaps(2.0, 3.0))
	assert.True(t, high.Overlaps(3.0, 4.0))

	_, ok = FindReturnRange("nope")
	assert.False(t, ok)
}

func TestSortCases(t *testing.T) {
	tests := []struct {
		sortBy string
		want   []string
	}{
		{CaseSortNewest, []string{"c2", "c1", "c4"}},
		{CaseSortHighestReturn, []string{"c2", "c1", "c4"}},
		{CaseSortLowestRisk, []string{"c4", "c1", "c2"}},
		{CaseSortFundingHigh, []string{"c1", "c4", "c2"}},
		{CaseSortProgress, []string{"c4", "c1", "c2"}},
		{"unknown", []string{"c1", "c2", "c4"}},
	}

	for _, tt := range tests {
		t.Run(tt.sortBy, func(t *testing.T) {
			page := FilterCases(testCases(), CaseFilters{SortBy: tt.sortBy})
			assert.Equal(t, tt.want, caseIDs(page.Cases))

			again := FilterCases(page.Cases, CaseFilters{SortBy: tt.sortBy})
			assert.Equal(t, caseIDs(page.Cases), caseIDs(again.Cases))
		})
	}
}

func TestFilterCasesPagination(t *testing.T) {
	page := FilterCases(testCases(), CaseFilters{SortBy: CaseSortNewest, Page: 2, Limit: 2})
	assert.Equal(t, []string{"c4"}, caseIDs(page.Cases))
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)

	all := FilterCases(testCases(), CaseFilters{})
	assert.Len(t, all.Cases, 3)
	assert.Equal(t, 1, all.TotalPages)

	huge := FilterCases(testCases(), CaseFilters{Page: 200000000000000000, Limit: 50})
	assert.Empty(t, huge.Cases)
	assert.Equal(t, 3, huge.Total)
	assert.Equal(t, 1, huge.TotalPages)
}

func TestStats(t *testing.T) {
	stats := Stats(testCases())
	assert.Equal(t, CaseStats{TotalCases: 3, ActiveCases: 2, FundedCases: 1, TotalRaised: 550000}, stats)
}

func TestFindPublicCase(t *testing.T) {
	c, ok := FindPublicCase(testCases(), "c1")
	require.True(t, ok)
	assert.Equal(t, "Tech Workers v. MegaCorp", c.Title)

	_, ok = FindPublicCase(testCases(), "c3")
	assert.False(t, ok)
	_, ok = FindPublicCase(testCases(), "missing")
	assert.False(t, ok)
}
