package services

import (
	"testing"
	"time"

	"legali_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func samplePortfolio() []models.Investment {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	return []models.Investment{
		{
			ReceiptNumber: "LGL-1", CaseTitle: "Patent case", Amount: 2000, PlatformFee: 50, Total: 2050,
			ExpectedReturnMin: 4000, ExpectedReturnMax: 8000, Status: models.InvestmentStatusActive, CreatedAt: day,
		},
		{
			ReceiptNumber: "LGL-2", CaseTitle: "Class action", Amount: 1000, PlatformFee: 25, Total: 1025,
			ExpectedReturnMin: 1500, ExpectedReturnMax: 2500, Status: models.InvestmentStatusSettled,
			CurrentValue: 1800, CreatedAt: day,
		},
	}
}

func TestSummarizePortfolio(t *testing.T) {
	s := SummarizePortfolio(samplePortfolio())
	assert.Equal(t, PortfolioSummary{
		Count:             2,
		ActiveCount:       1,
		TotalInvested:     3000,
		TotalFees:         75,
		CurrentValue:      3800,
		ExpectedReturnMin: 5500,
		ExpectedReturnMax: 10500,
	}, s)

	assert.Equal(t, PortfolioSummary{}, SummarizePortfolio(nil))
}

func TestExportPortfolio(t *testing.T) {
	buf, err := ExportPortfolio(samplePortfolio())
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Investments", "Summary"}, f.GetSheetList())

	rows, err := f.GetRows("Investments")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Receipt", rows[0][0])
	assert.Equal(t, "LGL-1", rows[1][0])
	assert.Equal(t, "Class action", rows[2][1])
	assert.Equal(t, "2025-06-10", rows[2][2])

	count, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "2", count)
}

func TestExportEmptyPortfolio(t *testing.T) {
	buf, err := ExportPortfolio(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Investments")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
