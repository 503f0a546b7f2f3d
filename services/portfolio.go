package services

import (
	"bytes"
	"fmt"

	"legali_app_go/models"

	"github.com/xuri/excelize/v2"
)

// PortfolioSummary totals an investor's completed investments
type PortfolioSummary struct {
	Count             int     `json:"count"`
	ActiveCount       int     `json:"activeCount"`
	TotalInvested     float64 `json:"totalInvested"`
	TotalFees         float64 `json:"totalFees"`
	CurrentValue      float64 `json:"currentValue"`
	ExpectedReturnMin float64 `json:"expectedReturnMin"`
	ExpectedReturnMax float64 `json:"expectedReturnMax"`
}

// SummarizePortfolio computes totals over the given investments
func SummarizePortfolio(investments []models.Investment) PortfolioSummary {
	var s PortfolioSummary
	for i := range investments {
		inv := &investments[i]
		s.Count++
		if inv.Status == models.InvestmentStatusActive {
			s.ActiveCount++
		}
		s.TotalInvested += inv.Amount
		s.TotalFees += inv.PlatformFee
		s.CurrentValue += inv.Value()
		s.ExpectedReturnMin += inv.ExpectedReturnMin
		s.ExpectedReturnMax += inv.ExpectedReturnMax
	}
	return s
}

const (
	sheetInvestments = "Investments"
	sheetSummary     = "Summary"
)

var investmentHeaders = []string{
	"Receipt", "Case", "Date", "Amount", "Platform Fee", "Total",
	"Expected Return (Min)", "Expected Return (Max)", "Status", "Note",
}

// ExportPortfolio writes the investments and their totals to an XLSX workbook
func ExportPortfolio(investments []models.Investment) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetInvestments); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	moneyStyle, _ := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00

	for i, h := range investmentHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetInvestments, cell, h)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(investmentHeaders), 1)
	f.SetCellStyle(sheetInvestments, "A1", lastHeader, headerStyle)

	for i, inv := range investments {
		row := i + 2
		values := []interface{}{
			inv.ReceiptNumber,
			inv.CaseTitle,
			inv.CreatedAt.Format("2006-01-02"),
			inv.Amount,
			inv.PlatformFee,
			inv.Total,
			inv.ExpectedReturnMin,
			inv.ExpectedReturnMax,
			inv.Status,
			inv.InvestorNote,
		}
		start, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheetInvestments, start, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", row, err)
		}
		f.SetCellStyle(sheetInvestments, fmt.Sprintf("D%d", row), fmt.Sprintf("H%d", row), moneyStyle)
	}
	f.SetColWidth(sheetInvestments, "A", "B", 32)
	f.SetColWidth(sheetInvestments, "C", "I", 16)

	summary := SummarizePortfolio(investments)
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}
	rows := [][2]interface{}{
		{"Investments", summary.Count},
		{"Active", summary.ActiveCount},
		{"Total Invested", summary.TotalInvested},
		{"Platform Fees", summary.TotalFees},
		{"Current Value", summary.CurrentValue},
		{"Expected Return (Min)", summary.ExpectedReturnMin},
		{"Expected Return (Max)", summary.ExpectedReturnMax},
	}
	for i, r := range rows {
		f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", i+1), r[0])
		f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", i+1), r[1])
	}
	f.SetCellStyle(sheetSummary, "A1", fmt.Sprintf("A%d", len(rows)), headerStyle)
	f.SetCellStyle(sheetSummary, "B3", fmt.Sprintf("B%d", len(rows)), moneyStyle)
	f.SetColWidth(sheetSummary, "A", "A", 24)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}
