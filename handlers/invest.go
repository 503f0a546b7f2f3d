package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"legali_app_go/middleware"
	"legali_app_go/services"
	"legali_app_go/services/pipeline"
	"legali_app_go/services/session"
	"legali_app_go/services/wizard"
	"legali_app_go/templates/components"

	"github.com/labstack/echo/v4"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// generateReceiptPDF is swapped in tests that run without Chrome
var generateReceiptPDF = services.GenerateReceiptPDF

// amountInput accepts the amount either as a JSON number or as the raw text field
type amountInput string

func (a *amountInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = amountInput(s)
		return nil
	}
	if string(data) == "null" {
		*a = ""
		return nil
	}
	*a = amountInput(data)
	return nil
}

// StartInvestmentRequest selects the case to invest in
type StartInvestmentRequest struct {
	CaseID string `json:"caseId"`
}

// AmountRequest is the first investment step
type AmountRequest struct {
	Amount       amountInput `json:"amount"`
	InvestorNote string      `json:"investorNote"`
}

// PaymentRequest is the last investment step
type PaymentRequest struct {
	TermsAccepted bool `json:"termsAccepted"`
}

func currentInvestment(store *session.Session) (*wizard.Investment, error) {
	w, ok := store.Investment()
	if !ok {
		return nil, echo.NewHTTPError(http.StatusNotFound, "No investment in progress")
	}
	return w, nil
}

// StartInvestmentHandler opens an investment wizard for an approved case
func StartInvestmentHandler(c echo.Context) error {
	var req StartInvestmentRequest
	if err := c.Bind(&req); err != nil || req.CaseID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "caseId is required")
	}

	cases, err := DataSource.ListCases(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	lawsuit, ok := pipeline.FindPublicCase(cases, req.CaseID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}

	store := middleware.GetSessionStore(c)
	w := wizard.NewInvestment(*lawsuit, store.UserID)
	store.SetInvestment(w)

	return c.JSON(http.StatusCreated, w.State())
}

// GetInvestmentStateHandler returns the in-progress investment
func GetInvestmentStateHandler(c echo.Context) error {
	w, err := currentInvestment(middleware.GetSessionStore(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, w.State())
}

// InvestmentAmountHandler validates the amount and advances to disclosures
func InvestmentAmountHandler(c echo.Context) error {
	w, err := currentInvestment(middleware.GetSessionStore(c))
	if err != nil {
		return err
	}

	var req AmountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}

	if err := w.EnterAmount(string(req.Amount), services.SanitizeText(req.InvestorNote)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, w.State())
}

// InvestmentDisclosuresHandler records the acknowledgments and advances to payment
func InvestmentDisclosuresHandler(c echo.Context) error {
	w, err := currentInvestment(middleware.GetSessionStore(c))
	if err != nil {
		return err
	}

	var req wizard.Disclosures
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}

	if err := w.Acknowledge(req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, w.State())
}

// InvestmentPaymentHandler accepts the terms and submits the investment
func InvestmentPaymentHandler(c echo.Context) error {
	store := middleware.GetSessionStore(c)
	w, err := currentInvestment(store)
	if err != nil {
		return err
	}

	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}

	processed, err := w.Pay(c.Request().Context(), req.TermsAccepted, DataSource.CreateInvestment)
	if err != nil {
		return respondError(c, err)
	}
	store.RecordInvestment(*processed)

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"investment": processed,
		"state":      w.State(),
	})
}

// InvestmentBackHandler returns to the previous step. From the first step the
// wizard is discarded and the client goes back to the case page.
func InvestmentBackHandler(c echo.Context) error {
	store := middleware.GetSessionStore(c)
	w, err := currentInvestment(store)
	if err != nil {
		return err
	}

	exit, err := w.Back()
	if err != nil {
		return respondError(c, err)
	}
	if exit {
		store.SetInvestment(nil)
		return c.JSON(http.StatusOK, map[string]interface{}{
			"exit":   true,
			"caseId": w.CaseID(),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"exit":  false,
		"state": w.State(),
	})
}

// CancelInvestmentWizardHandler discards the in-progress investment
func CancelInvestmentWizardHandler(c echo.Context) error {
	middleware.GetSessionStore(c).SetInvestment(nil)
	return c.NoContent(http.StatusNoContent)
}

// InvestmentReceiptHandler downloads the receipt of the completed investment.
// ?format=html returns the printable page instead of the PDF.
func InvestmentReceiptHandler(c echo.Context) error {
	store := middleware.GetSessionStore(c)
	w, err := currentInvestment(store)
	if err != nil {
		return err
	}
	receipt, ok := w.Receipt()
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Investment not completed")
	}

	ctx := c.Request().Context()
	data := components.ReceiptData{
		Investment: *receipt,
		CaseTitle:  receipt.CaseTitle,
	}
	if cases, err := DataSource.ListCases(ctx); err == nil {
		if lawsuit, ok := pipeline.FindPublicCase(cases, receipt.CaseID); ok {
			data.LawFirm = lawsuit.LawFirm
		}
	}
	if user, ok := store.CachedProfile(); ok {
		data.InvestorName = user.FullName()
	}

	if c.QueryParam("format") == "html" {
		html, err := services.RenderReceiptHTML(ctx, data)
		if err != nil {
			return respondError(c, err)
		}
		return c.HTML(http.StatusOK, html)
	}

	pdf, err := generateReceiptPDF(ctx, data)
	if err != nil {
		return respondError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.pdf"`, receipt.ReceiptNumber))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// PortfolioHandler returns the investments made in this session with their totals
func PortfolioHandler(c echo.Context) error {
	investments := middleware.GetSessionStore(c).Investments()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"investments": investments,
		"summary":     services.SummarizePortfolio(investments),
	})
}

// ExportPortfolioHandler downloads the session portfolio as an XLSX workbook
func ExportPortfolioHandler(c echo.Context) error {
	buf, err := services.ExportPortfolio(middleware.GetSessionStore(c).Investments())
	if err != nil {
		return respondError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="portfolio.xlsx"`)
	return c.Blob(http.StatusOK, mimeXLSX, buf.Bytes())
}
