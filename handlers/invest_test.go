package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"legali_app_go/models"
	"legali_app_go/services"
	"legali_app_go/services/session"
	"legali_app_go/services/wizard"
	"legali_app_go/templates/components"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func investCall(t *testing.T, store *session.Session, h echo.HandlerFunc, body string) (*wizard.InvestmentState, int) {
	t.Helper()
	c, rec := setupJSON(http.MethodPost, "/api/invest", body)
	withStore(c, store)
	require.NoError(t, h(c))
	if rec.Code >= 300 {
		return nil, rec.Code
	}
	var state wizard.InvestmentState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	return &state, rec.Code
}

// completedInvestment invests amount in case 1 and returns the processed investment
func completedInvestment(t *testing.T, store *session.Session, amount string) models.Investment {
	t.Helper()
	state, code := investCall(t, store, StartInvestmentHandler, `{"caseId":"1"}`)
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, wizard.StepAmount, state.Step)

	state, _ = investCall(t, store, InvestmentAmountHandler, `{"amount":`+amount+`,"investorNote":"first <i>stake</i>"}`)
	require.NotNil(t, state)
	require.Equal(t, wizard.StepDisclosures, state.Step)

	state, _ = investCall(t, store, InvestmentDisclosuresHandler, `{"disclosureAcknowledged":true,"riskAcknowledged":true,"kycConfirmed":true}`)
	require.NotNil(t, state)
	require.Equal(t, wizard.StepPayment, state.Step)

	c, rec := setupJSON(http.MethodPost, "/api/invest/payment", `{"termsAccepted":true}`)
	withStore(c, store)
	require.NoError(t, InvestmentPaymentHandler(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Investment models.Investment      `json:"investment"`
		State      wizard.InvestmentState `json:"state"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, wizard.StepCompleted, body.State.Step)
	return body.Investment
}

func TestInvestmentWizardFlow(t *testing.T) {
	setupHandlers(t)
	store := openStore("user-1")
	store.CacheProfile(models.User{ID: "user-1", FirstName: "John", LastName: "Doe"})

	inv := completedInvestment(t, store, `"2000"`)
	assert.NotEmpty(t, inv.ReceiptNumber)
	assert.Equal(t, "user-1", inv.InvestorID)
	assert.InDelta(t, 50.0, inv.PlatformFee, 0.001)
	assert.InDelta(t, 2050.0, inv.Total, 0.001)
	assert.Equal(t, "first stake", inv.InvestorNote)
	assert.Equal(t, models.InvestmentStatusActive, inv.Status)
	require.Len(t, store.Investments(), 1)

	t.Run("Receipt as HTML", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/invest/receipt?format=html", nil)
		withStore(c, store)

		require.NoError(t, InvestmentReceiptHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), inv.ReceiptNumber)
		assert.Contains(t, rec.Body.String(), "$2,050.00")
		assert.Contains(t, rec.Body.String(), "John Doe")
		assert.Contains(t, rec.Body.String(), "Thompson &amp; Associates LLP")
	})

	t.Run("Receipt as PDF", func(t *testing.T) {
		var got components.ReceiptData
		generateReceiptPDF = func(_ context.Context, data components.ReceiptData) ([]byte, error) {
			got = data
			return []byte("%PDF-1.4"), nil
		}
		t.Cleanup(func() { generateReceiptPDF = services.GenerateReceiptPDF })

		_, c, rec := setupEcho(http.MethodGet, "/api/invest/receipt", nil)
		withStore(c, store)

		require.NoError(t, InvestmentReceiptHandler(c))
		assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
		assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), inv.ReceiptNumber+".pdf")
		assert.Equal(t, "%PDF-1.4", rec.Body.String())
		assert.Equal(t, inv.ID, got.Investment.ID)
	})

	t.Run("Paying twice is rejected", func(t *testing.T) {
		c, _ := setupJSON(http.MethodPost, "/api/invest/payment", `{"termsAccepted":true}`)
		withStore(c, store)
		assert.Equal(t, http.StatusConflict, httpCode(t, InvestmentPaymentHandler(c)))
		assert.Len(t, store.Investments(), 1)
	})

	t.Run("Portfolio", func(t *testing.T) {
		completedInvestment(t, store, `1500`)

		_, c, rec := setupEcho(http.MethodGet, "/api/portfolio", nil)
		withStore(c, store)
		require.NoError(t, PortfolioHandler(c))

		var body struct {
			Investments []models.Investment        `json:"investments"`
			Summary     services.PortfolioSummary `json:"summary"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Investments, 2)
		assert.Equal(t, 2, body.Summary.Count)
		assert.InDelta(t, 3500.0, body.Summary.TotalInvested, 0.001)
	})

	t.Run("Portfolio export", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/portfolio/export", nil)
		withStore(c, store)

		require.NoError(t, ExportPortfolioHandler(c))
		assert.Equal(t, mimeXLSX, rec.Header().Get(echo.HeaderContentType))
		assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "portfolio.xlsx")
		// xlsx is a zip archive
		assert.Equal(t, "PK", rec.Body.String()[:2])
	})
}

func TestInvestmentWizardValidation(t *testing.T) {
	setupHandlers(t)

	t.Run("Case must be approved", func(t *testing.T) {
		c, _ := setupJSON(http.MethodPost, "/api/invest/start", `{"caseId":"4"}`)
		withStore(c, openStore("user-1"))
		assert.Equal(t, http.StatusNotFound, httpCode(t, StartInvestmentHandler(c)))
	})

	t.Run("No wizard in progress", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/api/invest", nil)
		withStore(c, openStore("user-1"))
		assert.Equal(t, http.StatusNotFound, httpCode(t, GetInvestmentStateHandler(c)))
	})

	t.Run("Amount below minimum", func(t *testing.T) {
		store := openStore("user-1")
		investCall(t, store, StartInvestmentHandler, `{"caseId":"1"}`)

		c, rec := setupJSON(http.MethodPost, "/api/invest/amount", `{"amount":"500"}`)
		withStore(c, store)
		require.NoError(t, InvestmentAmountHandler(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Minimum investment is $1,000")
	})

	t.Run("Disclosures must all be acknowledged", func(t *testing.T) {
		store := openStore("user-1")
		investCall(t, store, StartInvestmentHandler, `{"caseId":"1"}`)
		investCall(t, store, InvestmentAmountHandler, `{"amount":1000}`)

		_, code := investCall(t, store, InvestmentDisclosuresHandler, `{"disclosureAcknowledged":true}`)
		assert.Equal(t, http.StatusUnprocessableEntity, code)

		w, ok := store.Investment()
		require.True(t, ok)
		assert.Equal(t, wizard.StepDisclosures, w.Step())
	})

	t.Run("Terms must be accepted", func(t *testing.T) {
		store := openStore("user-1")
		investCall(t, store, StartInvestmentHandler, `{"caseId":"1"}`)
		investCall(t, store, InvestmentAmountHandler, `{"amount":1000}`)
		investCall(t, store, InvestmentDisclosuresHandler, `{"disclosureAcknowledged":true,"riskAcknowledged":true,"kycConfirmed":true}`)

		_, code := investCall(t, store, InvestmentPaymentHandler, `{"termsAccepted":false}`)
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		assert.Empty(t, store.Investments())
	})

	t.Run("Back from the first step exits", func(t *testing.T) {
		store := openStore("user-1")
		investCall(t, store, StartInvestmentHandler, `{"caseId":"1"}`)

		c, rec := setupJSON(http.MethodPost, "/api/invest/back", "")
		withStore(c, store)
		require.NoError(t, InvestmentBackHandler(c))
		assert.JSONEq(t, `{"exit":true,"caseId":"1"}`, rec.Body.String())

		_, ok := store.Investment()
		assert.False(t, ok)
	})

	t.Run("Receipt before payment", func(t *testing.T) {
		store := openStore("user-1")
		investCall(t, store, StartInvestmentHandler, `{"caseId":"1"}`)

		_, c, _ := setupEcho(http.MethodGet, "/api/invest/receipt", nil)
		withStore(c, store)
		assert.Equal(t, http.StatusNotFound, httpCode(t, InvestmentReceiptHandler(c)))
	})
}
