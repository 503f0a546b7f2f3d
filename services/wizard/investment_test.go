package wizard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"legali_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCase() models.LitigationCase {
	return models.LitigationCase{
		ID:                "case-1",
		Title:             "Tech Workers v. MegaCorp",
		MinimumInvestment: 1000,
		ExpectedReturnMin: 2,
		ExpectedReturnMax: 4,
	}
}

func allDisclosures() Disclosures {
	return Disclosures{DisclosureAcknowledged: true, RiskAcknowledged: true, KYCConfirmed: true}
}

func echoInvestment(_ context.Context, inv models.Investment) (*models.Investment, error) {
	inv.ID = "inv-1"
	inv.ReceiptNumber = "LGL-0001"
	return &inv, nil
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$1,000", FormatUSD(1000))
	assert.Equal(t, "$25,000", FormatUSD(25000))
	assert.Equal(t, "$500", FormatUSD(499.6))
	assert.Equal(t, "$1,000,000,000", FormatUSD(MaxInvestment))

	// past the int64 range
	huge := FormatUSD(1e19)
	assert.NotContains(t, huge, "-")
	assert.True(t, strings.HasPrefix(huge, "$10,000,000,000,000,000,000"), huge)
}

func TestExpectedReturn(t *testing.T) {
	lo, hi := ExpectedReturn(testCase(), 5000)
	assert.Equal(t, 10000.0, lo)
	assert.Equal(t, 20000.0, hi)

	lo, hi = ExpectedReturn(models.LitigationCase{}, 1000)
	assert.Equal(t, 1500.0, lo)
	assert.Equal(t, 3000.0, hi)
}

func TestInvestmentAmountStep(t *testing.T) {
	for _, amount := range []string{"", "abc", "999.99", "-5", "NaN"} {
		t.Run(amount, func(t *testing.T) {
			w := NewInvestment(testCase(), "investor-1")
			errs, ok := AsValidationErrors(w.EnterAmount(amount, ""))
			require.True(t, ok)
			assert.Equal(t, "Minimum investment is $1,000", errs["amount"])
			assert.Equal(t, StepAmount, w.Step())
		})
	}

	for _, amount := range []string{"1000000000.01", "1e300"} {
		t.Run(amount, func(t *testing.T) {
			w := NewInvestment(testCase(), "investor-1")
			errs, ok := AsValidationErrors(w.EnterAmount(amount, ""))
			require.True(t, ok)
			assert.Equal(t, "Maximum investment is $1,000,000,000", errs["amount"])
			assert.Equal(t, StepAmount, w.Step())
		})
	}

	w := NewInvestment(testCase(), "investor-1")
	require.NoError(t, w.EnterAmount(" 1000 ", " long term "))
	assert.Equal(t, StepDisclosures, w.Step())
	assert.Equal(t, "long term", w.State().InvestorNote)
}

func TestInvestmentDisclosures(t *testing.T) {
	w := NewInvestment(testCase(), "investor-1")
	require.NoError(t, w.EnterAmount("2000", ""))

	err := w.Acknowledge(Disclosures{DisclosureAcknowledged: true, RiskAcknowledged: true})
	errs, ok := AsValidationErrors(err)
	require.True(t, ok)
	assert.Contains(t, errs["disclosures"], "acknowledge all required disclosures")
	assert.Equal(t, StepDisclosures, w.Step())

	require.NoError(t, w.Acknowledge(allDisclosures()))
	assert.Equal(t, StepPayment, w.Step())
}

func TestInvestmentPayment(t *testing.T) {
	t.Run("terms required", func(t *testing.T) {
		w := NewInvestment(testCase(), "investor-1")
		require.NoError(t, w.EnterAmount("2000", ""))
		require.NoError(t, w.Acknowledge(allDisclosures()))

		_, err := w.Pay(context.Background(), false, func(context.Context, models.Investment) (*models.Investment, error) {
			t.Fatal("submitter must not be called")
			return nil, nil
		})
		errs, ok := AsValidationErrors(err)
		require.True(t, ok)
		assert.NotEmpty(t, errs["terms"])
		assert.Equal(t, StepPayment, w.Step())
	})

	t.Run("success computes fee and returns", func(t *testing.T) {
		w := NewInvestment(testCase(), "investor-1")
		require.NoError(t, w.EnterAmount("2000", "note"))
		require.NoError(t, w.Acknowledge(allDisclosures()))

		receipt, err := w.Pay(context.Background(), true, echoInvestment)
		require.NoError(t, err)
		assert.Equal(t, StepCompleted, w.Step())
		assert.Equal(t, 50.0, receipt.PlatformFee)
		assert.Equal(t, 2050.0, receipt.Total)
		assert.Equal(t, 4000.0, receipt.ExpectedReturnMin)
		assert.Equal(t, 8000.0, receipt.ExpectedReturnMax)
		assert.Equal(t, "case-1", receipt.CaseID)
		assert.Equal(t, "investor-1", receipt.InvestorID)

		stored, ok := w.Receipt()
		require.True(t, ok)
		assert.Equal(t, "LGL-0001", stored.ReceiptNumber)
	})

	t.Run("rejected stays on payment", func(t *testing.T) {
		w := NewInvestment(testCase(), "investor-1")
		require.NoError(t, w.EnterAmount("2000", ""))
		require.NoError(t, w.Acknowledge(allDisclosures()))

		_, err := w.Pay(context.Background(), true, func(context.Context, models.Investment) (*models.Investment, error) {
			return nil, errors.New("card declined")
		})
		assert.ErrorIs(t, err, ErrSubmissionRejected)
		assert.Equal(t, StepPayment, w.Step())
		assert.Equal(t, 2000.0, w.State().Amount)

		_, err = w.Pay(context.Background(), true, echoInvestment)
		assert.NoError(t, err)
	})
}

func TestInvestmentPaymentInFlight(t *testing.T) {
	w := NewInvestment(testCase(), "investor-1")
	require.NoError(t, w.EnterAmount("2000", ""))
	require.NoError(t, w.Acknowledge(allDisclosures()))

	started := make(chan struct{})
	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := w.Pay(context.Background(), true, func(ctx context.Context, inv models.Investment) (*models.Investment, error) {
			close(started)
			<-release
			return echoInvestment(ctx, inv)
		})
		assert.NoError(t, err)
	}()

	<-started
	_, err := w.Pay(context.Background(), true, echoInvestment)
	assert.ErrorIs(t, err, ErrSubmissionInProgress)
	_, err = w.Back()
	assert.ErrorIs(t, err, ErrSubmissionInProgress)

	close(release)
	wg.Wait()
	assert.Equal(t, StepCompleted, w.Step())
}

func TestInvestmentBack(t *testing.T) {
	w := NewInvestment(testCase(), "investor-1")

	exit, err := w.Back()
	require.NoError(t, err)
	assert.True(t, exit)

	require.NoError(t, w.EnterAmount("1500", ""))
	require.NoError(t, w.Acknowledge(allDisclosures()))

	exit, err = w.Back()
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, StepDisclosures, w.Step())

	exit, err = w.Back()
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, StepAmount, w.Step())
	assert.Equal(t, 1500.0, w.State().Amount)
	assert.True(t, w.State().Disclosures.KYCConfirmed)
}

func TestInvestmentStateBeforeAmount(t *testing.T) {
	state := NewInvestment(testCase(), "investor-1").State()
	assert.Equal(t, "$2,000 - $4,000", state.ExpectedReturnLabel)
	assert.Equal(t, 0.0, state.PlatformFee)
}
