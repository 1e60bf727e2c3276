package calculations

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func referenceHome() HomeInvest {
	return HomeInvest{
		Supply:                 43063,
		Loan:                   344500,
		LoanRate:               0.018,
		PurchaseCharges:        0.125,
		AnnualCharges:          0.02,
		AnnualAppreciationRate: 0.025,
		Rent:                   1050,
		InvestRate:             0.04,
		Years:                  25,
	}
}

func TestHomeInvestCapitalAt(t *testing.T) {
	home, invest := referenceHome().CapitalAt(120)

	assert.InEpsilon(t, 136788.22, home, 1e-6)
	assert.InEpsilon(t, 119565.65, invest, 1e-6)
}

func TestHomeInvestLoanTermPrice(t *testing.T) {
	h := referenceHome()

	assert.Equal(t, 1426.87, h.LoanTermPrice())
	assert.Equal(t, 376.0, h.MonthlyContribution())
}

func TestHomeInvestAtStart(t *testing.T) {
	h := referenceHome()
	home, invest := h.CapitalAt(0)

	// в начале капитал при покупке уменьшен только на расходы на покупку
	assert.InDelta(t, h.Supply-(h.Supply+h.Loan-h.HomeValue()), home, 1e-9)
	assert.Equal(t, h.Supply, invest)
}

func TestHomeInvestRentAboveTermPrice(t *testing.T) {
	h := referenceHome()
	h.Rent = 1800

	assert.Equal(t, -374.0, h.MonthlyContribution())

	_, invest := h.CapitalAt(12)
	_, baseline := referenceHome().CapitalAt(12)
	assert.Less(t, invest, baseline)
}

func TestHomeInvestZeroRates(t *testing.T) {
	h := referenceHome()
	h.LoanRate = 0
	h.InvestRate = 0

	for _, p := range []int{0, 1, 150, 300} {
		home, invest := h.CapitalAt(p)
		if math.IsNaN(home) || math.IsInf(home, 0) || math.IsNaN(invest) || math.IsInf(invest, 0) {
			t.Fatalf("non-finite result at period %d: %f, %f", p, home, invest)
		}
	}
}

func TestHomeInvestBreakEven(t *testing.T) {
	h := referenceHome()

	at := h.BreakEven(300)
	if at < 0 {
		t.Fatal("expected the purchase to catch up within the loan duration")
	}
	home, invest := h.CapitalAt(at)
	assert.GreaterOrEqual(t, home, invest)
	if at > 0 {
		home, invest = h.CapitalAt(at - 1)
		assert.Less(t, home, invest)
	}

	assert.Equal(t, -1, h.BreakEven(0))
}
