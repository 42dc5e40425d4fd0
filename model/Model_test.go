package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestMarketStartsAtReferencePrices(t *testing.T) {
	m := NewMarket(DefaultMarketConfig(), rand.New(rand.NewSource(1)))
	require.Equal(t, 48, m.NQuality())
	for q := 0; q < m.NQuality(); q++ {
		assert.Equal(t, m.ReferencePrice(q), m.AverageSalePrice(q))
	}
	assert.Less(t, m.ReferencePrice(0), m.ReferencePrice(47))
	assert.Equal(t, 60000.0, m.ReferencePrice(0))
}

func TestMarketQualityFor(t *testing.T) {
	m := NewMarket(DefaultMarketConfig(), rand.New(rand.NewSource(1)))

	_, ok := m.QualityFor(1000)
	assert.False(t, ok)

	q, ok := m.QualityFor(m.ReferencePrice(10) + 1)
	require.True(t, ok)
	assert.Equal(t, 10, q)
}

func TestMarketClearUpdatesObservables(t *testing.T) {
	m := NewMarket(DefaultMarketConfig(), rand.New(rand.NewSource(1)))
	sales := m.Clear(5)
	assert.LessOrEqual(t, sales, 5)

	for _, name := range []string{"housePriceIndex", "averageSoldPriceToOLP", "averageDaysOnMarket",
		"nSales", "nSellers", "nBuyers", "averageBidPrice", "averageOfferPrice"} {
		read, ok := m.Observable(name)
		require.True(t, ok, name)
		assert.GreaterOrEqual(t, read(), 0.0, name)
	}
	nBuyers, _ := m.Observable("nBuyers")
	assert.Equal(t, 5.0, nBuyers())
	nSales, _ := m.Observable("nSales")
	assert.Equal(t, float64(sales), nSales())

	_, ok := m.Observable("nope")
	assert.False(t, ok)
}

func TestBankApply(t *testing.T) {
	b := NewBank(DefaultBankConfig())

	// LTI over the cap
	_, ok := b.Apply(20000, 50000, 200000)
	assert.False(t, ok)

	// LTV over the cap
	_, ok = b.Apply(100000, 1000, 100000)
	assert.False(t, ok)

	deposit, ok := b.Apply(40000, 20000, 180000)
	require.True(t, ok)
	assert.Equal(t, 20000.0, deposit)

	approvals := b.ApprovalsThisTick()
	require.Len(t, approvals, 1)
	r := approvals[0]
	assert.InDelta(t, 160000.0/180000.0, r.LoanToValue, 1e-12)
	assert.InDelta(t, 40000.0/180000.0, r.IncomeToValue, 1e-12)
	assert.InDelta(t, 4.0, r.LoanToIncome, 1e-12)
	assert.InDelta(t, 0.5, r.DepositToIncome, 1e-12)

	affordability, ok := b.Observable("affordability")
	require.True(t, ok)
	assert.InDelta(t, b.Payment(160000)/(40000.0/12), affordability(), 1e-12)

	b.BeginMonth()
	assert.Empty(t, b.ApprovalsThisTick())
}

func TestBankPayment(t *testing.T) {
	b := NewBank(BankConfig{MaxLTV: 1, MaxLTI: 10, MonthlyRate: 0, TermMonths: 100})
	assert.Equal(t, 10.0, b.Payment(1000))

	b = NewBank(DefaultBankConfig())
	// an annuity pays back more than the principal
	assert.Greater(t, b.Payment(100000)*300, 100000.0)
}
