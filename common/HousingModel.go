package common

import (
	gameRecorder "github.com/ADimoska/SOMASHousing/gameRecorder"
	"github.com/ADimoska/SOMASHousing/metrics"
)

// MortgageRecord describes one approved mortgage. Ratios are plain fractions
// or multiples, not percentages.
type MortgageRecord struct {
	LoanToValue     float64
	IncomeToValue   float64
	LoanToIncome    float64
	DepositToIncome float64
}

// IMarketView is the read-only face of the housing market.
type IMarketView interface {
	gameRecorder.IObservableSource
	NQuality() int
	ReferencePrice(quality int) float64
	AverageSalePrice(quality int) float64
}

// IBankView is the read-only face of the mortgage lender.
type IBankView interface {
	gameRecorder.IObservableSource
	ApprovalsThisTick() []MortgageRecord
}

// IHousingModel is everything the metrics layer may read from a running
// simulation. Implementations keep ownership of every returned object.
type IHousingModel interface {
	// Households returns the population in a fixed order (ascending income).
	Households() []IHouseholdView
	Market() IMarketView
	Bank() IBankView
	// WealthDistribution is the target distribution of gross financial wealth.
	WealthDistribution() metrics.Quantiler
}
