package observer

import (
	"github.com/ADimoska/SOMASHousing/common"
	gameRecorder "github.com/ADimoska/SOMASHousing/gameRecorder"
)

// Names under which buffers are exposed to the rendering layer.
const (
	Homeless    = "Homeless"
	Renting     = "Renting"
	BankBalance = "Bank balance"

	HousePrice           = "House price"
	ReferencePrice       = "Reference price"
	ReferenceBankBalance = "Reference bank balance"

	IncomeToValue = "Income To Value"
	LoanToValue   = "Loan To Value"
	LoanToIncome  = "Loan To Income"

	MortgagePhase = "Mortgage Phase Diagram"

	timeAxis = "Time (years)"
)

// HistogramSpec maps a mortgage record onto one histogram's domain.
type HistogramSpec struct {
	Name  string
	Value func(common.MortgageRecord) float64
}

// DefaultHistograms expresses every ratio on a 0-100 scale: LTV and ITV as
// percentages and LTI in tenths.
func DefaultHistograms() []HistogramSpec {
	return []HistogramSpec{
		{Name: IncomeToValue, Value: func(r common.MortgageRecord) float64 { return r.IncomeToValue * 100 }},
		{Name: LoanToValue, Value: func(r common.MortgageRecord) float64 { return r.LoanToValue * 100 }},
		{Name: LoanToIncome, Value: func(r common.MortgageRecord) float64 { return r.LoanToIncome * 10 }},
	}
}

// DefaultGroups builds the market and bank time series.
func DefaultGroups(model common.IHousingModel) ([]*gameRecorder.RecordingGroup, error) {
	market := model.Market()
	bank := model.Bank()

	stats := gameRecorder.NewRecordingGroup("Market Statistics", timeAxis, "Value")
	quantities := gameRecorder.NewRecordingGroup("Bid/Offer quantities", timeAxis, "Number")
	prices := gameRecorder.NewRecordingGroup("Bid/Offer Prices", timeAxis, "Price")
	affordability := gameRecorder.NewRecordingGroup("Affordability", timeAxis, "mortgage payment/income")

	bindings := []struct {
		group      *gameRecorder.RecordingGroup
		source     gameRecorder.IObservableSource
		observable string
		series     string
		transform  gameRecorder.Transform
	}{
		{stats, market, "housePriceIndex", "HPI", nil},
		{stats, market, "averageSoldPriceToOLP", "Sold Price/List price", nil},
		{stats, market, "averageDaysOnMarket", "Years on market", gameRecorder.DaysToYears},
		{quantities, market, "nSales", "Transactions", nil},
		{quantities, market, "nSellers", "Sellers", nil},
		{quantities, market, "nBuyers", "Buyers", nil},
		{prices, market, "averageBidPrice", "Average Bid Price", nil},
		{prices, market, "averageOfferPrice", "Average Offer Price", nil},
		{affordability, bank, "affordability", "Affordability", nil},
	}
	for _, b := range bindings {
		if err := b.group.AddTransformedVariable(b.source, b.observable, b.series, b.transform); err != nil {
			return nil, err
		}
	}
	return []*gameRecorder.RecordingGroup{stats, quantities, prices, affordability}, nil
}
