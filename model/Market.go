package model

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ADimoska/SOMASHousing/common"
	gameRecorder "github.com/ADimoska/SOMASHousing/gameRecorder"
)

type MarketConfig struct {
	NQuality       int
	BasePrice      float64 // reference price of the lowest quality
	QualityPremium float64 // log price step per quality level
	PriceNoise     float64 // std-dev of the monthly log price shock
	SellProb       float64 // chance a listing exists for a quality level each month
}

func DefaultMarketConfig() MarketConfig {
	return MarketConfig{
		NQuality:       48,
		BasePrice:      60000,
		QualityPremium: 0.035,
		PriceNoise:     0.01,
		SellProb:       0.6,
	}
}

// Market is a random-walk stand-in for a housing market. It keeps only what
// the metrics layer reads: per quality sale prices and a handful of monthly
// aggregates.
type Market struct {
	config MarketConfig
	rng    *rand.Rand
	shock  distuv.Normal

	averageSalePrice []float64

	housePriceIndex       float64
	averageSoldPriceToOLP float64
	averageDaysOnMarket   float64
	nSales                int
	nSellers              int
	nBuyers               int
	averageBidPrice       float64
	averageOfferPrice     float64

	obs gameRecorder.ObservableMap
}

func NewMarket(config MarketConfig, rng *rand.Rand) *Market {
	m := &Market{
		config:           config,
		rng:              rng,
		shock:            distuv.Normal{Mu: 0, Sigma: config.PriceNoise, Src: rng},
		averageSalePrice: make([]float64, config.NQuality),
		housePriceIndex:  1,
	}
	for q := range m.averageSalePrice {
		m.averageSalePrice[q] = m.ReferencePrice(q)
	}
	m.obs = m.observables()
	return m
}

func (m *Market) NQuality() int { return m.config.NQuality }

// ReferencePrice is the long run price of a house of the given quality.
func (m *Market) ReferencePrice(quality int) float64 {
	return m.config.BasePrice * math.Exp(m.config.QualityPremium*float64(quality))
}

func (m *Market) AverageSalePrice(quality int) float64 {
	return m.averageSalePrice[quality]
}

// QualityFor picks the best quality whose current price is at most budget.
func (m *Market) QualityFor(budget float64) (int, bool) {
	best := -1
	for q, p := range m.averageSalePrice {
		if p <= budget {
			best = q
		}
	}
	return best, best >= 0
}

// Clear advances prices one month given the number of buyers and returns
// the number of sales.
func (m *Market) Clear(buyers int) int {
	sellers := 0
	sales := 0
	bidTotal, offerTotal, ratioTotal, indexTotal := 0.0, 0.0, 0.0, 0.0
	for q := range m.averageSalePrice {
		ref := m.ReferencePrice(q)
		// mean reverting log price
		logDev := math.Log(m.averageSalePrice[q]/ref)*0.95 + m.shock.Rand()
		m.averageSalePrice[q] = ref * math.Exp(logDev)
		indexTotal += m.averageSalePrice[q] / ref

		if m.rng.Float64() < m.config.SellProb {
			sellers++
			offer := m.averageSalePrice[q] * (1 + 0.05*m.rng.Float64())
			offerTotal += offer
			if sales < buyers {
				sales++
				bid := m.averageSalePrice[q]
				bidTotal += bid
				ratioTotal += bid / offer
			}
		}
	}

	m.nSellers = sellers
	m.nBuyers = buyers
	m.nSales = sales
	m.housePriceIndex = indexTotal / float64(len(m.averageSalePrice))
	if sellers > 0 {
		m.averageOfferPrice = offerTotal / float64(sellers)
	}
	if sales > 0 {
		m.averageBidPrice = bidTotal / float64(sales)
		m.averageSoldPriceToOLP = ratioTotal / float64(sales)
	}
	if sellers > 0 {
		// unsold stock ages, every sale is a fresh listing
		m.averageDaysOnMarket = 30 * float64(sellers) / float64(sales+1)
	}
	return sales
}

// Observable implements gameRecorder.IObservableSource.
func (m *Market) Observable(name string) (gameRecorder.Accessor, bool) {
	return m.obs.Observable(name)
}

func (m *Market) observables() gameRecorder.ObservableMap {
	return gameRecorder.ObservableMap{
		"housePriceIndex":       func() float64 { return m.housePriceIndex },
		"averageSoldPriceToOLP": func() float64 { return m.averageSoldPriceToOLP },
		"averageDaysOnMarket":   func() float64 { return m.averageDaysOnMarket },
		"nSales":                func() float64 { return float64(m.nSales) },
		"nSellers":              func() float64 { return float64(m.nSellers) },
		"nBuyers":               func() float64 { return float64(m.nBuyers) },
		"averageBidPrice":       func() float64 { return m.averageBidPrice },
		"averageOfferPrice":     func() float64 { return m.averageOfferPrice },
	}
}

var _ common.IMarketView = (*Market)(nil)
