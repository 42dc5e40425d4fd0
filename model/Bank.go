package model

import (
	"math"

	"github.com/ADimoska/SOMASHousing/common"
	gameRecorder "github.com/ADimoska/SOMASHousing/gameRecorder"
)

type BankConfig struct {
	MaxLTV      float64 // loan to value cap
	MaxLTI      float64 // loan to annual income cap
	MonthlyRate float64
	TermMonths  int
}

func DefaultBankConfig() BankConfig {
	return BankConfig{
		MaxLTV:      0.95,
		MaxLTI:      4.5,
		MonthlyRate: 0.04 / 12,
		TermMonths:  300,
	}
}

// Bank is a stand-in lender that approves any mortgage within its LTV and
// LTI caps and remembers this month's approvals.
type Bank struct {
	config BankConfig

	approvals     []common.MortgageRecord
	affordability float64

	obs gameRecorder.ObservableMap
}

func NewBank(config BankConfig) *Bank {
	b := &Bank{config: config}
	b.obs = gameRecorder.ObservableMap{
		"affordability": func() float64 { return b.affordability },
	}
	return b
}

// BeginMonth forgets the previous month's approvals.
func (b *Bank) BeginMonth() {
	b.approvals = b.approvals[:0]
}

// Payment is the monthly annuity payment on loan.
func (b *Bank) Payment(loan float64) float64 {
	r := b.config.MonthlyRate
	n := float64(b.config.TermMonths)
	if r == 0 {
		return loan / n
	}
	return loan * r / (1 - math.Pow(1+r, -n))
}

// Apply decides on a mortgage for a house at price. The buyer puts down as
// much of balance as the price needs. It returns the deposit taken.
func (b *Bank) Apply(annualIncome float64, balance float64, price float64) (float64, bool) {
	if annualIncome <= 0 || price <= 0 {
		return 0, false
	}
	deposit := math.Max(0, math.Min(balance, price))
	loan := price - deposit
	if loan/price > b.config.MaxLTV || loan/annualIncome > b.config.MaxLTI {
		return 0, false
	}
	b.approvals = append(b.approvals, common.MortgageRecord{
		LoanToValue:     loan / price,
		IncomeToValue:   annualIncome / price,
		LoanToIncome:    loan / annualIncome,
		DepositToIncome: deposit / annualIncome,
	})

	// running mean of payment/income over this month's approvals
	share := b.Payment(loan) / (annualIncome / 12)
	n := float64(len(b.approvals))
	if n == 1 {
		b.affordability = share
	} else {
		b.affordability += (share - b.affordability) / n
	}
	return deposit, true
}

func (b *Bank) ApprovalsThisTick() []common.MortgageRecord {
	return append([]common.MortgageRecord(nil), b.approvals...)
}

func (b *Bank) Observable(name string) (gameRecorder.Accessor, bool) {
	return b.obs.Observable(name)
}

var _ common.IBankView = (*Bank)(nil)
