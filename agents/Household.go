package agents

import (
	"log"

	"golang.org/x/exp/rand"

	"github.com/ADimoska/SOMASHousing/common"
	baseAgent "github.com/MattSScott/basePlatformSOMAS/v2/pkg/agent"
)

type AgentConfig struct {
	InitBankBalance float64 // months of income held at the start
	SavingsRate     float64 // share of monthly income saved
	VerboseLevel    int
}

// monthly transition probabilities
const (
	findRentalProb  = 0.25
	evictionProb    = 0.05
	buyIntentProb   = 0.02
	sellAndRentProb = 0.004
)

type Household struct {
	*baseAgent.BaseAgent[common.IHousehold]

	monthlyIncome float64
	bankBalance   float64
	tenure        common.Tenure
	savingsRate   float64

	VerboseLevel int
}

// constructor for Household; every household starts out renting
func CreateHousehold(funcs baseAgent.IExposedServerFunctions[common.IHousehold], agentConfig AgentConfig, monthlyIncome float64) *Household {
	return &Household{
		BaseAgent:     baseAgent.CreateBaseAgent(funcs),
		monthlyIncome: monthlyIncome,
		bankBalance:   agentConfig.InitBankBalance * monthlyIncome,
		tenure:        common.Renting,
		savingsRate:   agentConfig.SavingsRate,
		VerboseLevel:  agentConfig.VerboseLevel,
	}
}

func (h *Household) GetMonthlyIncome() float64 { return h.monthlyIncome }
func (h *Household) GetAnnualIncome() float64  { return h.monthlyIncome * 12.0 }
func (h *Household) GetBankBalance() float64   { return h.bankBalance }
func (h *Household) GetTenure() common.Tenure  { return h.tenure }
func (h *Household) IsHomeless() bool          { return h.tenure == common.Homeless }
func (h *Household) IsRenting() bool           { return h.tenure == common.Renting }

func (h *Household) SetTenure(tenure common.Tenure) {
	if h.VerboseLevel > 8 && tenure != h.tenure {
		log.Printf("Household %v: %v -> %v\n", h.GetID(), h.tenure, tenure)
	}
	h.tenure = tenure
}

func (h *Household) AdjustBankBalance(delta float64) {
	h.bankBalance += delta
}

// StepMonth applies one month of saving and housing churn. It returns true
// if a renting household wants to buy this month.
func (h *Household) StepMonth(rng *rand.Rand, rent float64) bool {
	h.bankBalance += h.monthlyIncome * h.savingsRate

	switch h.tenure {
	case common.Homeless:
		if rng.Float64() < findRentalProb {
			h.SetTenure(common.Renting)
		}
	case common.Renting:
		h.bankBalance -= rent
		if h.bankBalance < 0 && rng.Float64() < evictionProb {
			h.SetTenure(common.Homeless)
			return false
		}
		return rng.Float64() < buyIntentProb
	case common.OwnerOccupier:
		if rng.Float64() < sellAndRentProb {
			h.SetTenure(common.Renting)
		}
	}
	return false
}

func (h *Household) LogSelfInfo() {
	log.Printf("[Household] %v: income %.0f/yr, balance %.0f, %v\n", h.GetID(), h.GetAnnualIncome(), h.bankBalance, h.tenure)
}
