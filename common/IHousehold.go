package common

import (
	"fmt"

	"github.com/MattSScott/basePlatformSOMAS/v2/pkg/agent"
)

// Tenure is a household's housing situation.
type Tenure int

const (
	Homeless Tenure = iota
	Renting
	OwnerOccupier
)

func (t Tenure) String() string {
	switch t {
	case Homeless:
		return "homeless"
	case Renting:
		return "renting"
	case OwnerOccupier:
		return "owner-occupier"
	default:
		return fmt.Sprintf("Tenure(%d)", int(t))
	}
}

// IHouseholdView is what the metrics layer reads from a household.
type IHouseholdView interface {
	GetMonthlyIncome() float64
	GetAnnualIncome() float64
	GetBankBalance() float64
	GetTenure() Tenure
	IsHomeless() bool
	IsRenting() bool
}

type IHousehold interface {
	agent.IAgent[IHousehold]
	IHouseholdView

	// Setters, only called by the simulation
	SetTenure(tenure Tenure)
	AdjustBankBalance(delta float64)

	LogSelfInfo()
}
