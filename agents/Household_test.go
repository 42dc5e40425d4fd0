package agents

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/ADimoska/SOMASHousing/common"
	baseServer "github.com/MattSScott/basePlatformSOMAS/v2/pkg/server"
)

// Agent test configuration
var agentConfig = AgentConfig{
	InitBankBalance: 2,
	SavingsRate:     0.1,
	VerboseLevel:    10,
}

func newTestHousehold(t *testing.T, monthlyIncome float64) *Household {
	t.Helper()
	serv := baseServer.CreateBaseServer[common.IHousehold](1, 1, 10*time.Millisecond, 10)
	h := CreateHousehold(serv, agentConfig, monthlyIncome)
	serv.AddAgent(h)
	return h
}

func TestCreateHousehold(t *testing.T) {
	h := newTestHousehold(t, 2000)

	assert.Equal(t, 2000.0, h.GetMonthlyIncome())
	assert.Equal(t, 24000.0, h.GetAnnualIncome())
	assert.Equal(t, 4000.0, h.GetBankBalance())
	assert.True(t, h.IsRenting())
	assert.False(t, h.IsHomeless())
	assert.NotEqual(t, h.GetID(), newTestHousehold(t, 2000).GetID())

	var _ common.IHousehold = h
}

func TestStepMonthSaves(t *testing.T) {
	h := newTestHousehold(t, 1000)
	h.SetTenure(common.OwnerOccupier)
	rng := rand.New(rand.NewSource(7))

	before := h.GetBankBalance()
	h.StepMonth(rng, 0)
	assert.InDelta(t, before+100, h.GetBankBalance(), 1e-9)
}

func TestStepMonthRentingPaysRent(t *testing.T) {
	h := newTestHousehold(t, 1000)
	rng := rand.New(rand.NewSource(7))

	h.StepMonth(rng, 300)
	assert.True(t, h.IsRenting())
	assert.InDelta(t, 2000+100-300, h.GetBankBalance(), 1e-9)
}

func TestHomelessEventuallyRent(t *testing.T) {
	h := newTestHousehold(t, 1000)
	h.SetTenure(common.Homeless)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200 && h.IsHomeless(); i++ {
		require.False(t, h.StepMonth(rng, 0))
	}
	assert.True(t, h.IsRenting())
}

func TestAdjustBankBalance(t *testing.T) {
	h := newTestHousehold(t, 1000)
	h.AdjustBankBalance(-2500)
	assert.Equal(t, -500.0, h.GetBankBalance())
	h.LogSelfInfo()
}
