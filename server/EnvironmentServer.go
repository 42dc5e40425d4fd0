package environmentServer

import (
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ADimoska/SOMASHousing/agents"
	"github.com/ADimoska/SOMASHousing/common"
	"github.com/ADimoska/SOMASHousing/metrics"
	"github.com/ADimoska/SOMASHousing/model"
	"github.com/ADimoska/SOMASHousing/observer"

	"github.com/MattSScott/basePlatformSOMAS/v2/pkg/server"
)

type Config struct {
	NumHouseholds     int
	Iterations        int
	TurnsPerIteration int // months per iteration
	MaxDuration       time.Duration
	MessageBandwidth  int
	Seed              uint64

	// log-normal monthly income
	IncomeMu    float64
	IncomeSigma float64
	// log-normal gross financial wealth, the reference for bank balances
	WealthMu    float64
	WealthSigma float64

	RentShare float64 // share of monthly income paid as rent

	LogAgents bool // log every household at the end of each iteration

	Market model.MarketConfig
	Bank   model.BankConfig
}

func DefaultConfig() Config {
	return Config{
		NumHouseholds:     5000,
		Iterations:        1,
		TurnsPerIteration: 600,
		MaxDuration:       50 * time.Millisecond,
		MessageBandwidth:  10,
		Seed:              1,
		IncomeMu:          7.8,
		IncomeSigma:       0.5,
		WealthMu:          9.0,
		WealthSigma:       1.6,
		RentShare:         0.08,
		Market:            model.DefaultMarketConfig(),
		Bank:              model.DefaultBankConfig(),
	}
}

// EnvironmentServer runs a toy housing economy on the SOMAS base server and
// signals the metrics observer after every month.
type EnvironmentServer struct {
	*server.BaseServer[common.IHousehold]

	config Config
	rng    *rand.Rand

	// ordered by ascending income; the observer samples cohorts in this order
	households []*agents.Household
	population []common.IHouseholdView

	market *model.Market
	bank   *model.Bank
	wealth distuv.LogNormal

	Observer *observer.Orchestrator

	month   int
	tickErr error
}

// constructor
func MakeEnvServer(config Config, agentConfig agents.AgentConfig, observerConfig observer.Config) *EnvironmentServer {
	rng := rand.New(rand.NewSource(config.Seed))
	serv := &EnvironmentServer{
		BaseServer: server.CreateBaseServer[common.IHousehold](
			config.Iterations,
			config.TurnsPerIteration,
			config.MaxDuration,
			config.MessageBandwidth),
		config: config,
		rng:    rng,
		market: model.NewMarket(config.Market, rng),
		bank:   model.NewBank(config.Bank),
		wealth: distuv.LogNormal{Mu: config.WealthMu, Sigma: config.WealthSigma, Src: rng},
	}
	serv.SetGameRunner(serv)

	incomeDist := distuv.LogNormal{Mu: config.IncomeMu, Sigma: config.IncomeSigma, Src: rng}
	incomes := make([]float64, config.NumHouseholds)
	for i := range incomes {
		incomes[i] = incomeDist.Rand()
	}
	sort.Float64s(incomes)

	for _, income := range incomes {
		household := agents.CreateHousehold(serv, agentConfig, income)
		serv.AddAgent(household)
		serv.households = append(serv.households, household)
		serv.population = append(serv.population, household)
	}

	serv.Observer = observer.NewOrchestrator(observerConfig, serv)
	return serv
}

// --------- read-only model view for the observer ---------

func (cs *EnvironmentServer) Households() []common.IHouseholdView   { return cs.population }
func (cs *EnvironmentServer) Market() common.IMarketView            { return cs.market }
func (cs *EnvironmentServer) Bank() common.IBankView                { return cs.bank }
func (cs *EnvironmentServer) WealthDistribution() metrics.Quantiler { return cs.wealth }

// --------- game runner ---------

func (cs *EnvironmentServer) RunStartOfIteration(iteration int) {
	log.Printf("--------Start of iteration %v---------\n", iteration)
}

// RunTurn advances the economy by one month and then ticks the observer.
func (cs *EnvironmentServer) RunTurn(i, j int) {
	if cs.tickErr != nil {
		return
	}

	cs.bank.BeginMonth()
	buyers := 0
	for _, h := range cs.households {
		rent := cs.config.RentShare * h.GetMonthlyIncome()
		if !h.StepMonth(cs.rng, rent) {
			continue
		}
		if cs.tryPurchase(h) {
			buyers++
		}
	}
	cs.market.Clear(buyers)

	now := float64(cs.month)
	cs.month++
	if err := cs.Observer.Tick(now); err != nil {
		cs.tickErr = fmt.Errorf("iteration %v, turn %v: %w", i, j, err)
		log.Printf("[server] observer tick failed, recording stopped: %v\n", cs.tickErr)
	}
}

func (cs *EnvironmentServer) RunEndOfIteration(iteration int) {
	log.Printf("--------End of iteration %v (month %v)---------\n", iteration, cs.month)
	cs.LogTenureStatus()
	if cs.config.LogAgents {
		cs.LogAgentStatus()
	}
}

// tryPurchase buys the best house the household can finance.
func (cs *EnvironmentServer) tryPurchase(h *agents.Household) bool {
	balance := math.Max(h.GetBankBalance(), 0)
	budget := balance + cs.config.Bank.MaxLTI*h.GetAnnualIncome()
	if cs.config.Bank.MaxLTV < 1 {
		budget = math.Min(budget, balance/(1-cs.config.Bank.MaxLTV))
	}
	quality, ok := cs.market.QualityFor(budget)
	if !ok {
		return false
	}
	deposit, ok := cs.bank.Apply(h.GetAnnualIncome(), h.GetBankBalance(), cs.market.AverageSalePrice(quality))
	if !ok {
		return false
	}
	h.AdjustBankBalance(-deposit)
	h.SetTenure(common.OwnerOccupier)
	return true
}

// Run starts the observer and then the base server's iteration loop. It
// returns the first observer error, if any.
func (cs *EnvironmentServer) Run() error {
	if err := cs.Observer.Start(); err != nil {
		return err
	}
	cs.Start()
	return cs.tickErr
}

func (cs *EnvironmentServer) Month() int { return cs.month }

// GetHousehold looks a household up by agent ID
func (cs *EnvironmentServer) GetHousehold(agentID uuid.UUID) (common.IHousehold, bool) {
	h, ok := cs.GetAgentMap()[agentID]
	return h, ok
}

// debug log printing
func (cs *EnvironmentServer) LogTenureStatus() {
	counts := make(map[common.Tenure]int)
	for _, h := range cs.population {
		counts[h.GetTenure()]++
	}
	log.Printf("[server] households: %v, homeless %v, renting %v, owners %v\n",
		len(cs.population), counts[common.Homeless], counts[common.Renting], counts[common.OwnerOccupier])
}

// LogAgentStatus logs every household; only useful for small populations.
func (cs *EnvironmentServer) LogAgentStatus() {
	for _, h := range cs.households {
		h.LogSelfInfo()
	}
}
