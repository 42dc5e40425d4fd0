package observer

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/ADimoska/SOMASHousing/common"
	gameRecorder "github.com/ADimoska/SOMASHousing/gameRecorder"
	"github.com/ADimoska/SOMASHousing/metrics"
)

type State int

const (
	Uninitialized State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "uninitialized"
}

// Orchestrator is the per-tick driver of the metrics layer. It is created
// Uninitialized, moves to Running once Start succeeds and stays there; the
// run ends when the scheduler stops calling Tick.
//
// All buffers are owned by the orchestrator and only mutated inside Start
// and Tick. Accessors return copies or read-only views and may be called
// between ticks.
type Orchestrator struct {
	config Config
	model  common.IHousingModel

	state    State
	ticks    int
	lastTime float64

	extraGroups []*gameRecorder.RecordingGroup
	recorder    *gameRecorder.ServerDataRecorder

	cohorts        *metrics.CohortSampler[common.IHouseholdView]
	histogramSpecs []HistogramSpec
	histograms     []*metrics.DecayingHistogram
	phase          *metrics.ScatterRing
	priceTracker   *metrics.BaselineTracker
	curves         []metrics.ReferenceCurve

	// per histogram observations for the tick in progress, reused across ticks
	observations [][]float64
}

func NewOrchestrator(config Config, model common.IHousingModel) *Orchestrator {
	return &Orchestrator{
		config:         config,
		model:          model,
		histogramSpecs: DefaultHistograms(),
	}
}

// AddGroup registers an extra recording group alongside the defaults and
// takes ownership of it. Only allowed before Start.
func (o *Orchestrator) AddGroup(group *gameRecorder.RecordingGroup) error {
	if o.state != Uninitialized {
		return ErrAlreadyStarted
	}
	o.extraGroups = append(o.extraGroups, group)
	return nil
}

// Start builds every histogram, group, reference curve and tick-0 baseline.
// On error the orchestrator stays Uninitialized.
func (o *Orchestrator) Start() error {
	if o.state != Uninitialized {
		return ErrAlreadyStarted
	}
	if err := o.config.Validate(); err != nil {
		return fmt.Errorf("observer config: %w", err)
	}

	histograms := make([]*metrics.DecayingHistogram, 0, len(o.histogramSpecs))
	for _, spec := range o.histogramSpecs {
		h, err := metrics.NewDecayingHistogram(spec.Name, o.config.BucketCount, o.config.DomainMax, o.config.StatsDecay)
		if err != nil {
			return err
		}
		histograms = append(histograms, h)
	}

	recorder := gameRecorder.CreateRecorder()
	groups, err := DefaultGroups(o.model)
	if err != nil {
		return err
	}
	for _, g := range append(groups, o.extraGroups...) {
		if err := recorder.AddGroup(g); err != nil {
			return err
		}
	}

	households := o.model.Households()
	cohorts, err := metrics.NewCohortSampler(households, o.config.CohortSize, func(h common.IHouseholdView) float64 {
		return h.GetAnnualIncome()
	})
	if err != nil {
		return err
	}
	if err := cohorts.TrackFraction(Homeless, func(h common.IHouseholdView) bool { return h.IsHomeless() }); err != nil {
		return err
	}
	if err := cohorts.TrackFraction(Renting, func(h common.IHouseholdView) bool { return h.IsRenting() }); err != nil {
		return err
	}
	if err := cohorts.TrackLead(BankBalance, func(h common.IHouseholdView) float64 { return h.GetBankBalance() }); err != nil {
		return err
	}

	market := o.model.Market()
	priceCurve, err := metrics.BuildQualityCurve(ReferencePrice, market.NQuality(), market.ReferencePrice)
	if err != nil {
		return err
	}
	wealthCurve, err := metrics.BuildQuantileCurve(ReferenceBankBalance, cohorts.Baseline(), len(households), o.config.CohortSize, o.model.WealthDistribution())
	if err != nil {
		return err
	}
	priceTracker, err := metrics.NewBaselineTracker(HousePrice, priceCurve, market.AverageSalePrice)
	if err != nil {
		return err
	}
	phase, err := metrics.NewScatterRing(o.config.ScatterCapacity)
	if err != nil {
		return err
	}

	cohorts.Update()

	o.histograms = histograms
	o.observations = make([][]float64, len(histograms))
	o.recorder = recorder
	o.cohorts = cohorts
	o.curves = []metrics.ReferenceCurve{priceCurve, wealthCurve}
	o.priceTracker = priceTracker
	o.phase = phase
	o.state = Running

	log.Printf("[observer] started: %d households in %d cohorts of %d, %d groups, %d histograms (decay %v)\n",
		len(households), cohorts.Cohorts(), o.config.CohortSize, len(recorder.Groups()), len(histograms), o.config.StatsDecay)
	return nil
}

// Tick records one simulation step at the scheduler's time. A configuration
// error aborts the tick before any buffer is modified.
func (o *Orchestrator) Tick(scheduleTime float64) error {
	if o.state != Running {
		return ErrNotStarted
	}
	if o.ticks > 0 && scheduleTime < o.lastTime {
		return fmt.Errorf("%w: %v after %v", ErrNonMonotonicTime, scheduleTime, o.lastTime)
	}
	t := scheduleTime / o.config.TimeScale

	if err := o.recorder.RecordNewTick(t); err != nil {
		return err
	}

	o.cohorts.Update()
	o.priceTracker.Update()

	for i := range o.observations {
		o.observations[i] = o.observations[i][:0]
	}
	approvals := o.model.Bank().ApprovalsThisTick()
	for _, r := range approvals {
		for i, spec := range o.histogramSpecs {
			o.observations[i] = append(o.observations[i], spec.Value(r))
		}
		o.phase.Add(r.DepositToIncome, r.LoanToIncome)
	}
	clamped := 0
	for i, h := range o.histograms {
		h.Step(o.observations[i])
		clamped += h.ClampedLastStep()
	}
	o.recorder.GetCurrentTickRecord().Clamped = clamped

	o.ticks++
	o.lastTime = scheduleTime

	if o.config.Verbose {
		log.Printf("[observer] tick %d t=%.3f: %d approvals, %d clamped\n", o.ticks, t, len(approvals), clamped)
	}
	return nil
}

func (o *Orchestrator) State() State { return o.state }
func (o *Orchestrator) Ticks() int   { return o.ticks }

// Recorder exposes the recording groups; empty before Start.
func (o *Orchestrator) Recorder() gameRecorder.RecorderView {
	if o.recorder == nil {
		return gameRecorder.RecorderView{}
	}
	return o.recorder.View()
}

func (o *Orchestrator) Group(title string) (gameRecorder.GroupView, bool) {
	return o.Recorder().Group(title)
}

func (o *Orchestrator) GroupByID(id uuid.UUID) (gameRecorder.GroupView, bool) {
	return o.Recorder().GroupByID(id)
}

func (o *Orchestrator) Histogram(name string) (metrics.HistogramView, bool) {
	for _, h := range o.histograms {
		if h.Name() == name {
			return h.View(), true
		}
	}
	return metrics.HistogramView{}, false
}

func (o *Orchestrator) Histograms() []metrics.HistogramView {
	views := make([]metrics.HistogramView, len(o.histograms))
	for i, h := range o.histograms {
		views[i] = h.View()
	}
	return views
}

func (o *Orchestrator) CohortBuffer(name string) (metrics.XYBuffer, bool) {
	if o.cohorts == nil {
		return metrics.XYBuffer{}, false
	}
	return o.cohorts.Buffer(name)
}

// PriceBuffer is the modelled sale price per quality against the reference price.
func (o *Orchestrator) PriceBuffer() metrics.XYBuffer {
	if o.priceTracker == nil {
		return metrics.XYBuffer{}
	}
	return o.priceTracker.Buffer()
}

// PhaseBuffer holds the most recent (deposit/income, loan/income) approvals.
func (o *Orchestrator) PhaseBuffer() metrics.XYBuffer {
	if o.phase == nil {
		return metrics.XYBuffer{}
	}
	return o.phase.Buffer()
}

func (o *Orchestrator) ReferenceCurve(name string) (metrics.ReferenceCurve, bool) {
	for _, rc := range o.curves {
		if rc.Name() == name {
			return rc, true
		}
	}
	return metrics.ReferenceCurve{}, false
}

func (o *Orchestrator) ReferenceCurves() []metrics.ReferenceCurve {
	return append([]metrics.ReferenceCurve(nil), o.curves...)
}
