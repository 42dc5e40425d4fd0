package gameRecorder

import (
	"fmt"

	"github.com/google/uuid"
)

type binding struct {
	source     IObservableSource
	observable string
	transform  Transform
	series     *Series
}

// RecordingGroup binds named observables on external sources to series that
// share one time axis. Bindings may only be added before the first tick.
type RecordingGroup struct {
	id     uuid.UUID
	Title  string
	XLabel string
	YLabel string

	bindings []binding
	times    []float64
	sealed   bool

	// values resolved for the tick in progress
	scratch []float64
}

func NewRecordingGroup(title string, xLabel string, yLabel string) *RecordingGroup {
	return &RecordingGroup{
		id:     uuid.New(),
		Title:  title,
		XLabel: xLabel,
		YLabel: yLabel,
	}
}

// AddVariable records source's observable unchanged into seriesName.
func (g *RecordingGroup) AddVariable(source IObservableSource, observable string, seriesName string) error {
	return g.AddTransformedVariable(source, observable, seriesName, nil)
}

// AddTransformedVariable records fn(observable) into seriesName. A nil fn is
// the identity.
func (g *RecordingGroup) AddTransformedVariable(source IObservableSource, observable string, seriesName string, fn Transform) error {
	if g.sealed {
		return fmt.Errorf("group %q: %w", g.Title, ErrGroupSealed)
	}
	if source == nil {
		return fmt.Errorf("group %q, series %q: %w", g.Title, seriesName, ErrNilSource)
	}
	if _, ok := source.Observable(observable); !ok {
		return fmt.Errorf("group %q, series %q: %w: %q", g.Title, seriesName, ErrUnknownObservable, observable)
	}
	for _, b := range g.bindings {
		if b.series.name == seriesName {
			return fmt.Errorf("group %q: %w: %q", g.Title, ErrDuplicateSeries, seriesName)
		}
	}
	if fn == nil {
		fn = Identity
	}
	g.bindings = append(g.bindings, binding{
		source:     source,
		observable: observable,
		transform:  fn,
		series:     &Series{name: seriesName, group: g},
	})
	return nil
}

// resolve reads every binding in registration order into the scratch buffer
// without touching any series.
func (g *RecordingGroup) resolve(t float64) error {
	if n := len(g.times); n > 0 && t < g.times[n-1] {
		return fmt.Errorf("group %q: %w: %v after %v", g.Title, ErrNonMonotonicTime, t, g.times[n-1])
	}
	g.scratch = g.scratch[:0]
	for _, b := range g.bindings {
		read, ok := b.source.Observable(b.observable)
		if !ok {
			return fmt.Errorf("group %q, series %q: %w: %q", g.Title, b.series.name, ErrUnknownObservable, b.observable)
		}
		g.scratch = append(g.scratch, b.transform(read()))
	}
	return nil
}

// commit appends the resolved values at t. Repeated times get their own
// slots, so the axis length always equals the number of ticks.
func (g *RecordingGroup) commit(t float64) {
	g.sealed = true
	g.times = append(g.times, t)
	for i, b := range g.bindings {
		b.series.y = append(b.series.y, g.scratch[i])
	}
}

// RecordAll reads every binding and appends (t, value) to its series. If any
// observable fails to resolve, no series is modified.
func (g *RecordingGroup) RecordAll(t float64) error {
	if err := g.resolve(t); err != nil {
		return err
	}
	g.commit(t)
	return nil
}

// ID identifies the group within a ServerDataRecorder.
func (g *RecordingGroup) ID() uuid.UUID { return g.id }

// Ticks is the length of the shared time axis.
func (g *RecordingGroup) Ticks() int { return len(g.times) }

func (g *RecordingGroup) Times() []float64 {
	return append([]float64(nil), g.times...)
}

func (g *RecordingGroup) Sealed() bool { return g.sealed }

func (g *RecordingGroup) Series(name string) (*Series, bool) {
	for _, b := range g.bindings {
		if b.series.name == name {
			return b.series, true
		}
	}
	return nil, false
}

// AllSeries returns the series in registration order.
func (g *RecordingGroup) AllSeries() []*Series {
	out := make([]*Series, len(g.bindings))
	for i, b := range g.bindings {
		out[i] = b.series
	}
	return out
}
