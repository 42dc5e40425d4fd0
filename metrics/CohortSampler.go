package metrics

import (
	"fmt"
	"log"
)

// Aggregation selects how the members of one cohort reduce to a single value.
type Aggregation int

const (
	// CohortFraction: share of members for which the value is non-zero.
	CohortFraction Aggregation = iota

	// CohortMean: arithmetic mean of the value over the cohort.
	CohortMean

	// CohortLead: the value of the first member only.
	CohortLead
)

func (a Aggregation) String() string {
	switch a {
	case CohortFraction:
		return "fraction"
	case CohortMean:
		return "mean"
	case CohortLead:
		return "lead"
	default:
		return fmt.Sprintf("Aggregation(%d)", int(a))
	}
}

// Indicator turns a predicate into a 0/1 valued observable.
func Indicator[T any](pred func(T) bool) func(T) float64 {
	return func(member T) float64 {
		if pred(member) {
			return 1
		}
		return 0
	}
}

// SampleCohorts reduces every complete cohort of population into dst and
// returns the number of cohorts written. Members after the last complete
// cohort are not read.
func SampleCohorts[T any](population []T, cohortSize int, kind Aggregation, value func(T) float64, dst []float64) (int, error) {
	if cohortSize <= 0 {
		return 0, ErrInvalidCohortSize
	}
	n := len(population) / cohortSize
	if len(dst) < n {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrBufferTooSmall, n, len(dst))
	}
	sampleCohorts(population[:n*cohortSize], cohortSize, kind, value, dst)
	return n, nil
}

// sampleCohorts assumes len(population) is a multiple of cohortSize and dst
// has room for every cohort. It does not allocate.
func sampleCohorts[T any](population []T, cohortSize int, kind Aggregation, value func(T) float64, dst []float64) {
	for c, start := 0, 0; start < len(population); c, start = c+1, start+cohortSize {
		if kind == CohortLead {
			dst[c] = value(population[start])
			continue
		}
		sum := 0.0
		for _, member := range population[start : start+cohortSize] {
			v := value(member)
			if kind == CohortFraction && v != 0 {
				v = 1
			}
			sum += v
		}
		dst[c] = sum / float64(cohortSize)
	}
}

type cohortTrack[T any] struct {
	name  string
	kind  Aggregation
	value func(T) float64
	y     []float64
}

// CohortSampler partitions a fixed, externally owned population into
// contiguous cohorts and keeps one aggregate per cohort for every tracked
// observable. The x column of every track is the cohort baseline, captured
// once at construction from the first member of each cohort.
type CohortSampler[T any] struct {
	population []T
	cohortSize int
	nCohorts   int

	baseline []float64
	tracks   []*cohortTrack[T]
}

// NewCohortSampler captures the baseline of every complete cohort. The
// trailing len(population) % cohortSize members are excluded from all
// aggregation.
func NewCohortSampler[T any](population []T, cohortSize int, baseline func(T) float64) (*CohortSampler[T], error) {
	if cohortSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCohortSize, cohortSize)
	}
	cs := &CohortSampler[T]{
		population: population,
		cohortSize: cohortSize,
		nCohorts:   len(population) / cohortSize,
	}
	cs.baseline = make([]float64, cs.nCohorts)
	sampleCohorts(cs.sampled(), cohortSize, CohortLead, baseline, cs.baseline)
	if r := cs.Remainder(); r > 0 {
		log.Printf("[metrics] cohort sampler: %d of %d members fall outside complete cohorts of %d and are not sampled\n",
			r, len(population), cohortSize)
	}
	return cs, nil
}

func (cs *CohortSampler[T]) track(name string, kind Aggregation, value func(T) float64) error {
	for _, t := range cs.tracks {
		if t.name == name {
			return fmt.Errorf("%w: %q", ErrDuplicateTrack, name)
		}
	}
	cs.tracks = append(cs.tracks, &cohortTrack[T]{
		name:  name,
		kind:  kind,
		value: value,
		y:     make([]float64, cs.nCohorts),
	})
	return nil
}

// TrackFraction records, per cohort, the fraction of members satisfying pred.
func (cs *CohortSampler[T]) TrackFraction(name string, pred func(T) bool) error {
	return cs.track(name, CohortFraction, Indicator(pred))
}

// TrackMean records the cohort mean of a bounded numeric observable.
func (cs *CohortSampler[T]) TrackMean(name string, value func(T) float64) error {
	return cs.track(name, CohortMean, value)
}

// TrackLead records the observable of the first member of each cohort.
func (cs *CohortSampler[T]) TrackLead(name string, value func(T) float64) error {
	return cs.track(name, CohortLead, value)
}

// Update recomputes every tracked aggregate from the current population state.
func (cs *CohortSampler[T]) Update() {
	members := cs.sampled()
	for _, t := range cs.tracks {
		sampleCohorts(members, cs.cohortSize, t.kind, t.value, t.y)
	}
}

// sampled is the population without the trailing remainder.
func (cs *CohortSampler[T]) sampled() []T {
	return cs.population[:cs.nCohorts*cs.cohortSize]
}

// Buffer returns a copy of the (baseline, aggregate) points for a track.
func (cs *CohortSampler[T]) Buffer(name string) (XYBuffer, bool) {
	for _, t := range cs.tracks {
		if t.name == name {
			return XYBuffer{X: cs.Baseline(), Y: append([]float64(nil), t.y...)}, true
		}
	}
	return XYBuffer{}, false
}

func (cs *CohortSampler[T]) Names() []string {
	names := make([]string, 0, len(cs.tracks))
	for _, t := range cs.tracks {
		names = append(names, t.name)
	}
	return names
}

func (cs *CohortSampler[T]) Baseline() []float64 {
	return append([]float64(nil), cs.baseline...)
}

func (cs *CohortSampler[T]) Cohorts() int    { return cs.nCohorts }
func (cs *CohortSampler[T]) CohortSize() int { return cs.cohortSize }

// Remainder is the number of trailing members not covered by any cohort.
func (cs *CohortSampler[T]) Remainder() int {
	return len(cs.population) - cs.nCohorts*cs.cohortSize
}
