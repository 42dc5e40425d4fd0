package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DecayingHistogram is a fixed-bucket frequency distribution over [0, domainMax]
// whose mass is multiplied by a decay factor once per step before that step's
// observations are added. Memory stays at one float per bucket for the whole run.
type DecayingHistogram struct {
	name      string
	domainMax float64
	lambda    float64

	buckets []float64

	steps           int
	clamped         int
	clampedThisStep int
}

func NewDecayingHistogram(name string, bucketCount int, domainMax float64, lambda float64) (*DecayingHistogram, error) {
	if bucketCount <= 0 {
		return nil, fmt.Errorf("histogram %q: %w: got %d", name, ErrInvalidBucketCount, bucketCount)
	}
	if !(domainMax > 0) || math.IsInf(domainMax, 0) {
		return nil, fmt.Errorf("histogram %q: %w: got %v", name, ErrInvalidDomain, domainMax)
	}
	if !(lambda >= 0 && lambda < 1) {
		return nil, fmt.Errorf("histogram %q: %w: got %v", name, ErrInvalidDecay, lambda)
	}
	return &DecayingHistogram{
		name:      name,
		domainMax: domainMax,
		lambda:    lambda,
		buckets:   make([]float64, bucketCount),
	}, nil
}

func (h *DecayingHistogram) Name() string       { return h.name }
func (h *DecayingHistogram) BucketCount() int   { return len(h.buckets) }
func (h *DecayingHistogram) DomainMax() float64 { return h.domainMax }
func (h *DecayingHistogram) Lambda() float64    { return h.lambda }
func (h *DecayingHistogram) Steps() int         { return h.steps }

// BucketIndex maps v to clamp(round(v/domainMax*bucketCount), 0, bucketCount-1).
// The second result reports whether v was outside [0, domainMax]; NaN counts
// as out of domain and lands in bucket 0.
func (h *DecayingHistogram) BucketIndex(v float64) (int, bool) {
	if math.IsNaN(v) {
		return 0, true
	}
	outside := v < 0 || v > h.domainMax
	last := len(h.buckets) - 1
	pos := math.Round(v / h.domainMax * float64(len(h.buckets)))
	switch {
	case pos < 0:
		return 0, outside
	case pos > float64(last):
		return last, outside
	default:
		return int(pos), outside
	}
}

// Age multiplies every bucket by the decay factor.
func (h *DecayingHistogram) Age() {
	for i := range h.buckets {
		h.buckets[i] *= h.lambda
	}
}

// Observe adds unit mass for v.
func (h *DecayingHistogram) Observe(v float64) {
	h.add(v, 1)
}

func (h *DecayingHistogram) ObserveWeighted(v float64, weight float64) error {
	if !(weight >= 0) || math.IsInf(weight, 0) {
		return fmt.Errorf("histogram %q: %w: got %v", h.name, ErrNegativeWeight, weight)
	}
	h.add(v, weight)
	return nil
}

func (h *DecayingHistogram) add(v float64, weight float64) {
	idx, outside := h.BucketIndex(v)
	if outside {
		h.clamped++
		h.clampedThisStep++
	}
	h.buckets[idx] += weight
}

// Step ages the existing mass and then inserts this tick's observations.
func (h *DecayingHistogram) Step(observations []float64) {
	h.clampedThisStep = 0
	h.Age()
	for _, v := range observations {
		h.add(v, 1)
	}
	h.steps++
}

// Buckets returns a copy of the bucket weights.
func (h *DecayingHistogram) Buckets() []float64 {
	return append([]float64(nil), h.buckets...)
}

// XValues labels bucket i with i*domainMax/bucketCount.
func (h *DecayingHistogram) XValues() []float64 {
	xs := make([]float64, len(h.buckets))
	for i := range xs {
		xs[i] = float64(i) * h.domainMax / float64(len(h.buckets))
	}
	return xs
}

func (h *DecayingHistogram) Buffer() XYBuffer {
	return XYBuffer{X: h.XValues(), Y: h.Buckets()}
}

// Scaled returns the buffer with every weight multiplied by k, for charts
// that overlay distributions of very different magnitude.
func (h *DecayingHistogram) Scaled(k float64) XYBuffer {
	b := h.Buffer()
	floats.Scale(k, b.Y)
	return b
}

func (h *DecayingHistogram) TotalMass() float64 {
	return floats.Sum(h.buckets)
}

// Clamped counts every observation that fell outside the domain since construction.
func (h *DecayingHistogram) Clamped() int { return h.clamped }

// ClampedLastStep counts out of domain observations since the last Step began.
func (h *DecayingHistogram) ClampedLastStep() int { return h.clampedThisStep }

// HistogramView reads a DecayingHistogram without being able to age it or
// add observations.
type HistogramView struct {
	h *DecayingHistogram
}

func (h *DecayingHistogram) View() HistogramView { return HistogramView{h: h} }

func (v HistogramView) Name() string              { return v.h.Name() }
func (v HistogramView) BucketCount() int          { return v.h.BucketCount() }
func (v HistogramView) DomainMax() float64        { return v.h.DomainMax() }
func (v HistogramView) Lambda() float64           { return v.h.Lambda() }
func (v HistogramView) Steps() int                { return v.h.Steps() }
func (v HistogramView) Buckets() []float64        { return v.h.Buckets() }
func (v HistogramView) XValues() []float64        { return v.h.XValues() }
func (v HistogramView) Buffer() XYBuffer          { return v.h.Buffer() }
func (v HistogramView) TotalMass() float64        { return v.h.TotalMass() }
func (v HistogramView) Clamped() int              { return v.h.Clamped() }
func (v HistogramView) ClampedLastStep() int      { return v.h.ClampedLastStep() }
func (v HistogramView) Scaled(k float64) XYBuffer { return v.h.Scaled(k) }
