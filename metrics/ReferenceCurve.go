package metrics

import (
	"fmt"
	"math"
)

// Quantiler is anything with an inverse CDF, e.g. gonum's distuv.LogNormal.
type Quantiler interface {
	Quantile(p float64) float64
}

// ReferenceCurve is an immutable baseline series computed once at setup.
// Accessors return copies so later model changes can never leak in.
type ReferenceCurve struct {
	name string
	x    []float64
	y    []float64
}

func (rc ReferenceCurve) Name() string { return rc.name }
func (rc ReferenceCurve) Len() int     { return len(rc.x) }

func (rc ReferenceCurve) Point(i int) (float64, float64) {
	return rc.x[i], rc.y[i]
}

func (rc ReferenceCurve) X() []float64 { return append([]float64(nil), rc.x...) }
func (rc ReferenceCurve) Y() []float64 { return append([]float64(nil), rc.y...) }

func (rc ReferenceCurve) Buffer() XYBuffer {
	return XYBuffer{X: rc.X(), Y: rc.Y()}
}

// Equal reports bit-for-bit equality of both columns.
func (rc ReferenceCurve) Equal(other ReferenceCurve) bool {
	if rc.name != other.name || len(rc.x) != len(other.x) {
		return false
	}
	for i := range rc.x {
		if math.Float64bits(rc.x[i]) != math.Float64bits(other.x[i]) ||
			math.Float64bits(rc.y[i]) != math.Float64bits(other.y[i]) {
			return false
		}
	}
	return true
}

// BuildQualityCurve evaluates a pricing function at every quality level and
// returns the diagonal (price(q), price(q)). Modelled prices are later
// plotted against the same x column, so agreement shows up on the diagonal.
func BuildQualityCurve(name string, nQuality int, price func(quality int) float64) (ReferenceCurve, error) {
	if nQuality <= 0 {
		return ReferenceCurve{}, fmt.Errorf("curve %q: %w", name, ErrEmptyCurve)
	}
	rc := ReferenceCurve{
		name: name,
		x:    make([]float64, nQuality),
		y:    make([]float64, nQuality),
	}
	for q := 0; q < nQuality; q++ {
		p := price(q)
		rc.x[q] = p
		rc.y[q] = p
	}
	return rc, nil
}

// BuildQuantileCurve samples dist at the mid-point quantile of every cohort,
// (i*cohortSize + 0.5) / populationSize, paired with that cohort's baseline.
// A population smaller than one cohort yields an empty curve.
func BuildQuantileCurve(name string, baseline []float64, populationSize int, cohortSize int, dist Quantiler) (ReferenceCurve, error) {
	if cohortSize <= 0 {
		return ReferenceCurve{}, fmt.Errorf("curve %q: %w", name, ErrInvalidCohortSize)
	}
	n := populationSize / cohortSize
	if len(baseline) != n {
		return ReferenceCurve{}, fmt.Errorf("curve %q: %w: %d baselines for %d cohorts", name, ErrBaselineMismatch, len(baseline), n)
	}
	if n == 0 {
		return ReferenceCurve{name: name}, nil
	}
	rc := ReferenceCurve{
		name: name,
		x:    append([]float64(nil), baseline...),
		y:    make([]float64, n),
	}
	for i := 0; i < n; i++ {
		p := (float64(i*cohortSize) + 0.5) / float64(populationSize)
		rc.y[i] = dist.Quantile(p)
	}
	return rc, nil
}
