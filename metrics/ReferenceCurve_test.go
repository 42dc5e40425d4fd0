package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestBuildQualityCurveIsDiagonal(t *testing.T) {
	rc, err := BuildQualityCurve("Reference price", 4, func(q int) float64 { return 100 * math.Exp(0.1*float64(q)) })
	require.NoError(t, err)
	require.Equal(t, 4, rc.Len())
	for i := 0; i < rc.Len(); i++ {
		x, y := rc.Point(i)
		assert.Equal(t, x, y)
	}

	_, err = BuildQualityCurve("empty", 0, func(int) float64 { return 0 })
	assert.ErrorIs(t, err, ErrEmptyCurve)
}

func TestBuildQuantileCurveUsesCohortMidpoints(t *testing.T) {
	dist := distuv.LogNormal{Mu: 10, Sigma: 1}
	baseline := []float64{1, 2, 3, 4}

	rc, err := BuildQuantileCurve("Reference bank balance", baseline, 200, 50, dist)
	require.NoError(t, err)
	assert.Equal(t, baseline, rc.X())
	for i := 0; i < 4; i++ {
		p := (float64(i*50) + 0.5) / 200
		assert.Equal(t, dist.Quantile(p), rc.Y()[i])
	}

	_, err = BuildQuantileCurve("bad", baseline[:3], 200, 50, dist)
	assert.ErrorIs(t, err, ErrBaselineMismatch)
}

func TestBuildQuantileCurveBelowOneCohortIsEmpty(t *testing.T) {
	rc, err := BuildQuantileCurve("Reference bank balance", nil, 30, 50, distuv.LogNormal{Mu: 9, Sigma: 1.5})
	require.NoError(t, err)
	assert.Equal(t, "Reference bank balance", rc.Name())
	assert.Equal(t, 0, rc.Len())
	assert.Empty(t, rc.Buffer().X)
	assert.True(t, rc.Equal(ReferenceCurve{name: "Reference bank balance"}))

	_, err = BuildQuantileCurve("bad", []float64{1}, 30, 50, distuv.LogNormal{Mu: 9, Sigma: 1.5})
	assert.ErrorIs(t, err, ErrBaselineMismatch)
}

func TestReferenceCurveCopiesAreDetached(t *testing.T) {
	price := 1.0
	rc, err := BuildQualityCurve("ref", 3, func(int) float64 { return price })
	require.NoError(t, err)
	snapshot := rc

	xs := rc.X()
	xs[0] = 42
	price = 99
	assert.True(t, rc.Equal(snapshot))
	assert.Equal(t, 1.0, rc.X()[0])
}

func TestBaselineTracker(t *testing.T) {
	rc, err := BuildQualityCurve("ref", 3, func(q int) float64 { return float64(q + 1) })
	require.NoError(t, err)

	live := []float64{5, 6, 7}
	bt, err := NewBaselineTracker("House price", rc, func(i int) float64 { return live[i] })
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, bt.Buffer().Y)
	bt.Update()
	buf := bt.Buffer()
	assert.Equal(t, []float64{1, 2, 3}, buf.X)
	assert.Equal(t, []float64{5, 6, 7}, buf.Y)
}

func TestScatterRingOverwritesOldest(t *testing.T) {
	_, err := NewScatterRing(0)
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	r, err := NewScatterRing(3)
	require.NoError(t, err)
	r.Add(1, 10)
	r.Add(2, 20)
	assert.Equal(t, XYBuffer{X: []float64{1, 2}, Y: []float64{10, 20}}, r.Buffer())

	r.Add(3, 30)
	r.Add(4, 40)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []float64{2, 3, 4}, r.Buffer().X)
	assert.Equal(t, []float64{20, 30, 40}, r.Buffer().Y)
}
