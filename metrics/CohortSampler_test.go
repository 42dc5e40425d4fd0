package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type member struct {
	income  float64
	flagged bool
	balance float64
}

func population(n int, flagged func(i int) bool) []*member {
	pop := make([]*member, n)
	for i := range pop {
		pop[i] = &member{income: float64(1000 * (i + 1)), flagged: flagged(i), balance: float64(i)}
	}
	return pop
}

func TestCohortFractionSingleFlaggedCohort(t *testing.T) {
	pop := population(200, func(i int) bool { return i >= 50 && i < 100 })

	cs, err := NewCohortSampler(pop, 50, func(m *member) float64 { return m.income })
	require.NoError(t, err)
	require.NoError(t, cs.TrackFraction("flagged", func(m *member) bool { return m.flagged }))

	cs.Update()
	buf, ok := cs.Buffer("flagged")
	require.True(t, ok)
	assert.Equal(t, []float64{0, 1, 0, 0}, buf.Y)
	assert.Equal(t, []float64{1000, 51000, 101000, 151000}, buf.X)
}

func TestCohortRemainderIsDropped(t *testing.T) {
	pop := population(230, func(i int) bool { return i >= 200 })

	cs, err := NewCohortSampler(pop, 50, func(m *member) float64 { return m.income })
	require.NoError(t, err)
	assert.Equal(t, 4, cs.Cohorts())
	assert.Equal(t, 30, cs.Remainder())

	require.NoError(t, cs.TrackFraction("flagged", func(m *member) bool { return m.flagged }))
	cs.Update()
	buf, _ := cs.Buffer("flagged")
	assert.Equal(t, []float64{0, 0, 0, 0}, buf.Y)
}

func TestCohortSamplerBelowOneCohort(t *testing.T) {
	pop := population(30, func(int) bool { return true })

	cs, err := NewCohortSampler(pop, 50, func(m *member) float64 { return m.income })
	require.NoError(t, err)
	assert.Equal(t, 0, cs.Cohorts())
	assert.Equal(t, 30, cs.Remainder())

	require.NoError(t, cs.TrackFraction("flagged", func(m *member) bool { return m.flagged }))
	cs.Update()
	buf, ok := cs.Buffer("flagged")
	require.True(t, ok)
	assert.Equal(t, 0, buf.Len())
}

func TestCohortUpdateDoesNotAllocate(t *testing.T) {
	pop := population(500, func(i int) bool { return i%3 == 0 })
	cs, err := NewCohortSampler(pop, 50, func(m *member) float64 { return m.income })
	require.NoError(t, err)
	require.NoError(t, cs.TrackFraction("flagged", func(m *member) bool { return m.flagged }))
	require.NoError(t, cs.TrackMean("balance mean", func(m *member) float64 { return m.balance }))
	require.NoError(t, cs.TrackLead("balance lead", func(m *member) float64 { return m.balance }))

	allocs := testing.AllocsPerRun(20, cs.Update)
	assert.Equal(t, 0.0, allocs)
}

func TestCohortBaselineIsStable(t *testing.T) {
	pop := population(100, func(int) bool { return false })
	cs, err := NewCohortSampler(pop, 50, func(m *member) float64 { return m.income })
	require.NoError(t, err)

	pop[0].income = -1
	pop[50].income = -1
	cs.Update()
	assert.Equal(t, []float64{1000, 51000}, cs.Baseline())
}

func TestCohortMeanAndLead(t *testing.T) {
	pop := population(10, func(i int) bool { return i%2 == 0 })
	cs, err := NewCohortSampler(pop, 5, func(m *member) float64 { return m.income })
	require.NoError(t, err)
	require.NoError(t, cs.TrackMean("balance mean", func(m *member) float64 { return m.balance }))
	require.NoError(t, cs.TrackLead("balance lead", func(m *member) float64 { return m.balance }))
	require.NoError(t, cs.TrackFraction("even", func(m *member) bool { return m.flagged }))

	cs.Update()
	mean, _ := cs.Buffer("balance mean")
	lead, _ := cs.Buffer("balance lead")
	even, _ := cs.Buffer("even")
	assert.Equal(t, []float64{2, 7}, mean.Y)
	assert.Equal(t, []float64{0, 5}, lead.Y)
	assert.Equal(t, []float64{0.6, 0.4}, even.Y)
	assert.Equal(t, []string{"balance mean", "balance lead", "even"}, cs.Names())
}

func TestCohortSamplerErrors(t *testing.T) {
	pop := population(10, func(int) bool { return false })
	_, err := NewCohortSampler(pop, 0, func(m *member) float64 { return m.income })
	assert.ErrorIs(t, err, ErrInvalidCohortSize)

	cs, err := NewCohortSampler(pop, 5, func(m *member) float64 { return m.income })
	require.NoError(t, err)
	require.NoError(t, cs.TrackLead("x", func(m *member) float64 { return 0 }))
	assert.ErrorIs(t, cs.TrackLead("x", func(m *member) float64 { return 0 }), ErrDuplicateTrack)

	_, ok := cs.Buffer("missing")
	assert.False(t, ok)

	_, err = SampleCohorts(pop, 5, CohortMean, func(m *member) float64 { return 1 }, make([]float64, 1))
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestSampleCohortsWritesOnlyCompleteCohorts(t *testing.T) {
	values := []float64{1, 1, 0, 0, 7}
	dst := []float64{-1, -1, -1}
	n, err := SampleCohorts(values, 2, CohortFraction, func(v float64) float64 { return v }, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []float64{1, 0, -1}, dst)
}
