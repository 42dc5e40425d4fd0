package observer

import (
	"fmt"

	"github.com/ADimoska/SOMASHousing/metrics"
)

type Config struct {
	CohortSize      int     // households per plotted cohort
	BucketCount     int     // buckets per mortgage ratio histogram
	DomainMax       float64 // histogram domain upper bound
	StatsDecay      float64 // per tick decay of histogram mass, in [0, 1)
	TimeScale       float64 // schedule time units per plotted time unit (months per year)
	ScatterCapacity int     // approvals kept for the mortgage phase diagram
	Verbose         bool
}

func DefaultConfig() Config {
	return Config{
		CohortSize:      50,
		BucketCount:     101,
		DomainMax:       100,
		StatsDecay:      0.9,
		TimeScale:       12,
		ScatterCapacity: 500,
	}
}

func (c Config) Validate() error {
	if c.CohortSize <= 0 {
		return fmt.Errorf("cohort size %d: %w", c.CohortSize, metrics.ErrInvalidCohortSize)
	}
	if c.BucketCount <= 0 {
		return fmt.Errorf("bucket count %d: %w", c.BucketCount, metrics.ErrInvalidBucketCount)
	}
	if !(c.DomainMax > 0) {
		return fmt.Errorf("domain max %v: %w", c.DomainMax, metrics.ErrInvalidDomain)
	}
	if !(c.StatsDecay >= 0 && c.StatsDecay < 1) {
		return fmt.Errorf("stats decay %v: %w", c.StatsDecay, metrics.ErrInvalidDecay)
	}
	if !(c.TimeScale > 0) {
		return fmt.Errorf("time scale %v: %w", c.TimeScale, ErrInvalidTimeScale)
	}
	if c.ScatterCapacity <= 0 {
		return fmt.Errorf("scatter capacity %d: %w", c.ScatterCapacity, metrics.ErrInvalidCapacity)
	}
	return nil
}
