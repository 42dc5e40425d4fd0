package metrics

import "fmt"

// BaselineTracker plots a live per-index observable against the fixed x
// column of a reference curve. Before the first Update the y column equals
// the reference, so tick 0 sits on the diagonal.
type BaselineTracker struct {
	name  string
	x     []float64
	y     []float64
	value func(i int) float64
}

func NewBaselineTracker(name string, reference ReferenceCurve, value func(i int) float64) (*BaselineTracker, error) {
	if reference.Len() == 0 {
		return nil, fmt.Errorf("tracker %q: %w", name, ErrEmptyCurve)
	}
	return &BaselineTracker{
		name:  name,
		x:     reference.X(),
		y:     reference.Y(),
		value: value,
	}, nil
}

func (bt *BaselineTracker) Name() string { return bt.name }
func (bt *BaselineTracker) Len() int     { return len(bt.x) }

func (bt *BaselineTracker) Update() {
	for i := range bt.y {
		bt.y[i] = bt.value(i)
	}
}

func (bt *BaselineTracker) Buffer() XYBuffer {
	return XYBuffer{X: bt.x, Y: bt.y}.Clone()
}
