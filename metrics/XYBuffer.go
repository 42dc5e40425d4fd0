package metrics

import "slices"

// XYBuffer is a pair of equal length x and y columns, the shape a scatter
// chart consumes. Buffers handed out by this package are copies; mutating
// them never affects the recorder that produced them.
type XYBuffer struct {
	X []float64
	Y []float64
}

func newXYBuffer(n int) XYBuffer {
	return XYBuffer{
		X: make([]float64, n),
		Y: make([]float64, n),
	}
}

func (b XYBuffer) Len() int {
	return len(b.X)
}

func (b XYBuffer) Point(i int) (float64, float64) {
	return b.X[i], b.Y[i]
}

func (b XYBuffer) Clone() XYBuffer {
	return XYBuffer{
		X: slices.Clone(b.X),
		Y: slices.Clone(b.Y),
	}
}
