package metrics

import "fmt"

// ScatterRing keeps the most recent points of an unbounded stream in a
// fixed-capacity ring, overwriting the oldest point once full.
type ScatterRing struct {
	buf  XYBuffer
	next int
	size int
}

func NewScatterRing(capacity int) (*ScatterRing, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return &ScatterRing{buf: newXYBuffer(capacity)}, nil
}

func (r *ScatterRing) Add(x, y float64) {
	r.buf.X[r.next] = x
	r.buf.Y[r.next] = y
	r.next = (r.next + 1) % r.Cap()
	if r.size < r.Cap() {
		r.size++
	}
}

func (r *ScatterRing) Len() int { return r.size }
func (r *ScatterRing) Cap() int { return len(r.buf.X) }

// Buffer returns the stored points, oldest first.
func (r *ScatterRing) Buffer() XYBuffer {
	out := newXYBuffer(r.size)
	start := (r.next - r.size + r.Cap()) % r.Cap()
	for i := 0; i < r.size; i++ {
		j := (start + i) % r.Cap()
		out.X[i] = r.buf.X[j]
		out.Y[i] = r.buf.Y[j]
	}
	return out
}
