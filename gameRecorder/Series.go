package gameRecorder

// Series is one named y column of a RecordingGroup. Its x column is the
// group's shared time axis, so every series in a group has the same length
// and the same x values.
type Series struct {
	name  string
	group *RecordingGroup
	y     []float64
}

func (s *Series) Name() string { return s.name }
func (s *Series) Len() int     { return len(s.y) }

// X returns a copy of the time axis.
func (s *Series) X() []float64 {
	return append([]float64(nil), s.group.times[:len(s.y)]...)
}

// Y returns a copy of the recorded values.
func (s *Series) Y() []float64 {
	return append([]float64(nil), s.y...)
}

func (s *Series) At(i int) (float64, float64) {
	return s.group.times[i], s.y[i]
}

// Last returns the most recent point, if any.
func (s *Series) Last() (float64, float64, bool) {
	if len(s.y) == 0 {
		return 0, 0, false
	}
	i := len(s.y) - 1
	return s.group.times[i], s.y[i], true
}
