package gameRecorder

// TickRecord is a summary of one recorded tick
type TickRecord struct {
	// basic info fields
	TickNumber int
	Time       float64

	BindingsRecorded int // values appended across all groups
	Clamped          int // out of domain histogram observations this tick, filled by the caller
}

func NewTickRecord(tickNumber int, time float64, bindingsRecorded int) TickRecord {
	return TickRecord{
		TickNumber:       tickNumber,
		Time:             time,
		BindingsRecorded: bindingsRecorded,
	}
}
