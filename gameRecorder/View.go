package gameRecorder

import "github.com/google/uuid"

// GroupView is the read-only face of a RecordingGroup. It exposes the
// recorded series but none of the methods that register or record.
type GroupView struct {
	g *RecordingGroup
}

func (g *RecordingGroup) View() GroupView { return GroupView{g: g} }

func (v GroupView) ID() uuid.UUID        { return v.g.id }
func (v GroupView) Title() string        { return v.g.Title }
func (v GroupView) XLabel() string       { return v.g.XLabel }
func (v GroupView) YLabel() string       { return v.g.YLabel }
func (v GroupView) Ticks() int           { return v.g.Ticks() }
func (v GroupView) Times() []float64     { return v.g.Times() }
func (v GroupView) AllSeries() []*Series { return v.g.AllSeries() }

func (v GroupView) Series(name string) (*Series, bool) { return v.g.Series(name) }

// RecorderView is the read-only face of a ServerDataRecorder. The zero value
// stands for a recorder that does not exist yet and holds nothing.
type RecorderView struct {
	sdr *ServerDataRecorder
}

func (sdr *ServerDataRecorder) View() RecorderView { return RecorderView{sdr: sdr} }

func (v RecorderView) Groups() []GroupView {
	if v.sdr == nil {
		return nil
	}
	views := make([]GroupView, len(v.sdr.groups))
	for i, g := range v.sdr.groups {
		views[i] = g.View()
	}
	return views
}

func (v RecorderView) Group(title string) (GroupView, bool) {
	if v.sdr == nil {
		return GroupView{}, false
	}
	g, ok := v.sdr.Group(title)
	if !ok {
		return GroupView{}, false
	}
	return g.View(), true
}

func (v RecorderView) GroupByID(id uuid.UUID) (GroupView, bool) {
	if v.sdr == nil {
		return GroupView{}, false
	}
	g, ok := v.sdr.GroupByID(id)
	if !ok {
		return GroupView{}, false
	}
	return g.View(), true
}

// TickRecords returns a copy of every tick record so far.
func (v RecorderView) TickRecords() []TickRecord {
	if v.sdr == nil {
		return nil
	}
	return append([]TickRecord(nil), v.sdr.TickRecords...)
}

func (v RecorderView) CurrentTickRecord() (TickRecord, bool) {
	if v.sdr == nil {
		return TickRecord{}, false
	}
	rec := v.sdr.GetCurrentTickRecord()
	if rec == nil {
		return TickRecord{}, false
	}
	return *rec, true
}

func (v RecorderView) PlaybackSummary() {
	if v.sdr == nil {
		Log("PlaybackSummary - nothing recorded")
		return
	}
	v.sdr.PlaybackSummary()
}
