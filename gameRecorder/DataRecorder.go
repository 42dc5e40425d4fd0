package gameRecorder

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// --------- General External Functions ---------

// Log writes one line of recorder output.
func Log(message string) {
	log.Println(message)
}

// --------- Server Recording Functions ---------
type ServerDataRecorder struct {
	TickRecords []TickRecord // one per recorded tick

	groups      []*RecordingGroup // registration order
	byID        map[uuid.UUID]*RecordingGroup
	currentTick int
}

func CreateRecorder() *ServerDataRecorder {
	return &ServerDataRecorder{
		TickRecords: []TickRecord{},
		byID:        make(map[uuid.UUID]*RecordingGroup),
		currentTick: -1, // to start from 0
	}
}

// GetCurrentTickRecord returns the latest record, or nil before the first tick.
func (sdr *ServerDataRecorder) GetCurrentTickRecord() *TickRecord {
	if len(sdr.TickRecords) == 0 {
		return nil
	}
	return &sdr.TickRecords[len(sdr.TickRecords)-1]
}

// AddGroup registers a group. Both its ID and its title must be unused.
func (sdr *ServerDataRecorder) AddGroup(group *RecordingGroup) error {
	if _, ok := sdr.byID[group.id]; ok {
		return fmt.Errorf("%w: %q (%v)", ErrDuplicateGroup, group.Title, group.id)
	}
	if _, ok := sdr.Group(group.Title); ok {
		return fmt.Errorf("%w: %q", ErrDuplicateGroup, group.Title)
	}
	sdr.groups = append(sdr.groups, group)
	sdr.byID[group.id] = group
	return nil
}

func (sdr *ServerDataRecorder) Groups() []*RecordingGroup {
	return append([]*RecordingGroup(nil), sdr.groups...)
}

func (sdr *ServerDataRecorder) Group(title string) (*RecordingGroup, bool) {
	for _, g := range sdr.groups {
		if g.Title == title {
			return g, true
		}
	}
	return nil, false
}

func (sdr *ServerDataRecorder) GroupByID(id uuid.UUID) (*RecordingGroup, bool) {
	g, ok := sdr.byID[id]
	return g, ok
}

// RecordNewTick records every group at time t. All groups are resolved
// before any is committed, so a failing observable leaves every series
// untouched.
func (sdr *ServerDataRecorder) RecordNewTick(t float64) error {
	bindings := 0
	for _, g := range sdr.groups {
		if err := g.resolve(t); err != nil {
			return err
		}
		bindings += len(g.bindings)
	}
	for _, g := range sdr.groups {
		g.commit(t)
	}

	sdr.currentTick += 1
	sdr.TickRecords = append(sdr.TickRecords, NewTickRecord(sdr.currentTick, t, bindings))
	return nil
}

func (sdr *ServerDataRecorder) PlaybackSummary() {
	Log(fmt.Sprintf("\n\nPlaybackSummary - %v tick records, %v groups", len(sdr.TickRecords), len(sdr.groups)))
	clamped := 0
	for _, rec := range sdr.TickRecords {
		clamped += rec.Clamped
	}
	Log(fmt.Sprintf("Out of domain histogram observations: %v", clamped))

	for _, g := range sdr.groups {
		Log(fmt.Sprintf("\n%v [%v] (%v vs %v), %v ticks:", g.Title, g.id, g.YLabel, g.XLabel, g.Ticks()))
		for _, s := range g.AllSeries() {
			t, last, ok := s.Last()
			if !ok {
				Log(fmt.Sprintf("  %v: no data", s.Name()))
				continue
			}
			Log(fmt.Sprintf("  %v: last %.4g at t=%.2f, mean %.4g", s.Name(), last, t, stat.Mean(s.y, nil)))
		}
	}
}
