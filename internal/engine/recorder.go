package engine

import (
	"fmt"
	"time"

	"github.com/mehtalab/fixlab/internal/geom"
)

// EventType classifies an action-log entry.
type EventType string

const (
	EventDragStart EventType = "DRAG_START"
	EventDragEnd   EventType = "DRAG_END"
	EventPlace     EventType = "PLACE"
	EventTransform EventType = "TRANSFORM"
	EventAttach    EventType = "ATTACH"
	EventRetrieve  EventType = "RETRIEVE"
	EventAction    EventType = "ACTION"
	EventMove      EventType = "MOVE"
)

// Event is one timestamped action-log entry. Events are structured so tests
// can assert on fields; the delimited text form exists only for the
// persistence boundary.
type Event struct {
	Elapsed time.Duration
	Type    EventType
	Detail  string
	// At is the final position for drag-end events, nil otherwise.
	At *geom.Point
}

// String renders the legacy log-line form, e.g.
// "12.34s - DRAG_START(box)" or "3.10s - DRAG_END(box) at (12, 4)".
func (e Event) String() string {
	s := fmt.Sprintf("%.2fs - %s(%s)", e.Elapsed.Seconds(), e.Type, e.Detail)
	if e.At != nil {
		s += " at " + e.At.String()
	}
	return s
}

// Outcome is the terminal result of a task run.
type Outcome string

const (
	OutcomeSolved  Outcome = "Solved"
	OutcomeTimeout Outcome = "Timeout"
)

// Result is the immutable summary of one task run, finalized exactly once
// when the run ends.
type Result struct {
	TaskName        string
	Condition       int
	Outcome         Outcome
	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds float64
	TotalActions    int
	IncorrectDrops  int
	// Flags holds only the milestones that were actually reached; flags the
	// task never set are absent, not false.
	Flags     map[string]bool
	ActionLog []Event
}

// RenderedLog joins the event lines with the given delimiter.
func (r *Result) RenderedLog(sep string) string {
	s := ""
	for i, e := range r.ActionLog {
		if i > 0 {
			s += sep
		}
		s += e.String()
	}
	return s
}

// Recorder accumulates the action log and summary counters for a single task
// run. It is append-only: once finalized, further logging is ignored so the
// audit trail stays frozen at the terminal state.
type Recorder struct {
	events         []Event
	actions        int
	incorrectDrops int
	finalized      bool
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Log appends an event. No-op after finalization.
func (r *Recorder) Log(elapsed time.Duration, t EventType, detail string) {
	r.LogAt(elapsed, t, detail, nil)
}

// LogAt appends an event carrying a position (drag-end). No-op after
// finalization.
func (r *Recorder) LogAt(elapsed time.Duration, t EventType, detail string, at *geom.Point) {
	if r.finalized {
		return
	}
	r.events = append(r.events, Event{Elapsed: elapsed, Type: t, Detail: detail, At: at})
}

// IncrementActions counts a drag-start or drag-end.
func (r *Recorder) IncrementActions() {
	if r.finalized {
		return
	}
	r.actions++
}

// IncrementIncorrectDrops counts a drop outside every valid zone and outside
// the staging region.
func (r *Recorder) IncrementIncorrectDrops() {
	if r.finalized {
		return
	}
	r.incorrectDrops++
}

// Actions returns the running action count.
func (r *Recorder) Actions() int {
	return r.actions
}

// IncorrectDrops returns the running incorrect-drop count.
func (r *Recorder) IncorrectDrops() int {
	return r.incorrectDrops
}

// Events returns the log accumulated so far.
func (r *Recorder) Events() []Event {
	return r.events
}

// Finalize freezes the recorder and produces the run result. Calling it a
// second time returns nil.
func (r *Recorder) Finalize(taskName string, condition int, outcome Outcome, start, end time.Time, flags map[string]bool) *Result {
	if r.finalized {
		return nil
	}
	r.finalized = true

	frozen := make(map[string]bool, len(flags))
	for k, v := range flags {
		frozen[k] = v
	}
	log := make([]Event, len(r.events))
	copy(log, r.events)

	return &Result{
		TaskName:        taskName,
		Condition:       condition,
		Outcome:         outcome,
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: end.Sub(start).Seconds(),
		TotalActions:    r.actions,
		IncorrectDrops:  r.incorrectDrops,
		Flags:           frozen,
		ActionLog:       log,
	}
}
