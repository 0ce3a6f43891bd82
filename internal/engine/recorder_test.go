package engine

import (
	"testing"
	"time"

	"github.com/mehtalab/fixlab/internal/geom"
)

func TestEvent_String(t *testing.T) {
	e := Event{Elapsed: 12340 * time.Millisecond, Type: EventDragStart, Detail: "box"}
	if e.String() != "12.34s - DRAG_START(box)" {
		t.Errorf("unexpected rendering: %s", e.String())
	}

	at := geom.Point{X: 12, Y: 4}
	e = Event{Elapsed: 3100 * time.Millisecond, Type: EventDragEnd, Detail: "box", At: &at}
	if e.String() != "3.10s - DRAG_END(box) at (12, 4)" {
		t.Errorf("unexpected rendering: %s", e.String())
	}
}

func TestRecorder_CountersMonotonic(t *testing.T) {
	r := NewRecorder()

	if r.IncorrectDrops() != 0 {
		t.Fatalf("expected zero incorrect drops initially, got %d", r.IncorrectDrops())
	}

	prev := 0
	for i := 0; i < 5; i++ {
		r.IncrementIncorrectDrops()
		if r.IncorrectDrops() < prev {
			t.Fatal("expected incorrect drops to be non-decreasing")
		}
		prev = r.IncorrectDrops()
	}
	if r.IncorrectDrops() != 5 {
		t.Errorf("expected 5 incorrect drops, got %d", r.IncorrectDrops())
	}
}

func TestRecorder_Finalize_FreezesLog(t *testing.T) {
	r := NewRecorder()
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(42 * time.Second)

	r.Log(time.Second, EventDragStart, "box")
	r.IncrementActions()

	res := r.Finalize("CandleBox", 1, OutcomeTimeout, start, end, map[string]bool{"BoxOnWall": true})
	if res == nil {
		t.Fatal("expected a result from first finalize")
	}

	// Appends after finalization must be ignored.
	r.Log(2*time.Second, EventPlace, "late")
	r.IncrementActions()
	r.IncrementIncorrectDrops()

	if len(res.ActionLog) != 1 {
		t.Errorf("expected 1 logged event, got %d", len(res.ActionLog))
	}
	if res.TotalActions != 1 {
		t.Errorf("expected 1 action, got %d", res.TotalActions)
	}
	if res.IncorrectDrops != 0 {
		t.Errorf("expected 0 incorrect drops, got %d", res.IncorrectDrops)
	}
}

func TestRecorder_Finalize_Once(t *testing.T) {
	r := NewRecorder()
	now := time.Now()

	if r.Finalize("T", 0, OutcomeSolved, now, now, nil) == nil {
		t.Fatal("expected first finalize to produce a result")
	}
	if r.Finalize("T", 0, OutcomeSolved, now, now, nil) != nil {
		t.Error("expected second finalize to return nil")
	}
}

func TestRecorder_Finalize_Fields(t *testing.T) {
	r := NewRecorder()
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Second)

	res := r.Finalize("HangerWire", 0, OutcomeSolved, start, end, map[string]bool{"RingRetrieved": true})

	if res.TaskName != "HangerWire" || res.Condition != 0 || res.Outcome != OutcomeSolved {
		t.Errorf("unexpected identity fields: %+v", res)
	}
	if res.DurationSeconds != 90 {
		t.Errorf("expected 90s duration, got %v", res.DurationSeconds)
	}
	if !res.Flags["RingRetrieved"] {
		t.Error("expected RingRetrieved flag set")
	}
	if _, present := res.Flags["HangerTransformed"]; present {
		t.Error("expected unset flag to be absent, not false")
	}
}

func TestResult_RenderedLog(t *testing.T) {
	r := NewRecorder()
	r.Log(time.Second, EventDragStart, "box")
	r.Log(2*time.Second, EventPlace, "Box on Wall")
	now := time.Now()

	res := r.Finalize("CandleBox", 0, OutcomeSolved, now, now, nil)

	want := "1.00s - DRAG_START(box) | 2.00s - PLACE(Box on Wall)"
	if got := res.RenderedLog(" | "); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
