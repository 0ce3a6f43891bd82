package task

import (
	"testing"
	"time"

	"github.com/mehtalab/fixlab/internal/engine"
	"github.com/mehtalab/fixlab/internal/geom"
)

func TestKatoriStand_FullSolve(t *testing.T) {
	m, start := startTask(t, "KatoriStand", 0)
	now := start.Add(8 * time.Second)

	dragTo(t, m, "katori", geom.Point{X: 40, Y: 15}, now)
	katori := m.Object("katori")
	if !katori.Placed {
		t.Fatal("expected katori placed on table")
	}
	if !m.Flag(FlagKatoriInverted) {
		t.Error("expected KatoriInverted flag")
	}

	dragTo(t, m, "diya", geom.Point{X: 40, Y: 14}, now)
	if m.State() != engine.StateSolved {
		t.Fatalf("expected solved, got state %v", m.State())
	}
	res := m.Result()
	if !res.Flags[FlagKatoriInverted] || !res.Flags[FlagObjectStable] {
		t.Errorf("expected both flags, got %v", res.Flags)
	}

	diya := m.Object("diya")
	if diya.Rect().Bottom() != katori.Rect().Y {
		t.Errorf("expected diya standing on katori, diya %v katori %v", diya.Rect(), katori.Rect())
	}
}

func TestKatoriStand_KatoriPartiallyOnTable_NotPlaced(t *testing.T) {
	m, start := startTask(t, "KatoriStand", 0)
	now := start.Add(2 * time.Second)

	// Table containment requires the whole rect inside; straddling the edge
	// is an invalid drop.
	dragTo(t, m, "katori", geom.Point{X: 12, Y: 6}, now)

	katori := m.Object("katori")
	if katori.Placed {
		t.Error("expected katori not placed when straddling table edge")
	}
	if m.Recorder().IncorrectDrops() != 1 {
		t.Errorf("expected 1 incorrect drop, got %d", m.Recorder().IncorrectDrops())
	}
}

func TestKatoriStand_DiyaBeforeKatori_Invalid(t *testing.T) {
	m, start := startTask(t, "KatoriStand", 0)
	now := start.Add(2 * time.Second)
	diya := m.Object("diya")
	origin := diya.Pos

	dragTo(t, m, "diya", geom.Point{X: 40, Y: 15}, now)

	if m.State() != engine.StateRunning {
		t.Error("expected task still running")
	}
	if diya.Pos != origin {
		t.Errorf("expected diya reset, got %v", diya.Pos)
	}
}

func TestKatoriStand_PlacedKatoriSurvivesLaterFailedDrop(t *testing.T) {
	m, start := startTask(t, "KatoriStand", 0)
	now := start.Add(2 * time.Second)

	dragTo(t, m, "katori", geom.Point{X: 40, Y: 15}, now)
	katori := m.Object("katori")
	placedAt := katori.Pos

	// Diya dropped far from the katori fails; the katori must not snap back.
	dragTo(t, m, "diya", geom.Point{X: 70, Y: 10}, now)

	if katori.Pos != placedAt {
		t.Errorf("expected katori to stay at %v, got %v", placedAt, katori.Pos)
	}
}

func TestKatoriStand_TreatmentCondition_KatoriShowsContents(t *testing.T) {
	scene := setupKatoriStand(testLayout(), 1)
	for _, o := range scene.Objects {
		if o.Kind == "katori" && o.VisualID != "katori_with_contents" {
			t.Errorf("expected pre-utilized katori visual, got %s", o.VisualID)
		}
	}
}
