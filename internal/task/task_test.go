package task

import (
	"testing"
	"time"

	"github.com/mehtalab/fixlab/internal/engine"
	"github.com/mehtalab/fixlab/internal/geom"
)

func testLayout() engine.Layout {
	return engine.NewLayout(100, 40, 8)
}

// startTask builds a machine for the named task at a fixed start instant.
func startTask(t *testing.T, name string, condition int) (*engine.Machine, time.Time) {
	t.Helper()
	def, err := ByName(name)
	if err != nil {
		t.Fatalf("ByName(%s): %v", name, err)
	}
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return def.Start(testLayout(), condition, start), start
}

// dragTo grabs the object of the given kind at its center and releases it so
// that its center lands on dest.
func dragTo(t *testing.T, m *engine.Machine, kind string, dest geom.Point, now time.Time) {
	t.Helper()
	o := m.Object(kind)
	if o == nil {
		t.Fatalf("no live object of kind %s", kind)
	}
	m.HandlePointerDown(o.Rect().Center(), now)
	if m.Dragged() != o {
		t.Fatalf("failed to grab %s at %v", kind, o.Rect().Center())
	}
	m.HandlePointerMove(dest, now)
	m.Step(now)
	m.HandlePointerUp(dest, now)
}

func TestAll_CanonicalOrder(t *testing.T) {
	names := []string{}
	for _, d := range All() {
		names = append(names, d.Name)
	}

	want := []string{"CandleBox", "KatoriStand", "HangerWire", "BridgeSupport"}
	if len(names) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("task %d: expected %s, got %s", i, want[i], names[i])
		}
	}
}

func TestByName_Unknown(t *testing.T) {
	if _, err := ByName("NineDotProblem"); err == nil {
		t.Error("expected error for unknown task")
	}
}

func TestFlagFields_Order(t *testing.T) {
	want := []string{
		"BoxOnWall", "BoxTacked",
		"KatoriInverted", "ObjectStable",
		"HangerTransformed", "RingRetrieved",
		"BookPlaced", "BridgePlaced", "CarCrossed",
	}
	got := FlagFields()
	if len(got) != len(want) {
		t.Fatalf("expected %d flag fields, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestDefinitions_HaveTimeoutsAndInstructions(t *testing.T) {
	for _, d := range All() {
		if d.Timeout <= 0 {
			t.Errorf("%s: expected positive timeout", d.Name)
		}
		if d.Instructions == "" {
			t.Errorf("%s: expected instructions", d.Name)
		}
		if len(d.Flags) == 0 {
			t.Errorf("%s: expected milestone flags", d.Name)
		}
	}
}

func TestSetup_ObjectsStartInStaging(t *testing.T) {
	layout := testLayout()
	for _, d := range All() {
		scene := d.Setup(layout, 0)
		for _, o := range scene.Objects {
			if o.Inert {
				continue
			}
			if !layout.Staging.Intersects(o.Rect()) {
				t.Errorf("%s: object %s starts outside staging at %v", d.Name, o.Kind, o.Pos)
			}
		}
	}
}
