package views

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mehtalab/fixlab/internal/assets"
	"github.com/mehtalab/fixlab/internal/engine"
	"github.com/mehtalab/fixlab/internal/task"
	"github.com/mehtalab/fixlab/internal/tui/msgs"
)

var taskStart = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// testClock is a manually advanced clock for driving task runs.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func newTaskModel(t *testing.T) (*testClock, TaskModel, *engine.Machine) {
	t.Helper()
	def, err := task.ByName("CandleBox")
	if err != nil {
		t.Fatalf("ByName failed: %v", err)
	}
	layout := engine.NewLayout(100, 40, 8)
	machine := def.Start(layout, 0, taskStart)
	clock := &testClock{now: taskStart}
	m := NewTaskModel(0, def.Title, machine, assets.NewProvider("", nil), 33*time.Millisecond, clock.Now)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	return clock, m, machine
}

func TestTaskModel_InitSchedulesFrames(t *testing.T) {
	_, m, _ := newTaskModel(t)
	if m.Init() == nil {
		t.Error("expected a frame tick command")
	}
}

func TestTaskModel_MouseDragMovesObject(t *testing.T) {
	clock, m, machine := newTaskModel(t)
	box := machine.Object("box")
	origin := box.Pos

	// The playfield is 100 wide in a 100-wide window, so the horizontal
	// offset is zero and terminal y = playfield y + 2.
	center := box.Rect().Center()
	press := tea.MouseMsg{X: center.X, Y: center.Y + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = m.Update(press)
	if machine.Dragged() == nil {
		t.Fatal("expected press on the box to start a drag")
	}

	clock.now = clock.now.Add(100 * time.Millisecond)
	move := tea.MouseMsg{X: center.X + 5, Y: center.Y - 3 + 2, Action: tea.MouseActionMotion}
	m, _ = m.Update(move)
	m, _ = m.Update(frameMsg(clock.now))
	if box.Pos == origin {
		t.Error("expected the box to follow the pointer")
	}

	release := tea.MouseMsg{X: center.X + 5, Y: center.Y - 3 + 2, Action: tea.MouseActionRelease}
	m, _ = m.Update(release)
	if machine.Dragged() != nil {
		t.Error("expected release to end the drag")
	}
}

func TestTaskModel_RightButtonDoesNotDrag(t *testing.T) {
	_, m, machine := newTaskModel(t)
	center := machine.Object("box").Rect().Center()
	press := tea.MouseMsg{X: center.X, Y: center.Y + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	m.Update(press)
	if machine.Dragged() != nil {
		t.Error("expected only the left button to start drags")
	}
}

func TestTaskModel_TimeoutEmitsTaskFinished(t *testing.T) {
	clock, m, machine := newTaskModel(t)

	clock.now = clock.now.Add(10 * time.Minute)
	m, cmd := m.Update(frameMsg(clock.now))
	if !machine.Done() {
		t.Fatal("expected machine to time out")
	}
	if cmd == nil {
		t.Fatal("expected a command carrying the finish message")
	}
	msg := cmd()
	fin, ok := msg.(msgs.TaskFinishedMsg)
	if !ok {
		t.Fatalf("expected TaskFinishedMsg, got %T", msg)
	}
	if fin.Result == nil || fin.Result.Outcome != engine.OutcomeTimeout {
		t.Errorf("expected timeout result, got %+v", fin.Result)
	}

	// Further frames must not emit the message again.
	if _, cmd := m.Update(frameMsg(clock.now)); cmd != nil {
		if _, again := cmd().(msgs.TaskFinishedMsg); again {
			t.Error("expected TaskFinishedMsg to fire once")
		}
	}
}

func TestTaskModel_ViewShowsCountdownAndField(t *testing.T) {
	_, m, _ := newTaskModel(t)
	out := m.View()
	if !strings.Contains(out, "left") {
		t.Errorf("expected remaining-time header, got %q", firstLine(out))
	}
	if !strings.Contains(out, "░") {
		t.Error("expected zone shading in the rendered frame")
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
