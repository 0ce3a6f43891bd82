package views

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mehtalab/fixlab/internal/assets"
	"github.com/mehtalab/fixlab/internal/engine"
	"github.com/mehtalab/fixlab/internal/geom"
	"github.com/mehtalab/fixlab/internal/tui/components"
	"github.com/mehtalab/fixlab/internal/tui/msgs"
	"github.com/mehtalab/fixlab/internal/tui/styles"
)

// frameMsg drives the fixed-rate simulation loop.
type frameMsg time.Time

// TaskModel runs one task: it owns the engine machine, feeds it mouse
// input, steps it at the configured frame rate, and draws each frame.
type TaskModel struct {
	taskIndex int
	title     string
	machine   *engine.Machine
	canvas    *components.Canvas
	countdown progress.Model
	timeout   time.Duration
	interval  time.Duration
	clock     func() time.Time
	statusBar components.StatusBar
	warning   string
	finished  bool

	width  int
	height int
}

// NewTaskModel creates the running view for a task machine. interval is the
// frame tick period. clock supplies the current time so tests can drive the
// run deterministically.
func NewTaskModel(taskIndex int, title string, m *engine.Machine, sprites *assets.Provider, interval time.Duration, clock func() time.Time) TaskModel {
	screen := m.Layout().Screen
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = screen.W
	bar.ShowPercentage = false

	now := clock()
	return TaskModel{
		taskIndex: taskIndex,
		title:     title,
		machine:   m,
		canvas:    components.NewCanvas(screen.W, screen.H, sprites),
		countdown: bar,
		timeout:   m.Remaining(now),
		interval:  interval,
		clock:     clock,
		statusBar: components.NewStatusBar(),
	}
}

// SetWarning puts a non-fatal problem into the status line.
func (m *TaskModel) SetWarning(text string) {
	m.warning = text
}

// Init implements tea.Model.
func (m TaskModel) Init() tea.Cmd {
	return m.frameCmd()
}

func (m TaskModel) frameCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update implements tea.Model.
func (m TaskModel) Update(msg tea.Msg) (TaskModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// An in-flight run is abandoned without a record when quitting.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case frameMsg:
		if m.finished {
			return m, nil
		}
		m.machine.Step(m.clock())
		if m.machine.Done() && !m.finished {
			m.finished = true
			idx, res := m.taskIndex, m.machine.Result()
			return m, func() tea.Msg {
				return msgs.TaskFinishedMsg{TaskIndex: idx, Result: res}
			}
		}
		return m, m.frameCmd()
	}
	return m, nil
}

// handleMouse translates terminal mouse events into engine pointer events.
// Only the left button drags; motion is forwarded regardless of button so
// an active drag keeps tracking.
func (m *TaskModel) handleMouse(msg tea.MouseMsg) {
	p := m.toPlayfield(msg.X, msg.Y)
	now := m.clock()
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.machine.HandlePointerDown(p, now)
		}
	case tea.MouseActionMotion:
		m.machine.HandlePointerMove(p, now)
	case tea.MouseActionRelease:
		m.machine.HandlePointerUp(p, now)
	}
}

// toPlayfield maps a terminal coordinate to playfield cells, undoing the
// centering offset View draws with.
func (m *TaskModel) toPlayfield(x, y int) geom.Point {
	ox, oy := m.playfieldOrigin()
	return geom.Point{X: x - ox, Y: y - oy}
}

// playfieldOrigin returns where the playfield's top-left lands on screen:
// horizontally centered, below the two header lines.
func (m *TaskModel) playfieldOrigin() (int, int) {
	screen := m.machine.Layout().Screen
	ox := (m.width - screen.W) / 2
	if ox < 0 {
		ox = 0
	}
	return ox, 2
}

// View implements tea.Model.
func (m TaskModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	now := m.clock()
	remaining := m.machine.Remaining(now)

	header := styles.HeaderStyle.Render(m.title) + "  " +
		styles.SubtleStyle.Render(fmt.Sprintf("%s left", remaining.Round(time.Second)))

	frac := 0.0
	if m.timeout > 0 {
		frac = float64(remaining) / float64(m.timeout)
	}
	bar := m.countdown.ViewAs(frac)

	m.canvas.Clear()
	m.machine.Render(m.canvas)

	ox, _ := m.playfieldOrigin()
	pad := lipgloss.NewStyle().MarginLeft(ox)

	items := []string{"drag with the mouse", "ctrl+c: abandon session"}
	status := m.statusBar.RenderWarning(m.width, items, m.warning)

	return pad.Render(header) + "\n" +
		pad.Render(bar) + "\n" +
		pad.Render(m.canvas.View()) + "\n" +
		status
}
