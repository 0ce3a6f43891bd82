// Package tui is the Bubble Tea front end that walks a participant through
// the experiment: welcome, then per task instructions, run, and feedback,
// then a closing screen.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mehtalab/fixlab/internal/assets"
	"github.com/mehtalab/fixlab/internal/config"
	"github.com/mehtalab/fixlab/internal/session"
	"github.com/mehtalab/fixlab/internal/tui/msgs"
	"github.com/mehtalab/fixlab/internal/tui/views"
)

// View represents the different screens in the TUI.
type View int

const (
	ViewWelcome View = iota
	ViewInstructions
	ViewTask
	ViewFeedback
	ViewFinished
)

// Model is the main Bubble Tea model that orchestrates all views.
type Model struct {
	currentView View
	width       int
	height      int

	cfg     *config.Config
	sess    *session.Session
	sprites *assets.Provider
	clock   func() time.Time

	currentTask int
	warning     string

	welcome      views.WelcomeModel
	instructions views.InstructionsModel
	task         views.TaskModel
	feedback     views.FeedbackModel
	finished     views.FinishedModel
}

// Run starts the TUI application for a fresh participant.
func Run(cfg *config.Config) error {
	sess, err := session.New(cfg, time.Now(), session.Options{})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	p := tea.NewProgram(
		NewModel(cfg, sess, time.Now),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}

// NewModel builds the root model. clock supplies the current time so tests
// can drive runs deterministically.
func NewModel(cfg *config.Config, sess *session.Session, clock func() time.Time) Model {
	m := Model{
		currentView: ViewWelcome,
		cfg:         cfg,
		sess:        sess,
		clock:       clock,
	}
	m.sprites = assets.NewProvider(cfg.AssetsDir, func(string) {})
	m.welcome = views.NewWelcomeModel(sess.ParticipantID(), len(sess.Tasks()))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Every view gets the size so transitions render immediately.
		m.welcome, _ = m.welcome.Update(msg)
		m.instructions, _ = m.instructions.Update(msg)
		m.task, _ = m.task.Update(msg)
		m.feedback, _ = m.feedback.Update(msg)
		m.finished, _ = m.finished.Update(msg)
		return m, nil

	case msgs.BeginSessionMsg:
		return m.gotoInstructions(0)

	case msgs.StartTaskMsg:
		return m.startTask(msg.TaskIndex)

	case msgs.TaskFinishedMsg:
		m.warning = m.sess.RecordResult(msg.TaskIndex, msg.Result)
		m.currentView = ViewFeedback
		last := msg.TaskIndex == len(m.sess.Tasks())-1
		m.feedback = views.NewFeedbackModel(msg.Result, last, m.warning)
		m.feedback, _ = m.feedback.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return m, nil

	case msgs.ContinueMsg:
		if m.currentTask+1 < len(m.sess.Tasks()) {
			return m.gotoInstructions(m.currentTask + 1)
		}
		m.currentView = ViewFinished
		m.finished = views.NewFinishedModel(m.sess.ParticipantID(), m.sess.Completed(), m.sess.DataFile())
		m.finished, _ = m.finished.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return m, nil

	case msgs.WarnMsg:
		m.warning = msg.Text
		if m.currentView == ViewTask {
			m.task.SetWarning(msg.Text)
		}
		return m, nil
	}

	return m.routeToCurrent(msg)
}

// routeToCurrent forwards a message to whichever view is active.
func (m Model) routeToCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewWelcome:
		m.welcome, cmd = m.welcome.Update(msg)
	case ViewInstructions:
		m.instructions, cmd = m.instructions.Update(msg)
	case ViewTask:
		m.task, cmd = m.task.Update(msg)
	case ViewFeedback:
		m.feedback, cmd = m.feedback.Update(msg)
	case ViewFinished:
		m.finished, cmd = m.finished.Update(msg)
	}
	return m, cmd
}

func (m Model) gotoInstructions(taskIndex int) (tea.Model, tea.Cmd) {
	m.currentTask = taskIndex
	m.currentView = ViewInstructions
	m.instructions = views.NewInstructionsModel(taskIndex, len(m.sess.Tasks()), m.sess.Tasks()[taskIndex])
	m.instructions, _ = m.instructions.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return m, nil
}

func (m Model) startTask(taskIndex int) (tea.Model, tea.Cmd) {
	machine, err := m.sess.StartTask(taskIndex, m.clock())
	if err != nil {
		// Out-of-range task indexes cannot happen through the normal flow.
		return m, tea.Quit
	}
	m.currentTask = taskIndex
	m.currentView = ViewTask
	m.warning = ""
	m.task = views.NewTaskModel(taskIndex, m.sess.Tasks()[taskIndex].Title, machine, m.sprites, m.cfg.FrameInterval(), m.clock)
	m.task, _ = m.task.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return m, m.task.Init()
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.currentView {
	case ViewWelcome:
		return m.welcome.View()
	case ViewInstructions:
		return m.instructions.View()
	case ViewTask:
		return m.task.View()
	case ViewFeedback:
		return m.feedback.View()
	case ViewFinished:
		return m.finished.View()
	}
	return ""
}
