package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mehtalab/fixlab/internal/engine"
	"github.com/mehtalab/fixlab/internal/tui/components"
	"github.com/mehtalab/fixlab/internal/tui/msgs"
	"github.com/mehtalab/fixlab/internal/tui/styles"
)

// FeedbackModel shows the outcome of a finished task run.
type FeedbackModel struct {
	result    *engine.Result
	lastTask  bool
	warning   string
	statusBar components.StatusBar
	width     int
	height    int
}

// NewFeedbackModel creates the between-tasks outcome screen.
func NewFeedbackModel(result *engine.Result, lastTask bool, warning string) FeedbackModel {
	return FeedbackModel{
		result:    result,
		lastTask:  lastTask,
		warning:   warning,
		statusBar: components.NewStatusBar(),
	}
}

// Init implements tea.Model.
func (m FeedbackModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m FeedbackModel) Update(msg tea.Msg) (FeedbackModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			return m, func() tea.Msg { return msgs.ContinueMsg{} }
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m FeedbackModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var headline string
	if m.result.Outcome == engine.OutcomeSolved {
		headline = styles.SuccessStyle.Render("Solved!")
	} else {
		headline = styles.ErrorStyle.Render("Time's up")
	}

	lines := []string{
		headline,
		"",
		fmt.Sprintf("Task: %s", m.result.TaskName),
		fmt.Sprintf("Time: %.1fs", m.result.DurationSeconds),
		fmt.Sprintf("Actions: %d", m.result.TotalActions),
	}
	if m.warning != "" {
		lines = append(lines, "", styles.ErrorStyle.Render("⚠ "+m.warning))
	}

	var b strings.Builder
	body := styles.BoxStyle.Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n\n")

	next := "enter: next task"
	if m.lastTask {
		next = "enter: finish"
	}
	b.WriteString(m.statusBar.Render(m.width, []string{next, "q: quit"}))
	return b.String()
}
