package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mehtalab/fixlab/internal/tui/components"
	"github.com/mehtalab/fixlab/internal/tui/msgs"
	"github.com/mehtalab/fixlab/internal/tui/styles"
)

// WelcomeModel is the landing screen shown before the first task.
type WelcomeModel struct {
	participantID string
	taskCount     int
	statusBar     components.StatusBar
	width         int
	height        int
}

// NewWelcomeModel creates the welcome screen for a participant.
func NewWelcomeModel(participantID string, taskCount int) WelcomeModel {
	return WelcomeModel{
		participantID: participantID,
		taskCount:     taskCount,
		statusBar:     components.NewStatusBar(),
	}
}

// Init implements tea.Model.
func (m WelcomeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m WelcomeModel) Update(msg tea.Msg) (WelcomeModel, tea.Cmd) {
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
			return m, func() tea.Msg { return msgs.BeginSessionMsg{} }
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m WelcomeModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("F I X L A B")
	tagline := styles.SubtleStyle.Render("Interactive problem-solving tasks")

	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tagline))
	b.WriteString("\n\n")

	body := styles.BoxStyle.Render(strings.Join([]string{
		"Welcome! You will solve a short series of physical puzzles",
		"by dragging objects around the screen with the mouse.",
		"",
		fmt.Sprintf("Tasks in this session: %d", m.taskCount),
		fmt.Sprintf("Your participant ID: %s", m.participantID),
		"",
		"Each task has a time limit. Work as quickly as you can,",
		"but it is fine if you do not finish every task.",
	}, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n\n")

	b.WriteString(m.statusBar.Render(m.width, []string{"enter: begin", "q: quit"}))
	return b.String()
}
