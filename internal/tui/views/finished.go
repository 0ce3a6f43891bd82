package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mehtalab/fixlab/internal/tui/components"
	"github.com/mehtalab/fixlab/internal/tui/styles"
)

// FinishedModel is the closing screen after the last task.
type FinishedModel struct {
	participantID string
	completed     int
	dataFile      string
	statusBar     components.StatusBar
	width         int
	height        int
}

// NewFinishedModel creates the closing screen.
func NewFinishedModel(participantID string, completed int, dataFile string) FinishedModel {
	return FinishedModel{
		participantID: participantID,
		completed:     completed,
		dataFile:      dataFile,
		statusBar:     components.NewStatusBar(),
	}
}

// Init implements tea.Model.
func (m FinishedModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m FinishedModel) Update(msg tea.Msg) (FinishedModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "enter":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m FinishedModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	title := styles.TitleStyle.Render("All done — thank you!")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n")

	body := styles.BoxStyle.Render(strings.Join([]string{
		fmt.Sprintf("Participant: %s", m.participantID),
		fmt.Sprintf("Tasks completed: %d", m.completed),
		fmt.Sprintf("Results saved to: %s", m.dataFile),
	}, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n\n")

	b.WriteString(m.statusBar.Render(m.width, []string{"enter: exit"}))
	return b.String()
}
