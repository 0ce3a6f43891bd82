package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mehtalab/fixlab/internal/task"
	"github.com/mehtalab/fixlab/internal/tui/components"
	"github.com/mehtalab/fixlab/internal/tui/msgs"
	"github.com/mehtalab/fixlab/internal/tui/styles"
)

// InstructionsModel shows one task's briefing before its run starts.
type InstructionsModel struct {
	taskIndex int
	total     int
	def       task.Definition
	statusBar components.StatusBar
	width     int
	height    int
}

// NewInstructionsModel creates the briefing screen for a task.
func NewInstructionsModel(taskIndex, total int, def task.Definition) InstructionsModel {
	return InstructionsModel{
		taskIndex: taskIndex,
		total:     total,
		def:       def,
		statusBar: components.NewStatusBar(),
	}
}

// Init implements tea.Model.
func (m InstructionsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m InstructionsModel) Update(msg tea.Msg) (InstructionsModel, tea.Cmd) {
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
			idx := m.taskIndex
			return m, func() tea.Msg { return msgs.StartTaskMsg{TaskIndex: idx} }
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m InstructionsModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	header := styles.TitleStyle.Render(
		fmt.Sprintf("Task %d of %d: %s", m.taskIndex+1, m.total, m.def.Title))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, header))
	b.WriteString("\n\n")

	limit := styles.SubtleStyle.Render(
		fmt.Sprintf("Time limit: %s", m.def.Timeout))
	body := styles.BoxStyle.Render(m.def.Instructions + "\n\n" + limit)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n\n")

	b.WriteString(m.statusBar.Render(m.width, []string{"enter: start the clock", "q: quit"}))
	return b.String()
}
