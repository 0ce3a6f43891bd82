package components

import (
	"strings"

	"github.com/mehtalab/fixlab/internal/tui/styles"
)

// StatusBar renders a bottom help bar showing contextual help items.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render returns the status bar string for the given width and items.
// Items are joined with " • " separator and padded to fill the width.
func (s StatusBar) Render(width int, items []string) string {
	if len(items) == 0 {
		return styles.StatusBarStyle.Width(width).Render("")
	}

	content := strings.Join(items, " • ")

	return styles.StatusBarStyle.Width(width).Render(content)
}

// RenderWarning returns the status bar with a highlighted warning appended
// after the help items, used for non-fatal problems like a failed save.
func (s StatusBar) RenderWarning(width int, items []string, warning string) string {
	if warning == "" {
		return s.Render(width, items)
	}
	content := strings.Join(items, " • ")
	if content != "" {
		content += "  "
	}
	return styles.StatusBarStyle.Width(width).Render(content + styles.ErrorStyle.Render("⚠ "+warning))
}
