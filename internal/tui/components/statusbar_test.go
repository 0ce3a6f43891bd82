package components

import (
	"strings"
	"testing"
)

func TestStatusBar_Render(t *testing.T) {
	bar := NewStatusBar()

	out := bar.Render(80, []string{"enter: begin", "q: quit"})
	if !strings.Contains(out, "enter: begin • q: quit") {
		t.Errorf("expected joined items, got %q", out)
	}

	if out := bar.Render(80, nil); strings.TrimSpace(stripAnsi(out)) != "" {
		t.Errorf("expected empty bar for no items, got %q", out)
	}
}

func TestStatusBar_RenderWarning(t *testing.T) {
	bar := NewStatusBar()

	out := bar.RenderWarning(80, []string{"q: quit"}, "disk full")
	if !strings.Contains(out, "disk full") {
		t.Errorf("expected warning text, got %q", out)
	}
	if !strings.Contains(out, "q: quit") {
		t.Errorf("expected help items to survive, got %q", out)
	}

	// No warning degrades to the plain bar.
	plain := bar.RenderWarning(80, []string{"q: quit"}, "")
	if strings.Contains(plain, "⚠") {
		t.Errorf("expected no warning marker, got %q", plain)
	}
}

// stripAnsi removes escape sequences so tests can assert on visible text.
func stripAnsi(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
