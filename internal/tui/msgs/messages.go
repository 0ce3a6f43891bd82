// Package msgs defines shared message types for TUI view transitions.
package msgs

import "github.com/mehtalab/fixlab/internal/engine"

// View transition messages

// BeginSessionMsg signals that the participant has left the welcome screen.
type BeginSessionMsg struct{}

// StartTaskMsg signals that the participant is done reading the
// instructions for the task at the given presentation index.
type StartTaskMsg struct {
	TaskIndex int
}

// TaskFinishedMsg is sent when a task machine reaches a terminal state.
type TaskFinishedMsg struct {
	TaskIndex int
	Result    *engine.Result
}

// ContinueMsg signals leaving the feedback screen for the next task,
// or for the finished screen after the last one.
type ContinueMsg struct{}

// WarnMsg carries a non-fatal problem to show in the status line.
type WarnMsg struct {
	Text string
}
