package session

import (
	"encoding/json"
	"os"
	"time"
)

// Event type constants for the session journal.
const (
	EventSessionStarted   = "session_started"
	EventSessionCompleted = "session_completed"
	EventTaskStarted      = "task_started"
	EventTaskFinished     = "task_finished"
)

// JournalEvent is a single journal entry.
type JournalEvent struct {
	Timestamp time.Time              `json:"timestamp"`
	Event     string                 `json:"event"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// Journal writes session lifecycle events to a JSON Lines file, a coarse
// operational log alongside the per-run CSV data.
type Journal struct {
	path string
}

// NewJournal creates a journal writing to the given path.
func NewJournal(path string) *Journal {
	return &Journal{path: path}
}

// Log appends an event to the journal file.
func (j *Journal) Log(at time.Time, event string, data map[string]interface{}) error {
	entry := JournalEvent{
		Timestamp: at,
		Event:     event,
		Data:      data,
	}

	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	jsonBytes = append(jsonBytes, '\n')

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(jsonBytes)
	return err
}

// SessionStarted logs a session_started event.
func (j *Journal) SessionStarted(at time.Time, participantID string, taskCount int) error {
	return j.Log(at, EventSessionStarted, map[string]interface{}{
		"participant_id": participantID,
		"task_count":     taskCount,
	})
}

// TaskStarted logs a task_started event.
func (j *Journal) TaskStarted(at time.Time, taskName string, taskIndex, condition int) error {
	return j.Log(at, EventTaskStarted, map[string]interface{}{
		"task":      taskName,
		"index":     taskIndex,
		"condition": condition,
	})
}

// TaskFinished logs a task_finished event.
func (j *Journal) TaskFinished(at time.Time, taskName string, outcome string, durationSeconds float64) error {
	return j.Log(at, EventTaskFinished, map[string]interface{}{
		"task":             taskName,
		"outcome":          outcome,
		"duration_seconds": durationSeconds,
	})
}

// SessionCompleted logs a session_completed event.
func (j *Journal) SessionCompleted(at time.Time, participantID string, completed int) error {
	return j.Log(at, EventSessionCompleted, map[string]interface{}{
		"participant_id": participantID,
		"completed":      completed,
	})
}
