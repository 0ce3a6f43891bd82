// Package results persists one flattened CSV record per completed task run.
package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mehtalab/fixlab/internal/engine"
)

// Record is the flattened form of a single task run, ready for one CSV row.
type Record struct {
	ParticipantID     string
	TaskIndex         int
	TaskName          string
	AssignedCondition int
	StartTime         time.Time
	EndTime           time.Time
	DurationSeconds   float64
	Outcome           engine.Outcome
	TotalActions      int
	IncorrectDrops    int
	Flags             map[string]bool
	ActionLog         string
}

// NewRecord flattens an engine result into a Record. taskIndex is the
// zero-based presentation index; the TaskIndex column is 1-based.
func NewRecord(participantID string, taskIndex int, r *engine.Result) Record {
	return Record{
		ParticipantID:     participantID,
		TaskIndex:         taskIndex + 1,
		TaskName:          r.TaskName,
		AssignedCondition: r.Condition,
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		DurationSeconds:   r.DurationSeconds,
		Outcome:           r.Outcome,
		TotalActions:      r.TotalActions,
		IncorrectDrops:    r.IncorrectDrops,
		Flags:             r.Flags,
		ActionLog:         r.RenderedLog(ActionLogSeparator),
	}
}

// ActionLogSeparator joins the event lines of a run into one CSV field.
const ActionLogSeparator = " | "

const timeLayout = "2006-01-02 15:04:05"

// Writer appends records to a CSV file, writing the header exactly once.
type Writer struct {
	path       string
	flagFields []string
}

// NewWriter creates a writer for the given file path. flagFields is the full
// set of task flag columns in canonical order; flags a task never sets are
// written as empty cells so every row has the same shape.
func NewWriter(path string, flagFields []string) *Writer {
	return &Writer{path: path, flagFields: flagFields}
}

// Path returns the target file path.
func (w *Writer) Path() string {
	return w.path
}

// Append writes one record, creating the file and header if needed.
func (w *Writer) Append(rec Record) error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create results directory: %w", err)
		}
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("failed to open results file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat results file: %w", err)
	}

	cw := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := cw.Write(w.header()); err != nil {
			return fmt.Errorf("failed to write results header: %w", err)
		}
	}
	if err := cw.Write(w.row(rec)); err != nil {
		return fmt.Errorf("failed to write results row: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush results file: %w", err)
	}
	return nil
}

func (w *Writer) header() []string {
	cols := []string{
		"ParticipantID", "TaskIndex", "TaskName", "AssignedCondition",
		"StartTime", "EndTime", "DurationSeconds", "Outcome",
		"TotalActions", "IncorrectDrops",
	}
	cols = append(cols, w.flagFields...)
	return append(cols, "ActionLog")
}

func (w *Writer) row(rec Record) []string {
	cells := []string{
		rec.ParticipantID,
		strconv.Itoa(rec.TaskIndex),
		rec.TaskName,
		strconv.Itoa(rec.AssignedCondition),
		rec.StartTime.Format(timeLayout),
		rec.EndTime.Format(timeLayout),
		strconv.FormatFloat(rec.DurationSeconds, 'f', 2, 64),
		string(rec.Outcome),
		strconv.Itoa(rec.TotalActions),
		strconv.Itoa(rec.IncorrectDrops),
	}
	for _, name := range w.flagFields {
		// A flag a task never touched stays an empty cell, distinct from
		// an explicit false.
		v, ok := rec.Flags[name]
		switch {
		case !ok:
			cells = append(cells, "")
		case v:
			cells = append(cells, "true")
		default:
			cells = append(cells, "false")
		}
	}
	return append(cells, rec.ActionLog)
}
