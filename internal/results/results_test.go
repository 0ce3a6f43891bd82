package results

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mehtalab/fixlab/internal/engine"
)

var testFlags = []string{"BoxOnWall", "BoxTacked", "KatoriInverted"}

func testRecord(taskIndex int) Record {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return Record{
		ParticipantID:     "20260301_100000_4817",
		TaskIndex:         taskIndex,
		TaskName:          "CandleBox",
		AssignedCondition: 1,
		StartTime:         start,
		EndTime:           start.Add(95 * time.Second),
		DurationSeconds:   95.0,
		Outcome:           engine.OutcomeSolved,
		TotalActions:      7,
		IncorrectDrops:    1,
		Flags:             map[string]bool{"BoxOnWall": true, "BoxTacked": true},
		ActionLog:         "0.50s - DRAG_START(box) | 2.10s - PLACE(Candle on Box)",
	}
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open results file: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse results file: %v", err)
	}
	return rows
}

func TestWriter_HeaderWrittenOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	w := NewWriter(path, testFlags)

	if err := w.Append(testRecord(0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Append(testRecord(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A fresh writer on the same non-empty file must not repeat the header.
	if err := NewWriter(path, testFlags).Append(testRecord(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := readRows(t, path)
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d rows", len(rows))
	}
	if rows[0][0] != "ParticipantID" {
		t.Errorf("expected header first, got %v", rows[0])
	}
	for i, row := range rows[1:] {
		if row[0] == "ParticipantID" {
			t.Errorf("row %d repeats the header", i+1)
		}
	}
}

func TestWriter_HeaderColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	w := NewWriter(path, testFlags)
	if err := w.Append(testRecord(0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := readRows(t, path)
	want := []string{
		"ParticipantID", "TaskIndex", "TaskName", "AssignedCondition",
		"StartTime", "EndTime", "DurationSeconds", "Outcome",
		"TotalActions", "IncorrectDrops",
		"BoxOnWall", "BoxTacked", "KatoriInverted",
		"ActionLog",
	}
	if len(rows[0]) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(rows[0]))
	}
	for i, col := range want {
		if rows[0][i] != col {
			t.Errorf("column %d: expected %q, got %q", i, col, rows[0][i])
		}
	}
}

func TestWriter_RowValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	w := NewWriter(path, testFlags)
	if err := w.Append(testRecord(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row := readRows(t, path)[1]
	checks := map[int]string{
		0:  "20260301_100000_4817",
		1:  "2",
		2:  "CandleBox",
		3:  "1",
		4:  "2026-03-01 10:00:00",
		5:  "2026-03-01 10:01:35",
		6:  "95.00",
		7:  "Solved",
		8:  "7",
		9:  "1",
		13: "0.50s - DRAG_START(box) | 2.10s - PLACE(Candle on Box)",
	}
	for i, want := range checks {
		if row[i] != want {
			t.Errorf("cell %d: expected %q, got %q", i, want, row[i])
		}
	}
}

func TestWriter_UnsetFlagsAreEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	w := NewWriter(path, testFlags)
	if err := w.Append(testRecord(0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row := readRows(t, path)[1]
	if row[10] != "true" || row[11] != "true" {
		t.Errorf("expected set flags true, got %q %q", row[10], row[11])
	}
	// KatoriInverted belongs to another task: empty, not false.
	if row[12] != "" {
		t.Errorf("expected unset flag empty, got %q", row[12])
	}
}

func TestWriter_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "results.csv")
	w := NewWriter(path, testFlags)
	if err := w.Append(testRecord(0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(readRows(t, path)) != 2 {
		t.Error("expected header and one row")
	}
}

func TestNewRecord_FlattensResult(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	res := &engine.Result{
		TaskName:        "KatoriStand",
		Condition:       0,
		Outcome:         engine.OutcomeTimeout,
		StartTime:       start,
		EndTime:         start.Add(3 * time.Minute),
		DurationSeconds: 180.0,
		TotalActions:    4,
		IncorrectDrops:  2,
		Flags:           map[string]bool{"KatoriInverted": true},
		ActionLog: []engine.Event{
			{Elapsed: 1500 * time.Millisecond, Type: engine.EventDragStart, Detail: "katori"},
			{Elapsed: 3200 * time.Millisecond, Type: engine.EventPlace, Detail: "Katori Inverted"},
		},
	}

	rec := NewRecord("20260301_100000_1234", 1, res)
	// The presentation index is zero-based; the persisted column is 1-based.
	if rec.TaskName != "KatoriStand" || rec.TaskIndex != 2 || rec.AssignedCondition != 0 {
		t.Errorf("unexpected record identity: %+v", rec)
	}
	if rec.Outcome != engine.OutcomeTimeout {
		t.Errorf("expected timeout outcome, got %q", rec.Outcome)
	}
	want := "1.50s - DRAG_START(katori) | 3.20s - PLACE(Katori Inverted)"
	if rec.ActionLog != want {
		t.Errorf("expected action log %q, got %q", want, rec.ActionLog)
	}
}
