// Package analysis aggregates the experiment data file into per-task
// summaries for a quick look at how a study is going.
package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// ConditionStats holds run counts for one condition of one task.
type ConditionStats struct {
	Runs   int
	Solved int
}

// TaskSummary aggregates every recorded run of one task.
type TaskSummary struct {
	TaskName        string
	Runs            int
	Solved          int
	MeanDuration    float64 // seconds
	MeanWrongDrops  float64
	ControlStats    ConditionStats
	TreatmentStats  ConditionStats
	distinctParts   map[string]struct{}
	totalDuration   float64
	totalWrongDrops int
}

// Participants returns how many distinct participants attempted the task.
func (s *TaskSummary) Participants() int {
	return len(s.distinctParts)
}

// SolveRate returns the fraction of runs that ended solved.
func (s *TaskSummary) SolveRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Solved) / float64(s.Runs)
}

// Summarize reads a results CSV and aggregates it per task, sorted by task
// name. Malformed rows are skipped: a partially corrupt data file still
// yields a summary of everything readable.
func Summarize(path string) ([]*TaskSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()
	return summarize(f)
}

func summarize(r io.Reader) ([]*TaskSummary, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"ParticipantID", "TaskName", "AssignedCondition", "DurationSeconds", "Outcome", "IncorrectDrops"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("data file missing column %s", required)
		}
	}

	byTask := make(map[string]*TaskSummary)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		field := func(name string) string {
			i := col[name]
			if i >= len(row) {
				return ""
			}
			return row[i]
		}

		name := field("TaskName")
		if name == "" {
			continue
		}
		duration, err := strconv.ParseFloat(field("DurationSeconds"), 64)
		if err != nil {
			continue
		}
		condition, err := strconv.Atoi(field("AssignedCondition"))
		if err != nil || condition < 0 || condition > 1 {
			continue
		}
		wrongDrops, _ := strconv.Atoi(field("IncorrectDrops"))
		solved := field("Outcome") == "Solved"

		s, ok := byTask[name]
		if !ok {
			s = &TaskSummary{TaskName: name, distinctParts: make(map[string]struct{})}
			byTask[name] = s
		}
		s.Runs++
		s.totalDuration += duration
		s.totalWrongDrops += wrongDrops
		s.distinctParts[field("ParticipantID")] = struct{}{}

		stats := &s.ControlStats
		if condition == 1 {
			stats = &s.TreatmentStats
		}
		stats.Runs++
		if solved {
			s.Solved++
			stats.Solved++
		}
	}

	summaries := make([]*TaskSummary, 0, len(byTask))
	for _, s := range byTask {
		s.MeanDuration = s.totalDuration / float64(s.Runs)
		s.MeanWrongDrops = float64(s.totalWrongDrops) / float64(s.Runs)
		summaries = append(summaries, s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].TaskName < summaries[j].TaskName
	})
	return summaries, nil
}
