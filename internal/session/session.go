// Package session orchestrates one participant's pass through the task
// battery: identity, task order, condition assignment, and result recording.
package session

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mehtalab/fixlab/internal/config"
	"github.com/mehtalab/fixlab/internal/engine"
	"github.com/mehtalab/fixlab/internal/results"
	"github.com/mehtalab/fixlab/internal/task"
	"github.com/mehtalab/fixlab/internal/util"
)

// Options configures session startup behavior.
type Options struct {
	// ParticipantID overrides the generated identity, for tests.
	ParticipantID string
	// TaskOrder fixes the presentation order by task name, for tests.
	// Empty means shuffled per participant.
	TaskOrder []string
	// Warn receives non-fatal problems such as persistence failures.
	Warn func(msg string)
}

// Session is one participant's run of the experiment.
type Session struct {
	participantID string
	seed          int
	tasks         []task.Definition
	cfg           *config.Config
	layout        engine.Layout
	sink          *results.Writer
	journal       *Journal
	warn          func(msg string)
	completed     int
}

// New creates a session for a fresh participant: generates the identity,
// resolves the task battery from the config, and shuffles the presentation
// order deterministically from the participant's seed.
func New(cfg *config.Config, now time.Time, opts Options) (*Session, error) {
	id := opts.ParticipantID
	if id == "" {
		var err error
		id, err = util.GenerateParticipantID(now)
		if err != nil {
			return nil, fmt.Errorf("failed to generate participant ID: %w", err)
		}
	}
	seed, err := util.ParticipantSeed(id)
	if err != nil {
		return nil, err
	}

	tasks, err := resolveTasks(cfg.Tasks)
	if err != nil {
		return nil, err
	}
	if len(opts.TaskOrder) > 0 {
		tasks, err = orderByName(tasks, opts.TaskOrder)
		if err != nil {
			return nil, err
		}
	} else {
		// Same participant, same order: the shuffle is seeded by identity.
		rand.New(rand.NewSource(int64(seed))).Shuffle(len(tasks), func(i, j int) {
			tasks[i], tasks[j] = tasks[j], tasks[i]
		})
	}

	warn := opts.Warn
	if warn == nil {
		warn = func(string) {}
	}

	s := &Session{
		participantID: id,
		seed:          seed,
		tasks:         tasks,
		cfg:           cfg,
		layout:        engine.NewLayout(cfg.Screen.Width, cfg.Screen.Height, 8),
		sink:          results.NewWriter(cfg.DataFile, task.FlagFields()),
		journal:       NewJournal(cfg.DataFile + ".journal"),
		warn:          warn,
	}
	if err := s.journal.SessionStarted(now, id, len(tasks)); err != nil {
		warn(fmt.Sprintf("could not write session journal: %v", err))
	}
	return s, nil
}

func resolveTasks(names []string) ([]task.Definition, error) {
	if len(names) == 0 {
		return task.All(), nil
	}
	return orderByName(task.All(), names)
}

func orderByName(available []task.Definition, names []string) ([]task.Definition, error) {
	byName := make(map[string]task.Definition, len(available))
	for _, d := range available {
		byName[d.Name] = d
	}
	ordered := make([]task.Definition, 0, len(names))
	for _, name := range names {
		d, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown task %q", name)
		}
		ordered = append(ordered, d)
	}
	return ordered, nil
}

// ParticipantID returns this session's participant identity.
func (s *Session) ParticipantID() string {
	return s.participantID
}

// Layout returns the playfield geometry every task runs in.
func (s *Session) Layout() engine.Layout {
	return s.layout
}

// Tasks returns the battery in presentation order.
func (s *Session) Tasks() []task.Definition {
	return s.tasks
}

// Completed reports how many tasks have been recorded so far.
func (s *Session) Completed() int {
	return s.completed
}

// Condition returns the condition (0 control, 1 treatment) assigned to the
// task at the given presentation index.
func (s *Session) Condition(taskIndex int) int {
	return (s.seed + taskIndex) % 2
}

// StartTask builds a running machine for the task at the given presentation
// index, applying any configured timeout override.
func (s *Session) StartTask(taskIndex int, start time.Time) (*engine.Machine, error) {
	if taskIndex < 0 || taskIndex >= len(s.tasks) {
		return nil, fmt.Errorf("task index %d out of range", taskIndex)
	}
	def := s.tasks[taskIndex]
	if override := s.cfg.Timeout(def.Name); override > 0 {
		def.Timeout = override
	}
	if err := s.journal.TaskStarted(start, def.Name, taskIndex, s.Condition(taskIndex)); err != nil {
		s.warn(fmt.Sprintf("could not write session journal: %v", err))
	}
	return def.Start(s.layout, s.Condition(taskIndex), start), nil
}

// RecordResult appends a finished run to the data file. A data file failure
// is reported through the warn callback and returned as display text; journal
// failures go to the callback only. Neither aborts the session: the
// participant keeps going even if the disk does not.
func (s *Session) RecordResult(taskIndex int, res *engine.Result) string {
	rec := results.NewRecord(s.participantID, taskIndex, res)
	warning := ""
	if err := s.sink.Append(rec); err != nil {
		warning = fmt.Sprintf("could not save result for %s: %v", res.TaskName, err)
		s.warn(warning)
	}
	if err := s.journal.TaskFinished(res.EndTime, res.TaskName, string(res.Outcome), res.DurationSeconds); err != nil {
		s.warn(fmt.Sprintf("could not write session journal: %v", err))
	}
	s.completed++
	if s.completed == len(s.tasks) {
		if err := s.journal.SessionCompleted(res.EndTime, s.participantID, s.completed); err != nil {
			s.warn(fmt.Sprintf("could not write session journal: %v", err))
		}
	}
	return warning
}

// DataFile returns the path results are written to.
func (s *Session) DataFile() string {
	return s.sink.Path()
}
