// Package demo replays a scripted pointer sequence through a task machine,
// a headless walkthrough for checking a setup without a live participant.
package demo

import (
	"fmt"
	"io"
	"time"

	"github.com/mehtalab/fixlab/internal/engine"
	"github.com/mehtalab/fixlab/internal/geom"
	"github.com/mehtalab/fixlab/internal/task"
)

// Action is one kind of scripted pointer event.
type Action int

const (
	ActionPress Action = iota
	ActionMove
	ActionRelease
)

func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionMove:
		return "move"
	case ActionRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Step is one scripted pointer event, timed relative to task start.
type Step struct {
	Delay  time.Duration
	Action Action
	At     geom.Point
}

// Script is a full scripted run of one task.
type Script struct {
	TaskName  string
	Condition int
	Steps     []Step
}

// drag appends press-move-release steps grabbing at from and dropping at to.
func drag(steps []Step, at time.Duration, from, to geom.Point) []Step {
	return append(steps,
		Step{Delay: at, Action: ActionPress, At: from},
		Step{Delay: at + 500*time.Millisecond, Action: ActionMove, At: to},
		Step{Delay: at + time.Second, Action: ActionRelease, At: to},
	)
}

// CandleBoxScript returns a scripted solve of the candle-box task under the
// control condition: box to the wall, tacks into the box, candle on top.
func CandleBoxScript() Script {
	var steps []Step
	steps = drag(steps, 1*time.Second, geom.Point{X: 50, Y: 36}, geom.Point{X: 50, Y: 20})
	steps = drag(steps, 4*time.Second, geom.Point{X: 70, Y: 36}, geom.Point{X: 50, Y: 23})
	steps = drag(steps, 7*time.Second, geom.Point{X: 28, Y: 36}, geom.Point{X: 50, Y: 23})
	return Script{TaskName: "CandleBox", Condition: 0, Steps: steps}
}

// Run replays a script against a fresh machine and writes a narrated
// transcript to w. It returns the finished result.
func Run(script Script, w io.Writer) (*engine.Result, error) {
	def, err := task.ByName(script.TaskName)
	if err != nil {
		return nil, err
	}

	layout := engine.NewLayout(100, 40, 8)
	start := time.Now()
	m := def.Start(layout, script.Condition, start)

	fmt.Fprintf(w, "Replaying %s (condition %d, %d steps)\n", script.TaskName, script.Condition, len(script.Steps))

	for _, step := range script.Steps {
		now := start.Add(step.Delay)
		m.Step(now)
		if m.Done() {
			break
		}
		fmt.Fprintf(w, "  %5.1fs  %s at %s\n", step.Delay.Seconds(), step.Action, step.At)
		switch step.Action {
		case ActionPress:
			m.HandlePointerDown(step.At, now)
		case ActionMove:
			m.HandlePointerMove(step.At, now)
			m.Step(now)
		case ActionRelease:
			m.HandlePointerUp(step.At, now)
		}
	}

	// Let the clock run out if the script did not solve the task.
	if !m.Done() {
		m.Step(start.Add(def.Timeout + time.Second))
	}

	res := m.Result()
	fmt.Fprintf(w, "\nOutcome: %s after %.1fs, %d actions, %d wrong drops\n",
		res.Outcome, res.DurationSeconds, res.TotalActions, res.IncorrectDrops)
	for _, e := range res.ActionLog {
		fmt.Fprintf(w, "  %s\n", e.String())
	}
	return res, nil
}
