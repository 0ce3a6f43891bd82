// Package task defines the experiment's task battery. Each task is a
// declarative configuration over the shared engine: an object set with
// initial staging positions, named drop zones, and an ordered rule table.
// The condition parameter only changes the initial visuals (the
// pre-utilization manipulation), never the rules.
package task

import (
	"fmt"
	"time"

	"github.com/mehtalab/fixlab/internal/engine"
	"github.com/mehtalab/fixlab/internal/geom"
)

// Definition describes one task in the battery.
type Definition struct {
	// Name identifies the task in result records, e.g. "CandleBox".
	Name string
	// Title is the short display name, e.g. "Candle Box".
	Title string
	// Instructions is the participant-facing prompt shown before the run.
	Instructions string
	Timeout      time.Duration
	// Flags lists the milestone flag names this task may set, in
	// persistence order.
	Flags []string
	// Setup builds the scene for the given layout and condition.
	Setup func(layout engine.Layout, condition int) *engine.Scene
}

// Start creates a running machine for this task.
func (d Definition) Start(layout engine.Layout, condition int, start time.Time) *engine.Machine {
	return engine.NewMachine(d.Name, d.Timeout, condition, layout, d.Setup(layout, condition), start)
}

// All returns the task battery in canonical order. The shuffled presentation
// order is the session's concern; this order fixes the persistence schema.
func All() []Definition {
	return []Definition{
		CandleBox(),
		KatoriStand(),
		HangerWire(),
		BridgeSupport(),
	}
}

// ByName looks a task up in the battery.
func ByName(name string) (Definition, error) {
	for _, d := range All() {
		if d.Name == name {
			return d, nil
		}
	}
	return Definition{}, fmt.Errorf("unknown task: %s", name)
}

// FlagFields returns every task-specific flag name across the battery in
// canonical order, used as the persistence column set.
func FlagFields() []string {
	var fields []string
	for _, d := range All() {
		fields = append(fields, d.Flags...)
	}
	return fields
}

// stagingSlot positions an object of the given size inside the staging strip,
// horizontally offset from the strip's center.
func stagingSlot(layout engine.Layout, size geom.Size, dx int) geom.Point {
	c := layout.Staging.Center()
	return geom.Point{X: c.X + dx - size.W/2, Y: c.Y - size.H/2}
}
