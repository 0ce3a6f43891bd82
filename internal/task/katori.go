package task

import (
	"time"

	"github.com/mehtalab/fixlab/internal/engine"
	"github.com/mehtalab/fixlab/internal/geom"
)

// Milestone flags for the katori-stand task.
const (
	FlagKatoriInverted = "KatoriInverted"
	FlagObjectStable   = "ObjectStable"
)

var (
	katoriSize = geom.Size{W: 10, H: 4}
	diyaSize   = geom.Size{W: 5, H: 3}
)

// KatoriStand asks the participant to make a small diya lamp stand stable on
// the table by inverting the katori bowl as a pedestal. Under the treatment
// condition the katori is shown already holding food.
func KatoriStand() Definition {
	return Definition{
		Name:    "KatoriStand",
		Title:   "Katori Stand",
		Timeout: 3 * time.Minute,
		Flags:   []string{FlagKatoriInverted, FlagObjectStable},
		Instructions: "Your goal is to make the small object (diya) stand stable on the " +
			"table surface using the items provided.",
		Setup: setupKatoriStand,
	}
}

func setupKatoriStand(layout engine.Layout, condition int) *engine.Scene {
	table := layout.Workspace.Inset(10, 5)

	katoriVisual := "katori"
	if condition == 1 {
		katoriVisual = "katori_with_contents"
	}

	katori := engine.NewObject("katori", katoriVisual, stagingSlot(layout, katoriSize, -15), katoriSize)
	diya := engine.NewObject("diya", "diya", stagingSlot(layout, diyaSize, 8), diyaSize)

	return &engine.Scene{
		Objects: []*engine.Object{katori, diya},
		Zones: []engine.Zone{
			{Name: "staging", Rect: layout.Staging, Style: engine.ZoneStaging},
			{Name: "table", Rect: table, Style: engine.ZoneTable},
		},
		FlagNames: []string{FlagKatoriInverted, FlagObjectStable},
		Rules: []engine.DropRule{
			{
				Source: "katori",
				Target: func(m *engine.Machine, r geom.Rect) bool {
					return m.Zone("table").Contains(r)
				},
				Effect: func(m *engine.Machine, o *engine.Object) {
					o.Placed = true
					m.SetFlag(FlagKatoriInverted)
					m.Log(engine.EventPlace, "Katori on Table")
				},
			},
			{
				Source: "diya",
				Pre:    func(m *engine.Machine) bool { return m.Object("katori").Placed },
				Target: func(m *engine.Machine, r geom.Rect) bool {
					return m.Object("katori").Rect().Intersects(r)
				},
				Effect: func(m *engine.Machine, o *engine.Object) {
					katori := m.Object("katori").Rect()
					o.Pos = geom.Point{X: katori.Center().X - o.Size.W/2, Y: katori.Y - o.Size.H}
					o.Placed = true
					m.SetFlag(FlagObjectStable)
					m.Log(engine.EventPlace, "Object on Katori")
				},
				Winning: true,
			},
		},
	}
}
