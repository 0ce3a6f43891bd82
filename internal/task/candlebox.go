package task

import (
	"time"

	"github.com/mehtalab/fixlab/internal/engine"
	"github.com/mehtalab/fixlab/internal/geom"
)

// Milestone flags for the candle-box task.
const (
	FlagBoxOnWall = "BoxOnWall"
	FlagBoxTacked = "BoxTacked"
)

var (
	boxSize    = geom.Size{W: 10, H: 5}
	candleSize = geom.Size{W: 4, H: 7}
	tacksSize  = geom.Size{W: 5, H: 3}
)

// CandleBox is the classic Duncker task: affix the candle to the wall using
// the tack box as a shelf. Under the treatment condition the box is shown
// already holding the tacks.
func CandleBox() Definition {
	return Definition{
		Name:    "CandleBox",
		Title:   "Candle Box",
		Timeout: 3 * time.Minute,
		Flags:   []string{FlagBoxOnWall, FlagBoxTacked},
		Instructions: "Your task is to affix the candle to the wall so it burns properly " +
			"without dripping wax on the surface below, using the items provided.",
		Setup: setupCandleBox,
	}
}

func setupCandleBox(layout engine.Layout, condition int) *engine.Scene {
	wall := geom.Rect{
		X: layout.Screen.W/2 - 15,
		Y: 2,
		W: 30,
		H: layout.Workspace.H - 6,
	}

	boxVisual := "box"
	boxPos := stagingSlot(layout, boxSize, 0)
	tacksPos := stagingSlot(layout, tacksSize, 20)
	if condition == 1 {
		// Pre-utilized: the box visibly contains the tacks.
		boxVisual = "box_with_tacks"
		tacksPos = geom.RectAt(boxPos, boxSize).Center().Sub(geom.Point{X: tacksSize.W / 2, Y: tacksSize.H / 2})
	}

	candle := engine.NewObject("candle", "candle", stagingSlot(layout, candleSize, -22), candleSize)
	box := engine.NewObject("box", boxVisual, boxPos, boxSize)
	tacks := engine.NewObject("tacks", "tacks", tacksPos, tacksSize)

	return &engine.Scene{
		Objects: []*engine.Object{candle, box, tacks},
		Zones: []engine.Zone{
			{Name: "staging", Rect: layout.Staging, Style: engine.ZoneStaging},
			{Name: "wall", Rect: wall, Style: engine.ZoneWall},
		},
		FlagNames: []string{FlagBoxOnWall, FlagBoxTacked},
		Rules: []engine.DropRule{
			{
				Source: "box",
				Target: func(m *engine.Machine, r geom.Rect) bool {
					return m.Zone("wall").Intersects(r)
				},
				Effect: func(m *engine.Machine, o *engine.Object) {
					wall := m.Zone("wall")
					o.Pos = geom.Point{
						X: wall.Center().X - o.Size.W/2,
						Y: wall.Bottom() - 2 - o.Size.H,
					}
					o.Placed = true
					m.SetFlag(FlagBoxOnWall)
					m.Log(engine.EventPlace, "Box on Wall")
				},
			},
			{
				Source: "tacks",
				Pre:    func(m *engine.Machine) bool { return m.Object("box").Placed },
				Target: func(m *engine.Machine, r geom.Rect) bool {
					return m.Object("box").Rect().Intersects(r)
				},
				Effect: func(m *engine.Machine, o *engine.Object) {
					m.Object("box").Aux = 1
					m.SetFlag(FlagBoxTacked)
					m.Remove(o)
					m.Log(engine.EventAction, "Tack Box")
				},
			},
			{
				Source: "candle",
				Pre:    func(m *engine.Machine) bool { return m.Object("box").Aux == 1 },
				Target: func(m *engine.Machine, r geom.Rect) bool {
					return m.Object("box").Rect().Intersects(r)
				},
				Effect: func(m *engine.Machine, o *engine.Object) {
					box := m.Object("box").Rect()
					o.Pos = geom.Point{X: box.Center().X - o.Size.W/2, Y: box.Y - o.Size.H}
					o.Placed = true
					m.Log(engine.EventPlace, "Candle on Box")
				},
				Winning: true,
			},
		},
	}
}
