package task

import (
	"time"

	"github.com/mehtalab/fixlab/internal/engine"
	"github.com/mehtalab/fixlab/internal/geom"
)

// Milestone flags for the bridge-support task.
const (
	FlagBookPlaced   = "BookPlaced"
	FlagBridgePlaced = "BridgePlaced"
	FlagCarCrossed   = "CarCrossed"
)

// Aux value marking the car as standing on the bridge.
const carOnBridge = 1

var (
	bookSize  = geom.Size{W: 10, H: 3}
	rulerSize = geom.Size{W: 30, H: 2}
	carSize   = geom.Size{W: 6, H: 3}
)

// BridgeSupport asks the participant to get a toy car across the gap between
// two platforms: the book props up the middle, the ruler spans the gap as the
// bridge deck, then the car drives across. Under the treatment condition the
// book starts open (in use for reading) and closes when placed.
func BridgeSupport() Definition {
	return Definition{
		Name:    "BridgeSupport",
		Title:   "Bridge Support",
		Timeout: 4 * time.Minute,
		Flags:   []string{FlagBookPlaced, FlagBridgePlaced, FlagCarCrossed},
		Instructions: "Your task is to get the toy car across the gap between the two " +
			"platforms using the items provided.",
		Setup: setupBridgeSupport,
	}
}

func setupBridgeSupport(layout engine.Layout, condition int) *engine.Scene {
	platformY := layout.Workspace.Center().Y + 3
	platformH := layout.Workspace.H - platformY
	left := geom.Rect{X: 5, Y: platformY, W: 30, H: platformH}
	gap := geom.Rect{X: left.Right(), Y: platformY, W: 15, H: platformH}
	right := geom.Rect{X: gap.Right(), Y: platformY, W: 30, H: platformH}

	bookVisual := "book_closed"
	if condition == 1 {
		bookVisual = "book_open"
	}
	book := engine.NewObject("book", bookVisual, stagingSlot(layout, bookSize, -25), bookSize)
	ruler := engine.NewObject("ruler", "ruler", stagingSlot(layout, rulerSize, 0), rulerSize)
	car := engine.NewObject("car", "toy_car", stagingSlot(layout, carSize, 25), carSize)

	return &engine.Scene{
		Objects: []*engine.Object{book, ruler, car},
		Zones: []engine.Zone{
			{Name: "staging", Rect: layout.Staging, Style: engine.ZoneStaging},
			{Name: "left", Rect: left, Style: engine.ZonePlatform},
			{Name: "gap", Rect: gap, Style: engine.ZoneGap},
			{Name: "right", Rect: right, Style: engine.ZonePlatform},
		},
		FlagNames: []string{FlagBookPlaced, FlagBridgePlaced, FlagCarCrossed},
		Rules: []engine.DropRule{
			{
				Source: "book",
				Target: func(m *engine.Machine, r geom.Rect) bool {
					return m.Zone("gap").ContainsPoint(r.Center())
				},
				Effect: func(m *engine.Machine, o *engine.Object) {
					gap := m.Zone("gap")
					// Placed, the book stands on end in the gap, closed and
					// reaching up to platform height so it can carry the
					// ruler. Closing also undoes the open-book framing of
					// the treatment condition.
					o.Retarget("book_upright", geom.Size{W: 6, H: gap.H}, "")
					o.Pos = geom.Point{X: gap.Center().X - o.Size.W/2, Y: gap.Bottom() - o.Size.H}
					o.Placed = true
					m.SetFlag(FlagBookPlaced)
					m.Log(engine.EventPlace, "Book in Gap")
				},
			},
			{
				Source: "ruler",
				Pre:    func(m *engine.Machine) bool { return m.Object("book").Placed },
				Target: func(m *engine.Machine, r geom.Rect) bool {
					onBook := m.Object("book").Rect().Intersects(r)
					dy := r.Center().Y - m.Zone("left").Y
					return onBook && dy >= -2 && dy <= 2
				},
				Effect: func(m *engine.Machine, o *engine.Object) {
					// Center the deck over the gap so it rests on both
					// platform edges.
					o.Pos = geom.Point{
						X: m.Zone("gap").Center().X - o.Size.W/2,
						Y: m.Zone("left").Y - o.Size.H/2,
					}
					o.Placed = true
					m.SetFlag(FlagBridgePlaced)
					m.Log(engine.EventPlace, "Ruler as Bridge")
				},
			},
			{
				Source: "car",
				Pre:    func(m *engine.Machine) bool { return m.Object("ruler").Placed },
				Target: func(m *engine.Machine, r geom.Rect) bool {
					return m.Object("ruler").Rect().Intersects(r) && m.Zone("left").Intersects(r)
				},
				Effect: func(m *engine.Machine, o *engine.Object) {
					ruler := m.Object("ruler").Rect()
					o.Pos = geom.Point{
						X: m.Zone("left").Right() - 1,
						Y: ruler.Center().Y - o.Size.H/2,
					}
					o.Placed = true
					o.Aux = carOnBridge
					m.Log(engine.EventPlace, "Car on Bridge Start")
				},
			},
			{
				Source: "car",
				Pre:    func(m *engine.Machine) bool { return m.Object("car").Aux == carOnBridge },
				Target: func(m *engine.Machine, r geom.Rect) bool {
					return m.Zone("right").Intersects(r)
				},
				Effect: func(m *engine.Machine, o *engine.Object) {
					m.SetFlag(FlagCarCrossed)
					m.Log(engine.EventMove, "Car Across Bridge")
				},
				Winning: true,
			},
		},
		OnInvalidDrop: func(m *engine.Machine, o *engine.Object) {
			// A car that falls off the bridge loses its footing entirely;
			// other objects keep their spot once correctly placed.
			if o.Kind == "car" && o.Aux == carOnBridge {
				o.ResetToInitial()
				return
			}
			if !o.Placed {
				o.ResetToInitial()
			}
		},
	}
}
