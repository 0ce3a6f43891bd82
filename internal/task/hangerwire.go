package task

import (
	"fmt"
	"time"

	"github.com/mehtalab/fixlab/internal/engine"
	"github.com/mehtalab/fixlab/internal/geom"
)

// Milestone flags for the hanger-wire task.
const (
	FlagHangerTransformed = "HangerTransformed"
	FlagRingRetrieved     = "RingRetrieved"
)

var (
	hangerSize = geom.Size{W: 12, H: 6}
	wireSize   = geom.Size{W: 2, H: 10}
	ringSize   = geom.Size{W: 3, H: 2}
	clothSize  = geom.Size{W: 6, H: 3}
)

// HangerWire asks the participant to retrieve a ring from a narrow gap. The
// hanger must first be unbent into a wire (a Retarget in engine terms), the
// wire hooked onto the ring, and the ring pulled clear of the gap. Under the
// treatment condition the hanger is shown holding a shirt.
func HangerWire() Definition {
	return Definition{
		Name:    "HangerWire",
		Title:   "Hanger Wire",
		Timeout: 4 * time.Minute,
		Flags:   []string{FlagHangerTransformed, FlagRingRetrieved},
		Instructions: "Your task is to retrieve the small ring that has fallen into the " +
			"narrow gap shown on the screen using the items provided.",
		Setup: setupHangerWire,
	}
}

func setupHangerWire(layout engine.Layout, condition int) *engine.Scene {
	gap := geom.Rect{X: layout.Screen.W/2 - 4, Y: 6, W: 8, H: 20}

	ring := engine.NewObject("ring", "ring", geom.Point{
		X: gap.Center().X - ringSize.W/2,
		Y: gap.Bottom() - ringSize.H - 1,
	}, ringSize)
	ring.Inert = true

	hangerVisual := "hanger"
	if condition == 1 {
		hangerVisual = "hanger_with_shirt"
	}
	hanger := engine.NewObject("hanger", hangerVisual, stagingSlot(layout, hangerSize, -25), hangerSize)
	cloth := engine.NewObject("cloth", "distractor_cloth", stagingSlot(layout, clothSize, -5), clothSize)

	ringAttached := func(m *engine.Machine) bool {
		wire := m.Object("wire")
		return wire != nil && wire.AttachedTo != nil
	}

	return &engine.Scene{
		Objects: []*engine.Object{ring, hanger, cloth},
		Zones: []engine.Zone{
			{Name: "staging", Rect: layout.Staging, Style: engine.ZoneStaging},
			{Name: "gap", Rect: gap, Style: engine.ZoneGap},
		},
		FlagNames: []string{FlagHangerTransformed, FlagRingRetrieved},
		Rules: []engine.DropRule{
			{
				Source: "hanger",
				Target: func(m *engine.Machine, r geom.Rect) bool {
					return m.Layout().Workspace.Contains(r)
				},
				Effect: func(m *engine.Machine, o *engine.Object) {
					o.Retarget("wire_piece", wireSize, "wire")
					m.SetFlag(FlagHangerTransformed)
					m.Log(engine.EventTransform, "Hanger to Wire")
				},
			},
			{
				Source: "wire",
				Target: func(m *engine.Machine, r geom.Rect) bool {
					ring := m.Object("ring")
					return ring.Rect().Intersects(r) && m.Zone("gap").Contains(ring.Rect())
				},
				Effect: func(m *engine.Machine, o *engine.Object) {
					ring := m.Object("ring")
					o.AttachedTo = ring
					ring.AttachedTo = o
					m.Log(engine.EventAttach, "Wire to Ring")
				},
			},
			{
				Source: "wire",
				Pre:    ringAttached,
				Target: func(m *engine.Machine, r geom.Rect) bool {
					return !m.Zone("gap").ContainsPoint(r.Center())
				},
				Effect: func(m *engine.Machine, o *engine.Object) {
					m.SetFlag(FlagRingRetrieved)
					m.Log(engine.EventRetrieve, "Ring with Wire")
				},
				Winning: true,
			},
			{
				// A wire parked outside the gap is a legitimate move, not a
				// penalty: log where it ended up and leave it there.
				Source: "wire",
				Target: func(m *engine.Machine, r geom.Rect) bool {
					return !m.Zone("gap").Contains(r)
				},
				Effect: func(m *engine.Machine, o *engine.Object) {
					m.Log(engine.EventPlace, fmt.Sprintf("Wire at %s", o.Rect().Center()))
				},
			},
		},
		OnDragMove: func(m *engine.Machine, o *engine.Object) {
			// An attached ring hangs from the wire's lower end.
			if o.Kind == "wire" && o.AttachedTo != nil {
				r := o.Rect()
				o.AttachedTo.MoveCenterTo(geom.Point{
					X: r.Center().X,
					Y: r.Bottom() - o.AttachedTo.Size.H/2,
				})
			}
		},
	}
}
