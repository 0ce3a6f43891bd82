package engine

import "github.com/mehtalab/fixlab/internal/geom"

// Layout is the shared screen geometry handed to task setup: the full screen,
// the workspace above the staging strip, and the staging/inventory strip
// where objects originate and where drops are never penalized.
type Layout struct {
	Screen    geom.Rect
	Workspace geom.Rect
	Staging   geom.Rect
}

// NewLayout splits a screen of the given size into workspace and staging
// regions. stagingHeight is the height of the bottom strip.
func NewLayout(width, height, stagingHeight int) Layout {
	return Layout{
		Screen:    geom.Rect{W: width, H: height},
		Workspace: geom.Rect{W: width, H: height - stagingHeight},
		Staging:   geom.Rect{Y: height - stagingHeight, W: width, H: stagingHeight},
	}
}

// ZoneStyle selects how a zone is rendered. The engine attaches no meaning to
// it beyond passing it through to the surface.
type ZoneStyle string

const (
	ZoneStaging  ZoneStyle = "staging"
	ZoneWall     ZoneStyle = "wall"
	ZoneTable    ZoneStyle = "table"
	ZoneGap      ZoneStyle = "gap"
	ZonePlatform ZoneStyle = "platform"
)

// Zone is a named region tested against dropped objects and drawn behind
// them.
type Zone struct {
	Name  string
	Rect  geom.Rect
	Style ZoneStyle
}

// DropRule is one entry in a task's ordered rule table. On drop, rules are
// evaluated in declaration order and the first rule whose source kind,
// precondition and target test all hold is applied.
type DropRule struct {
	// Source is the dragged object's kind this rule applies to.
	Source string
	// Pre gates the rule on the state of other objects. Nil means always.
	Pre func(m *Machine) bool
	// Target is the geometric test against the dropped object's rect.
	Target func(m *Machine, r geom.Rect) bool
	// Effect mutates object state and appends log entries.
	Effect func(m *Machine, o *Object)
	// Winning ends the task with OutcomeSolved immediately after Effect.
	Winning bool
}

// Scene is the per-task configuration produced by a task's setup function:
// the object set, drop zones, rule table, and the policy hooks the generic
// invalid-drop handling consults.
type Scene struct {
	// Objects in initial z-order, bottom first. Inert objects are rendered
	// and targetable but never grabbed.
	Objects []*Object
	Zones   []Zone
	Rules   []DropRule

	// FlagNames declares the milestone flags this task may set.
	FlagNames []string

	// ResetExempt reports whether an object that just failed a drop should
	// keep its position instead of snapping back. Nil defaults to exempting
	// objects already placed by a rule.
	ResetExempt func(m *Machine, o *Object) bool

	// OnInvalidDrop, when set, replaces the default reset step of the
	// invalid-drop policy (the penalty count is applied either way).
	OnInvalidDrop func(m *Machine, o *Object)

	// OnDragMove runs each frame while a drag is active, after the dragged
	// object has followed the pointer (e.g. an attached ring tracking the
	// wire).
	OnDragMove func(m *Machine, o *Object)
}

// Surface is the narrow rendering contract the engine draws through, once
// per frame: zones first, then objects in z-order.
type Surface interface {
	DrawZone(r geom.Rect, style ZoneStyle)
	DrawSprite(visualID string, r geom.Rect)
}
