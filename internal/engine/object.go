// Package engine implements the generic interactive task engine: draggable
// objects, the pointer interaction dispatcher, the per-task rule-driven state
// machine, and the append-only action recorder. The engine is headless; a
// front end feeds it pointer events and clock readings and renders its scene
// through the Surface interface.
package engine

import "github.com/mehtalab/fixlab/internal/geom"

// Object is a manipulable item in a task scene. Geometry is a top-left
// position plus a size; the derived bounding rect drives all hit tests and
// drop-zone collision checks.
type Object struct {
	// Kind is the semantic role ("box", "candle", ...), unique per scene.
	// Retarget is the only mutation that changes it mid-task.
	Kind string
	// VisualID names the current sprite.
	VisualID string

	Pos  geom.Point
	Size geom.Size

	// Inert objects are rendered but never grabbable (e.g. the ring at the
	// bottom of the gap).
	Inert bool

	// Placed marks the object as positioned by a successful drop rule.
	Placed bool
	// Transformed is set once Retarget has been applied.
	Transformed bool
	// AttachedTo is a non-owning reference to another scene object.
	AttachedTo *Object
	// Aux is a small task-specific sub-state (e.g. 1 = box tacked).
	Aux int
	// Removed marks the object as consumed; it is no longer drawn or hit.
	Removed bool

	initialPos geom.Point
	dragging   bool
	grabOffset geom.Point
}

// NewObject creates an object at its initial position.
func NewObject(kind, visualID string, pos geom.Point, size geom.Size) *Object {
	return &Object{
		Kind:       kind,
		VisualID:   visualID,
		Pos:        pos,
		Size:       size,
		initialPos: pos,
	}
}

// Rect returns the current bounding rectangle.
func (o *Object) Rect() geom.Rect {
	return geom.RectAt(o.Pos, o.Size)
}

// Dragging reports whether the object is currently grabbed.
func (o *Object) Dragging() bool {
	return o.dragging
}

// TryGrab enters the dragging state iff p lies within the bounding rect and
// the object is still live. The grab offset keeps the object aligned to the
// pointer for the duration of the drag.
func (o *Object) TryGrab(p geom.Point) bool {
	if o.Removed || o.Inert || !o.Rect().ContainsPoint(p) {
		return false
	}
	o.dragging = true
	o.grabOffset = o.Pos.Sub(p)
	return true
}

// Release exits the dragging state. No-op when not dragging.
func (o *Object) Release() {
	o.dragging = false
}

// FollowPointer repositions the object relative to the pointer while
// dragging. No-op otherwise.
func (o *Object) FollowPointer(p geom.Point) {
	if !o.dragging {
		return
	}
	o.Pos = p.Add(o.grabOffset)
}

// ResetToInitial restores the initial position and clears the placement and
// aux sub-state. Used when a drop matches no rule.
func (o *Object) ResetToInitial() {
	o.Pos = o.initialPos
	o.Placed = false
	o.Aux = 0
}

// Retarget swaps the visual and size while preserving the current center
// point, and optionally the kind (pass "" to keep it). Supports the
// hanger-becomes-wire transformation.
func (o *Object) Retarget(visualID string, size geom.Size, kind string) {
	center := o.Rect().Center()
	o.VisualID = visualID
	o.Size = size
	if kind != "" {
		o.Kind = kind
	}
	o.Pos = geom.RectAt(o.Pos, o.Size).WithCenter(center).Pos()
	o.Transformed = true
}

// MoveCenterTo repositions the object so its center lands on c.
func (o *Object) MoveCenterTo(c geom.Point) {
	o.Pos = o.Rect().WithCenter(c).Pos()
}
