package engine

import "github.com/mehtalab/fixlab/internal/geom"

// Dispatcher resolves raw pointer events against a set of objects. It owns
// the z-order: objects later in the list draw (and hit-test) on top, and a
// successful grab promotes the object to the top so overlapping grabs keep
// favoring it. At most one object is dragged at a time.
type Dispatcher struct {
	objects []*Object // index 0 = bottom of stack
	dragged *Object
}

// NewDispatcher creates a dispatcher over the given objects in initial
// z-order (first = bottom).
func NewDispatcher(objects []*Object) *Dispatcher {
	return &Dispatcher{objects: append([]*Object(nil), objects...)}
}

// Objects returns the live objects in z-order, bottom first.
func (d *Dispatcher) Objects() []*Object {
	live := make([]*Object, 0, len(d.objects))
	for _, o := range d.objects {
		if !o.Removed {
			live = append(live, o)
		}
	}
	return live
}

// Dragged returns the object currently being dragged, or nil.
func (d *Dispatcher) Dragged() *Object {
	return d.dragged
}

// PointerDown runs the grab search: objects are scanned top of stack first
// and the first successful TryGrab wins. The winner is promoted to the top
// and returned. A pointer-down while a drag is already active is ignored.
func (d *Dispatcher) PointerDown(p geom.Point) *Object {
	if d.dragged != nil {
		return nil
	}
	for i := len(d.objects) - 1; i >= 0; i-- {
		o := d.objects[i]
		if !o.TryGrab(p) {
			continue
		}
		d.dragged = o
		d.promote(i)
		return o
	}
	return nil
}

// PointerMove keeps the dragged object glued to the pointer. No-op when no
// drag is active.
func (d *Dispatcher) PointerMove(p geom.Point) {
	if d.dragged != nil {
		d.dragged.FollowPointer(p)
	}
}

// PointerUp ends the active drag and returns the object that was dragged, or
// nil. Drop resolution is the state machine's job and happens before this is
// called.
func (d *Dispatcher) PointerUp() *Object {
	o := d.dragged
	if o != nil {
		o.Release()
		d.dragged = nil
	}
	return o
}

// Remove consumes an object: it is dropped from the z-order and will no
// longer be hit or drawn.
func (d *Dispatcher) Remove(obj *Object) {
	obj.Removed = true
	if d.dragged == obj {
		obj.Release()
		d.dragged = nil
	}
	for i, o := range d.objects {
		if o == obj {
			d.objects = append(d.objects[:i], d.objects[i+1:]...)
			return
		}
	}
}

func (d *Dispatcher) promote(i int) {
	o := d.objects[i]
	d.objects = append(d.objects[:i], d.objects[i+1:]...)
	d.objects = append(d.objects, o)
}
