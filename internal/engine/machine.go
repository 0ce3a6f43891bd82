package engine

import (
	"time"

	"github.com/mehtalab/fixlab/internal/geom"
)

// State is the machine's lifecycle state. Solved and Timeout are terminal;
// no transitions happen after either is reached.
type State int

const (
	StateRunning State = iota
	StateSolved
	StateTimeout
)

// Machine runs one task: it owns the scene, feeds resolved drag events
// through the rule table, tracks milestone flags, and finalizes a Result on
// win or timeout. All methods take the current clock reading so the machine
// never reads the wall clock itself.
type Machine struct {
	name      string
	timeout   time.Duration
	condition int
	layout    Layout
	scene     *Scene

	disp  *Dispatcher
	rec   *Recorder
	flags map[string]bool

	state       State
	start       time.Time
	now         time.Time
	lastPointer geom.Point
	result      *Result
}

// NewMachine creates a machine for one task run. start is the injected clock
// reading at task start.
func NewMachine(name string, timeout time.Duration, condition int, layout Layout, scene *Scene, start time.Time) *Machine {
	return &Machine{
		name:      name,
		timeout:   timeout,
		condition: condition,
		layout:    layout,
		scene:     scene,
		disp:      NewDispatcher(scene.Objects),
		rec:       NewRecorder(),
		flags:     make(map[string]bool),
		start:     start,
		now:       start,
	}
}

// Name returns the task name.
func (m *Machine) Name() string {
	return m.name
}

// State returns the current lifecycle state.
func (m *Machine) State() State {
	return m.state
}

// Done reports whether the run has reached a terminal state.
func (m *Machine) Done() bool {
	return m.state != StateRunning
}

// Result returns the finalized run result, or nil while still running.
func (m *Machine) Result() *Result {
	return m.result
}

// Condition returns the assigned experimental condition.
func (m *Machine) Condition() int {
	return m.condition
}

// Layout returns the shared screen geometry.
func (m *Machine) Layout() Layout {
	return m.layout
}

// Recorder exposes the run recorder for inspection.
func (m *Machine) Recorder() *Recorder {
	return m.rec
}

// Dragged returns the object currently being dragged, or nil.
func (m *Machine) Dragged() *Object {
	return m.disp.Dragged()
}

// Elapsed returns time since task start.
func (m *Machine) Elapsed(now time.Time) time.Duration {
	return now.Sub(m.start)
}

// Remaining returns the countdown value, clamped at zero.
func (m *Machine) Remaining(now time.Time) time.Duration {
	left := m.timeout - m.Elapsed(now)
	if left < 0 {
		return 0
	}
	return left
}

// Object returns the first live scene object of the given kind, or nil. Kind
// lookups track Retarget: after the hanger becomes a wire it is found under
// "wire", not "hanger".
func (m *Machine) Object(kind string) *Object {
	for _, o := range m.scene.Objects {
		if !o.Removed && o.Kind == kind {
			return o
		}
	}
	return nil
}

// Zone returns the named drop zone's rect. Unknown names return a zero rect.
func (m *Machine) Zone(name string) geom.Rect {
	for _, z := range m.scene.Zones {
		if z.Name == name {
			return z.Rect
		}
	}
	return geom.Rect{}
}

// SetFlag records a milestone.
func (m *Machine) SetFlag(name string) {
	m.flags[name] = true
}

// Flag reports whether a milestone has been reached.
func (m *Machine) Flag(name string) bool {
	return m.flags[name]
}

// Remove consumes an object (e.g. tacks used up on the box).
func (m *Machine) Remove(o *Object) {
	m.disp.Remove(o)
}

// Log appends an action-log event stamped with the elapsed time of the event
// currently being handled. Rule effects use this to record what they did.
func (m *Machine) Log(t EventType, detail string) {
	m.rec.Log(m.Elapsed(m.now), t, detail)
}

// HandlePointerDown starts a grab search. Ignored after a terminal state and
// while a drag is already active.
func (m *Machine) HandlePointerDown(p geom.Point, now time.Time) {
	if m.state != StateRunning {
		return
	}
	m.now = now
	m.lastPointer = p
	o := m.disp.PointerDown(p)
	if o == nil {
		return
	}
	m.rec.Log(m.Elapsed(now), EventDragStart, o.Kind)
	m.rec.IncrementActions()
}

// HandlePointerMove records the pointer position and keeps the dragged
// object following it.
func (m *Machine) HandlePointerMove(p geom.Point, now time.Time) {
	if m.state != StateRunning {
		return
	}
	m.now = now
	m.lastPointer = p
	m.disp.PointerMove(p)
}

// HandlePointerUp resolves the drop for the active drag at the release
// position, then clears the drag state.
func (m *Machine) HandlePointerUp(p geom.Point, now time.Time) {
	if m.state != StateRunning {
		return
	}
	m.now = now
	m.lastPointer = p
	o := m.disp.Dragged()
	if o == nil {
		return
	}
	o.FollowPointer(p)
	if m.scene.OnDragMove != nil {
		m.scene.OnDragMove(m, o)
	}
	center := o.Rect().Center()
	m.rec.LogAt(m.Elapsed(now), EventDragEnd, o.Kind, &center)
	m.rec.IncrementActions()
	m.resolveDrop(o, now)
	m.disp.PointerUp()
}

// resolveDrop walks the rule table in declaration order and applies the
// first match. An unmatched drop is penalized when the object's rect is not
// wholly inside the staging region, and the object snaps back unless the
// task's reset policy exempts it.
func (m *Machine) resolveDrop(o *Object, now time.Time) {
	for _, rule := range m.scene.Rules {
		if rule.Source != o.Kind {
			continue
		}
		if rule.Pre != nil && !rule.Pre(m) {
			continue
		}
		if !rule.Target(m, o.Rect()) {
			continue
		}
		rule.Effect(m, o)
		if rule.Winning {
			m.finish(StateSolved, OutcomeSolved, now)
		}
		return
	}

	if !m.layout.Staging.Contains(o.Rect()) {
		m.rec.IncrementIncorrectDrops()
	}
	if m.scene.OnInvalidDrop != nil {
		m.scene.OnInvalidDrop(m, o)
		return
	}
	if m.resetExempt(o) {
		return
	}
	o.ResetToInitial()
}

func (m *Machine) resetExempt(o *Object) bool {
	if m.scene.ResetExempt != nil {
		return m.scene.ResetExempt(m, o)
	}
	return o.Placed
}

// Step advances one frame: the dragged object follows the last pointer
// position, the task's drag hook runs, and the countdown is checked. The
// caller drains all input events before stepping, so the per-frame order is
// drain-events, resolve-drops, update-dragged-position, check-timeout.
func (m *Machine) Step(now time.Time) {
	if m.state != StateRunning {
		return
	}
	m.now = now
	if o := m.disp.Dragged(); o != nil {
		o.FollowPointer(m.lastPointer)
		if m.scene.OnDragMove != nil {
			m.scene.OnDragMove(m, o)
		}
	}
	if m.Remaining(now) <= 0 {
		m.finish(StateTimeout, OutcomeTimeout, now)
	}
}

func (m *Machine) finish(s State, outcome Outcome, now time.Time) {
	m.state = s
	m.result = m.rec.Finalize(m.name, m.condition, outcome, m.start, now, m.flags)
}

// Render draws the scene through the surface: zones first, then live objects
// bottom of stack to top.
func (m *Machine) Render(s Surface) {
	for _, z := range m.scene.Zones {
		s.DrawZone(z.Rect, z.Style)
	}
	for _, o := range m.disp.Objects() {
		s.DrawSprite(o.VisualID, o.Rect())
	}
}
