package bloch

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
)

// zoneSlot pairs a registered zone with its active flag. The dispatch loop
// is the only writer of active.
type zoneSlot struct {
	zone   CaptureZone
	active bool
}

// Snapshot is a read-only view of everything a renderer needs for one frame.
// Points are in the sphere's local frame; Orientation maps them to world.
type Snapshot struct {
	Orientation mgl64.Mat4
	State       mgl64.Vec3
	Theta, Phi  float64
	Hovering    bool

	AxisSet   bool
	Axis      mgl64.Vec3
	AxisAngle float64
	Marker    mgl64.Vec3
	Arc       []mgl64.Vec3
	ArcEnd    mgl64.Vec3
}

// arcSegments is the polyline resolution of Snapshot.Arc.
const arcSegments = 48

// Engine owns the Bloch sphere interaction state: the capture zones, the
// event queue, the state vector and the rotation axis. It is single-threaded;
// all methods must be called from the goroutine driving the render loop.
type Engine struct {
	cfg    Config
	log    *logrus.Entry
	camera OrthoCamera

	object *Frame
	euler  mgl64.Vec3

	state      *StateVector
	axis       *RotationAxis
	background *DragCaptureZone

	zones       []zoneSlot
	queue       eventQueue
	intersector Intersector
	hovering    bool

	onStateChange StateChangeFunc
	sink          EventSink
	runner        *ScriptRunner

	// OnRedraw, if set, is called at the end of Render with the frame's
	// snapshot. Hosts hand it to their renderer.
	OnRedraw func(Snapshot)
}

// New creates an engine. The state-vector zone is registered first and the
// background view-rotation zone second, so a press on the handle always wins.
func New(cfg Config) *Engine {
	cfg = cfg.withDefaults()
	e := &Engine{
		cfg: cfg,
		log: newLogger(cfg),
		camera: OrthoCamera{
			XExtent: cfg.XExtent,
			YExtent: cfg.YExtent,
			Z:       cfg.CameraZ,
			Near:    cfg.Near,
			Far:     cfg.Far,
		},
		object: NewFrame("object", nil),
		state:  NewStateVector(),
	}
	e.euler = cfg.InitialRotation
	e.object.SetEuler(e.euler[0], e.euler[1], e.euler[2])
	e.axis = NewRotationAxis(e.object)

	if cfg.Intersector != nil {
		e.intersector = cfg.Intersector
	} else {
		e.intersector = &SceneIntersector{
			Camera:       e.camera,
			Object:       e.object,
			State:        e.state,
			HandleRadius: cfg.HandleRadius,
		}
	}

	e.state.OnDrag(e.dragStateVector)
	e.AddCaptureZone(e.state.Zone())

	e.background = NewDragCaptureZone(BackgroundTarget)
	e.background.OnDrag(func(ev UserEvent, _ IntersectionMap) {
		s := e.cfg.Sensitivity
		e.rotate(ev.DeltaY*s, 0, ev.DeltaX*s)
	})
	e.AddCaptureZone(e.background)

	return e
}

// AddCaptureZone registers a zone after the existing ones but ahead of the
// background zone, which always stays last as the catch-all. Earlier zones
// win when several claim the same press.
func (e *Engine) AddCaptureZone(zone CaptureZone) {
	slot := zoneSlot{zone: zone}
	n := len(e.zones)
	if e.background != nil && n > 0 && e.zones[n-1].zone == CaptureZone(e.background) {
		e.zones = append(e.zones, zoneSlot{})
		copy(e.zones[n:], e.zones[n-1:])
		e.zones[n-1] = slot
		return
	}
	e.zones = append(e.zones, slot)
}

// ActiveZone returns the zone that currently owns the gesture, or nil.
func (e *Engine) ActiveZone() CaptureZone {
	if i := e.activeIndex(); i >= 0 {
		return e.zones[i].zone
	}
	return nil
}

func (e *Engine) activeIndex() int {
	for i := range e.zones {
		if e.zones[i].active {
			return i
		}
	}
	return -1
}

// --- Frame loop ---

// Render advances the script runner, drains the event queue in arrival order
// and then hands a snapshot to OnRedraw.
func (e *Engine) Render() {
	if e.runner != nil {
		e.runner.step(e)
	}

	var stats drainStats
	var t0 time.Time
	if e.cfg.Debug {
		t0 = time.Now()
	}

	for {
		ev, ok := e.queue.pop()
		if !ok {
			break
		}
		stats.events++
		e.dispatch(ev, &stats)
	}

	if e.cfg.Debug {
		stats.drainTime = time.Since(t0)
		e.debugLog(stats)
	}

	if e.OnRedraw != nil {
		e.OnRedraw(e.Snapshot())
	}
}

// dispatch routes one event. An active zone sees the event alone; if it lets
// go, the other zones are offered the event in registration order and the
// first to claim it becomes active.
func (e *Engine) dispatch(ev UserEvent, stats *drainStats) {
	hits := NewIntersectionMap(e.intersector.Intersect(ev.X, ev.Y))
	e.updateHover(hits)

	active := e.activeIndex()
	if active >= 0 {
		if e.zones[active].zone.Process(true, ev, hits) {
			return
		}
		e.zones[active].active = false
		stats.releases++
		e.log.WithFields(logrus.Fields{"zone": active, "event": ev.Type}).Debug("zone released")
	}

	for i := range e.zones {
		if i == active {
			continue
		}
		if e.zones[i].zone.Process(false, ev, hits) {
			e.zones[i].active = true
			stats.claims++
			e.log.WithFields(logrus.Fields{"zone": i, "event": ev.Type}).Debug("zone claimed")
			return
		}
	}
}

// updateHover fires the state vector's hover callbacks when the handle
// starts or stops being hit.
func (e *Engine) updateHover(hits IntersectionMap) {
	over := hits.Has(StateVectorTarget)
	if over == e.hovering {
		return
	}
	e.hovering = over
	e.state.fireHover(over)
}

// --- Drag handlers ---

// dragStateVector moves the state to the sphere hit point, or, when the
// pointer is off the sphere, to the direction of the pointer projected onto
// the plane through the sphere's centre.
func (e *Engine) dragStateVector(ev UserEvent, hits IntersectionMap) {
	if hit, ok := hits[SphereTarget]; ok {
		e.setStateVectorToPoint(normalize3(e.object.WorldToLocal(hit.Point)), SourceDrag)
		return
	}
	p := e.object.WorldToLocal(mgl64.Vec3{ev.X, ev.Y / e.camera.Aspect(), 0})
	e.setStateVectorToPoint(normalize3(p), SourceDrag)
}

// rotate adds XYZ Euler deltas to the view orientation.
func (e *Engine) rotate(x, y, z float64) {
	e.euler = e.euler.Add(mgl64.Vec3{x, y, z})
	e.object.SetEuler(e.euler[0], e.euler[1], e.euler[2])
}

// setStateVectorToPoint is the single path for every state change.
func (e *Engine) setStateVectorToPoint(p mgl64.Vec3, src ChangeSource) {
	if p == (mgl64.Vec3{}) {
		e.log.Debug("ignoring zero state point")
		return
	}
	theta, phi := e.state.SetStateVectorToPoint(p)
	point := e.state.StateVector()
	e.axis.SetArc(point)

	if e.onStateChange != nil {
		e.onStateChange(theta, phi)
	}
	if e.sink != nil {
		e.sink.EmitStateChange(StateChangeEvent{Theta: theta, Phi: phi, Point: point, Source: src})
	}
}

// --- Host API ---

// SetQuantumStateVector sets the state from spherical angles.
func (e *Engine) SetQuantumStateVector(theta, phi float64) {
	if !finite(theta, phi) {
		e.log.WithFields(logrus.Fields{"theta": theta, "phi": phi}).Debug("ignoring non-finite angles")
		return
	}
	e.setStateVectorToPoint(AnglesToPoint(theta, phi), SourceProgrammatic)
}

// SetRotationAxis sets the axis direction and angle and rebuilds the arc
// against the current state.
func (e *Engine) SetRotationAxis(x, y, z, angle float64) {
	if !finite(x, y, z, angle) {
		e.log.Debug("ignoring non-finite rotation axis")
		return
	}
	e.axis.SetDirection(mgl64.Vec3{x, y, z}, angle)
	if _, ok := e.axis.Direction(); !ok {
		e.log.Debug("rotation axis has zero length")
	}
	e.axis.SetArc(e.state.StateVector())
}

// OnStateChange sets the listener called with (theta, phi) after every state
// change, replacing any previous one.
func (e *Engine) OnStateChange(fn StateChangeFunc) {
	e.onStateChange = fn
}

// SetEventSink sets the optional ECS bridge.
func (e *Engine) SetEventSink(sink EventSink) {
	e.sink = sink
}

// StateVector returns the state vector.
func (e *Engine) StateVector() *StateVector {
	return e.state
}

// Angles returns the current (theta, phi).
func (e *Engine) Angles() (theta, phi float64) {
	return e.state.Angles()
}

// RotationAxis returns the rotation-axis indicator.
func (e *Engine) RotationAxis() *RotationAxis {
	return e.axis
}

// Object returns the frame the sphere, state vector and axis live in.
func (e *Engine) Object() *Frame {
	return e.object
}

// Camera returns the engine's camera.
func (e *Engine) Camera() OrthoCamera {
	return e.camera
}

// Orientation returns the view orientation as XYZ Euler angles.
func (e *Engine) Orientation() mgl64.Vec3 {
	return e.euler
}

// SetOrientation replaces the view orientation.
func (e *Engine) SetOrientation(x, y, z float64) {
	e.euler = mgl64.Vec3{x, y, z}
	e.object.SetEuler(x, y, z)
}

// Snapshot captures the current render state.
func (e *Engine) Snapshot() Snapshot {
	theta, phi := e.state.Angles()
	s := Snapshot{
		Orientation: e.object.Matrix(),
		State:       e.state.StateVector(),
		Theta:       theta,
		Phi:         phi,
		Hovering:    e.hovering,
		AxisAngle:   e.axis.Angle(),
		Marker:      e.axis.Marker(),
	}
	s.Axis, s.AxisSet = e.axis.Direction()
	if arc := e.axis.Arc(); arc != nil {
		s.Arc = arc.Points(arcSegments)
		s.ArcEnd = e.axis.ArcEnd()
	}
	return s
}
