package bloch

import "github.com/go-gl/mathgl/mgl64"

// BackgroundTarget is the wildcard target. A DragCaptureZone that lists it
// claims every press, hit or not.
const BackgroundTarget = "background"

// --- Intersections ---

// Hit is a single ray/object intersection. Point is in world space.
type Hit struct {
	ObjectID string
	Point    mgl64.Vec3
	Distance float64
}

// IntersectionMap maps an object identifier to its nearest hit for the event
// being dispatched. It is rebuilt for every event.
type IntersectionMap map[string]Hit

// NewIntersectionMap builds a map from a hit list, keeping the nearest hit
// for each object.
func NewIntersectionMap(hits []Hit) IntersectionMap {
	m := make(IntersectionMap, len(hits))
	for _, h := range hits {
		if prev, ok := m[h.ObjectID]; ok && prev.Distance <= h.Distance {
			continue
		}
		m[h.ObjectID] = h
	}
	return m
}

// Has reports whether id was hit.
func (m IntersectionMap) Has(id string) bool {
	_, ok := m[id]
	return ok
}

// --- Capture zones ---

// DragFunc receives move events while its zone owns the gesture.
type DragFunc func(ev UserEvent, hits IntersectionMap)

// CaptureZone claims the pointer stream exclusively while a gesture is in
// progress. Process is called with the zone's current active state and
// returns whether the zone is active after handling ev.
type CaptureZone interface {
	Process(isActive bool, ev UserEvent, hits IntersectionMap) bool
	OnDrag(fn DragFunc)
}

// DragCaptureZone activates on a press over any of its targets and forwards
// subsequent moves to its drag callback. Any other event releases it.
type DragCaptureZone struct {
	targets    map[string]struct{}
	background bool
	drag       DragFunc
}

// NewDragCaptureZone creates a zone claiming presses over the given object
// identifiers. Pass BackgroundTarget to claim presses anywhere.
func NewDragCaptureZone(targets ...string) *DragCaptureZone {
	z := &DragCaptureZone{targets: make(map[string]struct{}, len(targets))}
	for _, t := range targets {
		if t == BackgroundTarget {
			z.background = true
		}
		z.targets[t] = struct{}{}
	}
	return z
}

// OnDrag sets the drag callback, replacing any previous one. nil clears it.
func (z *DragCaptureZone) OnDrag(fn DragFunc) {
	z.drag = fn
}

// Process runs the zone state machine for one event.
//
//	inactive + press over a target -> active (no callback)
//	active + move                  -> callback, stays active
//	anything else                  -> inactive
//
// Release is deliberately not matched: it falls through to the last branch.
func (z *DragCaptureZone) Process(isActive bool, ev UserEvent, hits IntersectionMap) bool {
	if !isActive && ev.Type == EventPointerDown && z.isTargeted(hits) {
		return true
	} else if isActive && ev.Type == EventPointerMove {
		if z.drag != nil {
			z.drag(ev, hits)
		}
		return true
	}
	return false
}

func (z *DragCaptureZone) isTargeted(hits IntersectionMap) bool {
	if z.background {
		return true
	}
	for id := range z.targets {
		if hits.Has(id) {
			return true
		}
	}
	return false
}
