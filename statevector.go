package bloch

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// StateVector owns the canonical state point on the unit sphere and the
// capture zone that lets the user drag it. The point is expressed in the
// sphere's local frame, with |0> at +Z.
type StateVector struct {
	point mgl64.Vec3
	theta float64
	phi   float64
	zone  *DragCaptureZone

	hoverIn  func()
	hoverOut func()
}

// NewStateVector creates a state vector at |0> = (0, 0, 1). Its capture zone
// targets the StateVectorTarget handle.
func NewStateVector() *StateVector {
	return &StateVector{
		point: mgl64.Vec3{0, 0, 1},
		zone:  NewDragCaptureZone(StateVectorTarget),
	}
}

// PointToAngles returns the spherical angles of p: theta in [0, π] measured
// from +Z and phi in [0, 2π) measured from +X toward +Y. p need not be unit
// length. The zero vector maps to (0, 0).
func PointToAngles(p mgl64.Vec3) (theta, phi float64) {
	p = normalize3(p)
	if p == (mgl64.Vec3{}) {
		return 0, 0
	}
	theta = math.Acos(clampUnit(p[2]))
	phi = math.Atan2(p[1], p[0])
	if phi < 0 {
		phi += 2 * math.Pi
	}
	// -ε wraps to exactly 2π after rounding.
	if phi >= 2*math.Pi {
		phi = 0
	}
	return theta, phi
}

// AnglesToPoint is the inverse of PointToAngles.
func AnglesToPoint(theta, phi float64) mgl64.Vec3 {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	return mgl64.Vec3{st * cp, st * sp, ct}
}

// SetStateVectorToPoint normalizes p, stores it as the new state and returns
// the derived angles. A zero p is ignored and the current angles returned.
func (s *StateVector) SetStateVectorToPoint(p mgl64.Vec3) (theta, phi float64) {
	n := normalize3(p)
	if n == (mgl64.Vec3{}) {
		return s.theta, s.phi
	}
	s.point = n
	s.theta, s.phi = PointToAngles(n)
	return s.theta, s.phi
}

// StateVector returns the current state point.
func (s *StateVector) StateVector() mgl64.Vec3 {
	return s.point
}

// Angles returns the angles derived from the current state point.
func (s *StateVector) Angles() (theta, phi float64) {
	return s.theta, s.phi
}

// Zone returns the capture zone owned by the state vector.
func (s *StateVector) Zone() *DragCaptureZone {
	return s.zone
}

// OnDrag sets the drag callback of the state vector's zone.
func (s *StateVector) OnDrag(fn DragFunc) {
	s.zone.OnDrag(fn)
}

// OnHoverIn sets the callback fired when the pointer starts hitting the handle.
func (s *StateVector) OnHoverIn(fn func()) {
	s.hoverIn = fn
}

// OnHoverOut sets the callback fired when the pointer stops hitting the handle.
func (s *StateVector) OnHoverOut(fn func()) {
	s.hoverOut = fn
}

func (s *StateVector) fireHover(in bool) {
	if in && s.hoverIn != nil {
		s.hoverIn()
	} else if !in && s.hoverOut != nil {
		s.hoverOut()
	}
}
