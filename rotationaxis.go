package bloch

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"
)

// Arc is the rotation indicator: a circular arc of Radius spanning Angle
// radians, drawn in the XY plane of its own frame starting at local +X.
type Arc struct {
	Radius float64
	Angle  float64
	Frame  *Frame
}

// Points returns segments+1 points along the arc in the parent frame of the
// arc (the sphere's local frame).
func (a *Arc) Points(segments int) []mgl64.Vec3 {
	if segments < 1 {
		segments = 1
	}
	pts := make([]mgl64.Vec3, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := a.Angle * float64(i) / float64(segments)
		s, c := math.Sincos(t)
		pts = append(pts, a.Frame.LocalToParent(mgl64.Vec3{a.Radius * c, a.Radius * s, 0}))
	}
	return pts
}

// RotationAxis depicts a rotation about an axis through the origin: the axis
// direction, a marker at the point of the axis closest to the state, and an
// arc sweeping the rotation angle from the state around the axis.
//
// All geometry is rebuilt from scratch by SetArc, so repeated calls never
// accumulate error.
type RotationAxis struct {
	parent    *Frame
	direction mgl64.Vec3
	hasDir    bool
	angle     float64
	marker    mgl64.Vec3
	arc       *Arc
	point     mgl64.Vec3
}

// NewRotationAxis creates an axis whose geometry lives in parent's frame.
func NewRotationAxis(parent *Frame) *RotationAxis {
	return &RotationAxis{parent: parent}
}

// SetDirection sets the axis direction and the rotation angle in radians.
// dir is normalized; a zero dir leaves the axis unset.
func (r *RotationAxis) SetDirection(dir mgl64.Vec3, angle float64) {
	n := normalize3(dir)
	r.hasDir = n != (mgl64.Vec3{})
	r.direction = n
	r.angle = angle
}

// SetArc places the marker and rebuilds the arc for the given state point.
// Without a direction only the point is remembered and any arc is dropped.
func (r *RotationAxis) SetArc(point mgl64.Vec3) {
	r.point = point
	if !r.hasDir {
		r.marker = mgl64.Vec3{}
		r.arc = nil
		return
	}

	cosineAngle := point.Dot(r.direction)
	closest := r.direction.Mul(cosineAngle)
	r.marker = closest

	distance := point.Sub(closest).Len()
	arc := &Arc{
		Radius: distance,
		Angle:  r.angle,
		Frame:  NewFrame("arc", r.parent),
	}
	arc.Frame.Position = closest
	arc.Frame.LookAt(r.direction)

	local := arc.Frame.ParentToLocal(point)
	projected := normalize2(mgl64.Vec2{local[0], local[1]})
	arc.Frame.RotateZ(polarAngle(projected))

	r.arc = arc
}

// Direction returns the unit axis direction and whether one has been set.
func (r *RotationAxis) Direction() (mgl64.Vec3, bool) {
	return r.direction, r.hasDir
}

// Angle returns the rotation angle in radians.
func (r *RotationAxis) Angle() float64 {
	return r.angle
}

// Marker returns the point on the axis closest to the last state point.
func (r *RotationAxis) Marker() mgl64.Vec3 {
	return r.marker
}

// Arc returns the current arc, or nil before the first SetArc with a
// direction.
func (r *RotationAxis) Arc() *Arc {
	return r.arc
}

// ArcEnd returns the state point rotated by the axis angle about the axis:
// where the arc ends. Without a direction the point is returned unchanged.
func (r *RotationAxis) ArcEnd() mgl64.Vec3 {
	if !r.hasDir {
		return r.point
	}
	s, c := math.Sincos(r.angle / 2)
	q := quat.Number{
		Real: c,
		Imag: r.direction[0] * s,
		Jmag: r.direction[1] * s,
		Kmag: r.direction[2] * s,
	}
	p := quat.Number{Imag: r.point[0], Jmag: r.point[1], Kmag: r.point[2]}
	pp := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return mgl64.Vec3{pp.Imag, pp.Jmag, pp.Kmag}
}
