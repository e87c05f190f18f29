package bloch

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Intersector performs the ray/scene test for a pointer position in
// normalized view coordinates. It is normally backed by the host renderer.
type Intersector interface {
	Intersect(x, y float64) []Hit
}

// IntersectorFunc adapts a function to the Intersector interface.
type IntersectorFunc func(x, y float64) []Hit

// Intersect calls f(x, y).
func (f IntersectorFunc) Intersect(x, y float64) []Hit {
	return f(x, y)
}

// OrthoCamera is an orthographic camera on the +Z axis looking toward -Z.
// The view spans [-XExtent, XExtent] x [-YExtent, YExtent] in world units.
type OrthoCamera struct {
	XExtent, YExtent float64
	Z                float64
	Near, Far        float64
}

// Aspect returns the width/height ratio of the view.
func (c OrthoCamera) Aspect() float64 {
	return c.XExtent / c.YExtent
}

// ViewToWorld maps normalized view coordinates onto the world XY plane.
func (c OrthoCamera) ViewToWorld(x, y float64) (wx, wy float64) {
	return x * c.XExtent, y * c.YExtent
}

// WorldToView projects a world point to normalized view coordinates.
func (c OrthoCamera) WorldToView(p mgl64.Vec3) (x, y float64) {
	return p[0] / c.XExtent, p[1] / c.YExtent
}

// Ray returns the origin and direction of the pick ray through (x, y).
func (c OrthoCamera) Ray(x, y float64) (origin, dir mgl64.Vec3) {
	wx, wy := c.ViewToWorld(x, y)
	return mgl64.Vec3{wx, wy, c.Z}, mgl64.Vec3{0, 0, -1}
}

// raySphere returns the nearest distance along a unit-direction ray at which
// it enters a sphere, limited to [near, far].
func raySphere(origin, dir, center mgl64.Vec3, radius, near, far float64) (float64, bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	for _, t := range [2]float64{-b - sq, -b + sq} {
		if t >= near && t <= far {
			return t, true
		}
	}
	return 0, false
}

// SceneIntersector is the built-in Intersector for the Bloch scene: a unit
// sphere centred in the object frame plus a small spherical handle at the tip
// of the state vector.
type SceneIntersector struct {
	Camera       OrthoCamera
	Object       *Frame
	State        *StateVector
	HandleRadius float64
}

// Intersect returns the hits along the pick ray, nearest first.
func (s *SceneIntersector) Intersect(x, y float64) []Hit {
	origin, dir := s.Camera.Ray(x, y)
	center := s.Object.LocalToWorld(mgl64.Vec3{})

	var hits []Hit
	if t, ok := raySphere(origin, dir, center, 1, s.Camera.Near, s.Camera.Far); ok {
		hits = append(hits, Hit{ObjectID: SphereTarget, Point: origin.Add(dir.Mul(t)), Distance: t})
	}
	if s.State != nil && s.HandleRadius > 0 {
		tip := s.Object.LocalToWorld(s.State.StateVector())
		if t, ok := raySphere(origin, dir, tip, s.HandleRadius, s.Camera.Near, s.Camera.Far); ok {
			hits = append(hits, Hit{ObjectID: StateVectorTarget, Point: origin.Add(dir.Mul(t)), Distance: t})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}
