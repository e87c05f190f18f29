package bloch

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Frame is a rigid coordinate frame: a rotation followed by a translation,
// expressed relative to an optional parent frame. Frames replace the implicit
// matrix propagation of a scene graph with explicit conversions.
//
// Composition order:
//
//	parent = Rotation * local + Position
type Frame struct {
	Name     string
	Parent   *Frame
	Position mgl64.Vec3
	Rotation mgl64.Mat3
}

// NewFrame creates an identity frame attached to parent (which may be nil).
func NewFrame(name string, parent *Frame) *Frame {
	return &Frame{Name: name, Parent: parent, Rotation: mgl64.Ident3()}
}

// --- Parent-relative conversion ---

// LocalToParent converts a point from this frame into its parent's frame.
func (f *Frame) LocalToParent(p mgl64.Vec3) mgl64.Vec3 {
	return f.Rotation.Mul3x1(p).Add(f.Position)
}

// ParentToLocal converts a point from the parent's frame into this frame.
// The rotation is orthonormal, so its inverse is its transpose.
func (f *Frame) ParentToLocal(p mgl64.Vec3) mgl64.Vec3 {
	return f.Rotation.Transpose().Mul3x1(p.Sub(f.Position))
}

// --- World conversion ---

// LocalToWorld converts a local point to world space by walking up the
// parent chain.
func (f *Frame) LocalToWorld(p mgl64.Vec3) mgl64.Vec3 {
	for n := f; n != nil; n = n.Parent {
		p = n.LocalToParent(p)
	}
	return p
}

// WorldToLocal converts a world-space point into this frame.
func (f *Frame) WorldToLocal(p mgl64.Vec3) mgl64.Vec3 {
	if f.Parent != nil {
		p = f.Parent.WorldToLocal(p)
	}
	return f.ParentToLocal(p)
}

// DirectionToWorld rotates a local direction into world space. Translations
// are ignored.
func (f *Frame) DirectionToWorld(d mgl64.Vec3) mgl64.Vec3 {
	for n := f; n != nil; n = n.Parent {
		d = n.Rotation.Mul3x1(d)
	}
	return d
}

// DirectionToLocal rotates a world-space direction into this frame.
func (f *Frame) DirectionToLocal(d mgl64.Vec3) mgl64.Vec3 {
	if f.Parent != nil {
		d = f.Parent.DirectionToLocal(d)
	}
	return f.Rotation.Transpose().Mul3x1(d)
}

// Matrix returns the homogeneous local-to-world matrix.
func (f *Frame) Matrix() mgl64.Mat4 {
	m := mgl64.Ident4()
	for n := f; n != nil; n = n.Parent {
		local := n.Rotation.Mat4()
		local.SetCol(3, n.Position.Vec4(1))
		m = local.Mul4(m)
	}
	return m
}

// --- Orientation ---

// LookAt rotates the frame so that its local +Z axis points along dir, given
// in parent coordinates. A zero dir leaves the rotation unchanged.
func (f *Frame) LookAt(dir mgl64.Vec3) {
	z := normalize3(dir)
	if z == (mgl64.Vec3{}) {
		return
	}
	up := mgl64.Vec3{0, 1, 0}
	if math.Abs(z.Dot(up)) > 0.999 {
		up = mgl64.Vec3{1, 0, 0}
	}
	x := normalize3(up.Cross(z))
	y := z.Cross(x)
	f.Rotation = mgl64.Mat3FromCols(x, y, z)
}

// RotateZ rotates the frame about its own local Z axis.
func (f *Frame) RotateZ(angle float64) {
	f.Rotation = f.Rotation.Mul3(mgl64.Rotate3DZ(angle))
}

// SetEuler sets the rotation from Euler angles in XYZ order (Rx * Ry * Rz).
func (f *Frame) SetEuler(x, y, z float64) {
	f.Rotation = mgl64.Rotate3DX(x).Mul3(mgl64.Rotate3DY(y)).Mul3(mgl64.Rotate3DZ(z))
}
