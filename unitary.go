package bloch

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrNotUnitary is returned by AxisFromUnitary for matrices that are not
// unitary within unitaryTolerance.
var ErrNotUnitary = errors.New("bloch: matrix is not unitary")

const unitaryTolerance = 1e-6

// AxisFromUnitary returns the Bloch-sphere rotation performed by the 2x2
// unitary u, ignoring global phase: u = e^{iα}(cos(θ/2)·I − i·sin(θ/2)·n·σ).
// angle is in [0, π]; for the identity the axis defaults to +Z.
func AxisFromUnitary(u [2][2]complex128) (axis mgl64.Vec3, angle float64, err error) {
	if !isUnitary(u) {
		return mgl64.Vec3{}, 0, ErrNotUnitary
	}

	det := u[0][0]*u[1][1] - u[0][1]*u[1][0]
	s := cmplx.Sqrt(det)
	var v [2][2]complex128
	for i := range u {
		for j := range u[i] {
			v[i][j] = u[i][j] / s
		}
	}

	cosHalf := real(v[0][0]+v[1][1]) / 2
	n := mgl64.Vec3{
		-imag(v[0][1]+v[1][0]) / 2,
		real(v[1][0]-v[0][1]) / 2,
		imag(v[1][1]-v[0][0]) / 2,
	}
	// sqrt(det) is only defined up to sign; pick the branch with cos(θ/2) >= 0.
	if cosHalf < 0 {
		cosHalf = -cosHalf
		n = n.Mul(-1)
	}

	sinHalf := n.Len()
	if sinHalf < unitaryTolerance {
		return mgl64.Vec3{0, 0, 1}, 0, nil
	}
	return n.Mul(1 / sinHalf), 2 * math.Atan2(sinHalf, cosHalf), nil
}

// isUnitary checks u†u = I.
func isUnitary(u [2][2]complex128) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			var sum complex128
			for k := 0; k < 2; k++ {
				sum += cmplx.Conj(u[k][i]) * u[k][j]
			}
			want := complex(0, 0)
			if i == j {
				want = 1
			}
			if cmplx.IsNaN(sum) || cmplx.Abs(sum-want) > unitaryTolerance {
				return false
			}
		}
	}
	return true
}

// SetRotationFromUnitary shows the rotation performed by u on the sphere.
func (e *Engine) SetRotationFromUnitary(u [2][2]complex128) error {
	axis, angle, err := AxisFromUnitary(u)
	if err != nil {
		return err
	}
	e.SetRotationAxis(axis[0], axis[1], axis[2], angle)
	return nil
}
