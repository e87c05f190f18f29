package bloch

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// degenerateEpsilon is the length below which a vector is treated as zero.
const degenerateEpsilon = 1e-12

// normalize3 returns v scaled to unit length. The zero vector is returned
// unchanged rather than producing NaN components.
func normalize3(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < degenerateEpsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// normalize2 is the 2D counterpart of normalize3.
func normalize2(v mgl64.Vec2) mgl64.Vec2 {
	l := v.Len()
	if l < degenerateEpsilon {
		return mgl64.Vec2{}
	}
	return v.Mul(1 / l)
}

// projectOnAxis returns the orthogonal projection of p onto the line through
// the origin along dir. dir must be unit length.
func projectOnAxis(p, dir mgl64.Vec3) mgl64.Vec3 {
	return dir.Mul(p.Dot(dir))
}

// polarAngle returns the azimuth of v in (-π, π]: the phase of the complex
// number x+iy. The zero vector has angle 0.
func polarAngle(v mgl64.Vec2) float64 {
	if v[0] == 0 && v[1] == 0 {
		return 0
	}
	return math.Atan2(v[1], v[0])
}

// finite reports whether every argument is neither NaN nor infinite.
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// clampUnit clamps v to [-1, 1].
func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
