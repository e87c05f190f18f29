package bloch

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// StateTween animates the state vector toward target angles. Call Update(dt)
// each frame; every step goes through SetQuantumStateVector, so listeners and
// the rotation arc follow the animation.
//
// There is no global animation manager; users call Update themselves.
type StateTween struct {
	engine *Engine
	theta  *gween.Tween
	phi    *gween.Tween

	toTheta, toPhi float64
	Done           bool
}

// TweenState creates a StateTween from the current state to (theta, phi)
// over duration seconds. Phi takes the shorter way around the Z axis.
func TweenState(e *Engine, theta, phi float64, duration float32, fn ease.TweenFunc) *StateTween {
	fromTheta, fromPhi := e.Angles()
	dPhi := math.Remainder(phi-fromPhi, 2*math.Pi)
	return &StateTween{
		engine:  e,
		theta:   gween.New(float32(fromTheta), float32(theta), duration, fn),
		phi:     gween.New(float32(fromPhi), float32(fromPhi+dPhi), duration, fn),
		toTheta: theta,
		toPhi:   phi,
	}
}

// Update advances the tween by dt seconds. The final step lands exactly on
// the target angles.
func (t *StateTween) Update(dt float32) {
	if t.Done {
		return
	}
	theta, thetaDone := t.theta.Update(dt)
	phi, phiDone := t.phi.Update(dt)
	if thetaDone && phiDone {
		t.Done = true
		t.engine.SetQuantumStateVector(t.toTheta, t.toPhi)
		return
	}
	t.engine.SetQuantumStateVector(float64(theta), float64(phi))
}
