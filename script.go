package bloch

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Z      float64 `json:"z,omitempty"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Steps  int     `json:"steps,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Theta  float64 `json:"theta,omitempty"`
	Phi    float64 `json:"phi,omitempty"`
	Angle  float64 `json:"angle,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a gesture script, one step per frame, for demos and
// automated checks. Attach it to an Engine via SetScriptRunner.
//
// Actions: press, release, move (x, y, dx, dy), drag (fromX, fromY, toX,
// toY, steps), wait (frames), state (theta, phi) and axis (x, y, z, angle).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON gesture script and returns a ScriptRunner ready
// to be attached to an Engine via SetScriptRunner.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "release", "move", "drag", "wait", "state", "axis":
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a ScriptRunner. Its step method is called from
// Render before the queue is drained each frame.
func (e *Engine) SetScriptRunner(runner *ScriptRunner) {
	e.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(e *Engine) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		e.OnPointerDown(st.X, st.Y)
	case "release":
		e.OnPointerUp(st.X, st.Y)
	case "move":
		e.OnPointerMove(st.X, st.Y, st.DX, st.DY)
	case "drag":
		e.QueueDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Steps)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "state":
		e.SetQuantumStateVector(st.Theta, st.Phi)
	case "axis":
		e.SetRotationAxis(st.X, st.Y, st.Z, st.Angle)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
