package bloch

import "github.com/go-gl/mathgl/mgl64"

// EventType identifies a kind of pointer event.
type EventType uint8

const (
	EventPointerDown EventType = iota // fires when the pointer button is pressed
	EventPointerUp                    // fires when the pointer button is released
	EventPointerMove                  // fires when the pointer moves
)

// String returns the event type name used in logs.
func (t EventType) String() string {
	switch t {
	case EventPointerDown:
		return "pointerdown"
	case EventPointerUp:
		return "pointerup"
	case EventPointerMove:
		return "pointermove"
	default:
		return "unknown"
	}
}

// UserEvent is a single queued pointer event. X and Y are normalized view
// coordinates in [-1, 1] with +Y up. DeltaX and DeltaY are only meaningful
// for EventPointerMove and carry the movement since the previous sample.
type UserEvent struct {
	Type   EventType
	X, Y   float64
	DeltaX float64
	DeltaY float64
}

// ChangeSource records what caused a state change.
type ChangeSource uint8

const (
	SourceDrag         ChangeSource = iota // user dragged the state vector
	SourceProgrammatic                     // SetQuantumStateVector or a tween
)

// StateChangeEvent describes a change of the quantum state. Point is in the
// sphere's local frame.
type StateChangeEvent struct {
	Theta  float64
	Phi    float64
	Point  mgl64.Vec3
	Source ChangeSource
}

// StateChangeFunc is the listener invoked with the derived angles after every
// state change.
type StateChangeFunc func(theta, phi float64)

// EventSink is the interface for optional ECS integration.
// When set on an Engine, state changes are forwarded to the sink.
type EventSink interface {
	EmitStateChange(event StateChangeEvent)
}

// Reserved object identifiers reported by the built-in intersector.
const (
	SphereTarget      = "sphere"
	StateVectorTarget = "statevector"
)
