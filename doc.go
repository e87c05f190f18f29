// Package bloch is the interaction and geometry engine behind an interactive
// Bloch sphere: a 3D sphere whose surface point represents the state of a
// single qubit.
//
// The engine does not draw anything. A host feeds it pointer events, calls
// [Engine.Render] once per frame, and draws from the [Snapshot] it produces.
// The examples/interactive program is a complete host built on [Ebitengine].
//
// # Quick start
//
//	engine := bloch.New(bloch.DefaultConfig())
//	engine.OnStateChange(func(theta, phi float64) {
//		fmt.Printf("θ=%.3f φ=%.3f\n", theta, phi)
//	})
//	engine.SetRotationAxis(1, 0, 0, math.Pi/2)
//
//	// each frame:
//	engine.OnPointerMove(x, y, dx, dy)
//	engine.Render()
//
// # Capture zones
//
// Pointer events are queued by [Engine.OnPointerDown], [Engine.OnPointerUp]
// and [Engine.OnPointerMove] and drained by Render in arrival order. Each
// event is offered to the registered [CaptureZone] values. While one zone
// is active it alone receives events. Otherwise zones are tried in
// registration order and the first to claim the event becomes active. The engine
// registers the state-vector handle first and a background zone (view
// rotation) second.
//
// # Geometry
//
// The state point lives in the local frame of the sphere. [PointToAngles]
// and [AnglesToPoint] convert between the point and (theta, phi). The
// [RotationAxis] places a marker at the point of the axis nearest to the
// state and an [Arc] around the axis starting at the state.
//
// Coordinate frames are explicit [Frame] values rather than a scene graph.
//
// [Ebitengine]: https://ebitengine.org
package bloch
