// Package ecs provides ECS adapters for bloch's state-change events.
//
// The primary adapter is [NewDonburiSink], which bridges bloch state changes
// (drags, programmatic sets, tweens) into a [Donburi] world as typed events.
// Subscribe to [StateChangeEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	engine.SetEventSink(sink)
//
// Options narrow the stream to user drags and mirror the latest state onto
// an entity that systems can query like any other component:
//
//	qubit := ecs.NewStateEntity(world)
//	engine.SetEventSink(ecs.NewDonburiSink(world,
//		ecs.WithSources(bloch.SourceDrag),
//		ecs.WithStateEntity(qubit)))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
