// Package ecs provides ECS adapters for bloch.
package ecs

import (
	"github.com/phanxgames/bloch"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StateChangeEventType is the Donburi event type for bloch state changes.
// Subscribe to this in your ECS systems to receive the new angles and point.
var StateChangeEventType = events.NewEventType[bloch.StateChangeEvent]()

// QubitState holds the latest state of a Bloch sphere on an entity.
type QubitState struct {
	Theta, Phi float64
	X, Y, Z    float64
	// Changes counts the state changes mirrored so far.
	Changes int
}

// QubitStateComponent is the component a sink mirrors state changes into.
var QubitStateComponent = donburi.NewComponentType[QubitState]()

// Option configures a sink created by NewDonburiSink.
type Option func(*donburiSink)

// WithSources limits the sink to state changes from the given sources.
// Without it every change is forwarded.
func WithSources(sources ...bloch.ChangeSource) Option {
	return func(s *donburiSink) {
		s.sources = make(map[bloch.ChangeSource]bool, len(sources))
		for _, src := range sources {
			s.sources[src] = true
		}
	}
}

// WithStateEntity also writes every forwarded change into the
// QubitStateComponent of entity. Entities without the component are skipped.
func WithStateEntity(entity donburi.Entity) Option {
	return func(s *donburiSink) {
		s.entity = entity
		s.mirror = true
	}
}

// NewStateEntity creates an entity carrying a QubitStateComponent at |0>.
func NewStateEntity(world donburi.World) donburi.Entity {
	entity := world.Create(QubitStateComponent)
	QubitStateComponent.SetValue(world.Entry(entity), QubitState{Z: 1})
	return entity
}

type donburiSink struct {
	world   donburi.World
	sources map[bloch.ChangeSource]bool
	entity  donburi.Entity
	mirror  bool
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// State changes are published to StateChangeEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World, opts ...Option) bloch.EventSink {
	s := &donburiSink{world: world}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *donburiSink) EmitStateChange(event bloch.StateChangeEvent) {
	if s.sources != nil && !s.sources[event.Source] {
		return
	}
	if s.mirror && s.world.Valid(s.entity) {
		entry := s.world.Entry(s.entity)
		if entry.HasComponent(QubitStateComponent) {
			st := QubitStateComponent.Get(entry)
			st.Theta, st.Phi = event.Theta, event.Phi
			st.X, st.Y, st.Z = event.Point[0], event.Point[1], event.Point[2]
			st.Changes++
		}
	}
	StateChangeEventType.Publish(s.world, event)
}
