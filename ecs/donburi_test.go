package ecs

import (
	"math"
	"testing"

	"github.com/phanxgames/bloch"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitStateChange(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []bloch.StateChangeEvent
	StateChangeEventType.Subscribe(world, func(w donburi.World, e bloch.StateChangeEvent) {
		received = append(received, e)
	})

	sink.EmitStateChange(bloch.StateChangeEvent{Theta: 1, Phi: 2, Source: bloch.SourceDrag})
	sink.EmitStateChange(bloch.StateChangeEvent{Theta: 0.5, Source: bloch.SourceProgrammatic})

	// Events are queued; process them.
	StateChangeEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Theta != 1 || received[0].Phi != 2 || received[0].Source != bloch.SourceDrag {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Theta != 0.5 || received[1].Source != bloch.SourceProgrammatic {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_FromEngine(t *testing.T) {
	world := donburi.NewWorld()
	engine := bloch.New(bloch.Config{})
	engine.SetEventSink(NewDonburiSink(world))

	var got []bloch.StateChangeEvent
	StateChangeEventType.Subscribe(world, func(w donburi.World, e bloch.StateChangeEvent) {
		got = append(got, e)
	})

	engine.SetQuantumStateVector(math.Pi/2, 0)
	events.ProcessAllEvents(world)

	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if math.Abs(got[0].Theta-math.Pi/2) > 1e-9 || got[0].Source != bloch.SourceProgrammatic {
		t.Errorf("unexpected event %+v", got[0])
	}
	if math.Abs(got[0].Point[0]-1) > 1e-9 {
		t.Errorf("point = %v, want +X", got[0].Point)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	StateChangeEventType.Subscribe(world, func(w donburi.World, e bloch.StateChangeEvent) {
		count1++
	})
	StateChangeEventType.Subscribe(world, func(w donburi.World, e bloch.StateChangeEvent) {
		count2++
	})

	sink.EmitStateChange(bloch.StateChangeEvent{})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiSink_WithSources(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world, WithSources(bloch.SourceDrag))

	var got []bloch.StateChangeEvent
	StateChangeEventType.Subscribe(world, func(w donburi.World, e bloch.StateChangeEvent) {
		got = append(got, e)
	})

	sink.EmitStateChange(bloch.StateChangeEvent{Theta: 1, Source: bloch.SourceProgrammatic})
	sink.EmitStateChange(bloch.StateChangeEvent{Theta: 2, Source: bloch.SourceDrag})
	events.ProcessAllEvents(world)

	if len(got) != 1 || got[0].Theta != 2 {
		t.Errorf("expected only the drag event, got %+v", got)
	}
}

func TestDonburiSink_WithStateEntity(t *testing.T) {
	world := donburi.NewWorld()
	qubit := NewStateEntity(world)

	initial := QubitStateComponent.Get(world.Entry(qubit))
	if initial.Z != 1 || initial.Changes != 0 {
		t.Fatalf("new entity should start at |0>, got %+v", *initial)
	}

	engine := bloch.New(bloch.Config{})
	engine.SetEventSink(NewDonburiSink(world, WithStateEntity(qubit)))
	engine.SetQuantumStateVector(math.Pi/2, math.Pi/2)

	st := QubitStateComponent.Get(world.Entry(qubit))
	if st.Changes != 1 {
		t.Errorf("Changes = %d, want 1", st.Changes)
	}
	if math.Abs(st.Theta-math.Pi/2) > 1e-9 || math.Abs(st.Phi-math.Pi/2) > 1e-9 {
		t.Errorf("angles = (%v, %v), want (π/2, π/2)", st.Theta, st.Phi)
	}
	if math.Abs(st.Y-1) > 1e-9 || math.Abs(st.Z) > 1e-9 {
		t.Errorf("point = (%v, %v, %v), want +Y", st.X, st.Y, st.Z)
	}
}

func TestDonburiSink_FilteredChangeNotMirrored(t *testing.T) {
	world := donburi.NewWorld()
	qubit := NewStateEntity(world)
	sink := NewDonburiSink(world, WithSources(bloch.SourceDrag), WithStateEntity(qubit))

	sink.EmitStateChange(bloch.StateChangeEvent{Theta: 3, Source: bloch.SourceProgrammatic})
	if st := QubitStateComponent.Get(world.Entry(qubit)); st.Changes != 0 || st.Theta != 0 {
		t.Errorf("filtered change reached the entity: %+v", *st)
	}
}

func TestDonburiSink_RemovedEntityIgnored(t *testing.T) {
	world := donburi.NewWorld()
	qubit := NewStateEntity(world)
	sink := NewDonburiSink(world, WithStateEntity(qubit))
	world.Remove(qubit)

	var n int
	StateChangeEventType.Subscribe(world, func(w donburi.World, e bloch.StateChangeEvent) { n++ })
	sink.EmitStateChange(bloch.StateChangeEvent{Theta: 1})
	events.ProcessAllEvents(world)
	if n != 1 {
		t.Errorf("event should still be published, got %d", n)
	}
}
