package bloch

import "github.com/sirupsen/logrus"

// eventQueue is a FIFO of pointer events. Producers append; Render drains it
// to empty every frame, so no event survives across frames.
type eventQueue struct {
	events []UserEvent
}

func (q *eventQueue) push(ev UserEvent) {
	q.events = append(q.events, ev)
}

// pop removes and returns the oldest event.
func (q *eventQueue) pop() (UserEvent, bool) {
	if len(q.events) == 0 {
		return UserEvent{}, false
	}
	ev := q.events[0]
	copy(q.events, q.events[1:])
	q.events = q.events[:len(q.events)-1]
	return ev, true
}

func (q *eventQueue) len() int {
	return len(q.events)
}

// --- Producers ---

// OnPointerDown queues a press at normalized view coordinates (x, y).
func (e *Engine) OnPointerDown(x, y float64) {
	e.enqueue(UserEvent{Type: EventPointerDown, X: x, Y: y})
}

// OnPointerUp queues a release at normalized view coordinates (x, y).
func (e *Engine) OnPointerUp(x, y float64) {
	e.enqueue(UserEvent{Type: EventPointerUp, X: x, Y: y})
}

// OnPointerMove queues a move to (x, y). deltaX and deltaY are the movement
// since the previous sample, in host units (pixels for a mouse).
func (e *Engine) OnPointerMove(x, y, deltaX, deltaY float64) {
	e.enqueue(UserEvent{Type: EventPointerMove, X: x, Y: y, DeltaX: deltaX, DeltaY: deltaY})
}

// QueueDrag queues a full drag sequence: a press at (fromX, fromY), steps
// linearly interpolated moves ending at (toX, toY), and a release there.
// Move deltas are expressed in view units.
func (e *Engine) QueueDrag(fromX, fromY, toX, toY float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	e.OnPointerDown(fromX, fromY)
	lastX, lastY := fromX, fromY
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		e.OnPointerMove(x, y, x-lastX, y-lastY)
		lastX, lastY = x, y
	}
	e.OnPointerUp(toX, toY)
}

// Pending returns the number of queued events not yet dispatched.
func (e *Engine) Pending() int {
	return e.queue.len()
}

// enqueue sanitizes and appends an event. Non-finite input is dropped and
// coordinates outside the view are clamped to [-1, 1].
func (e *Engine) enqueue(ev UserEvent) {
	if !finite(ev.X, ev.Y, ev.DeltaX, ev.DeltaY) {
		e.log.WithFields(logrus.Fields{
			"event": ev.Type,
			"x":     ev.X,
			"y":     ev.Y,
		}).Debug("dropping non-finite pointer event")
		return
	}
	ev.X = clampUnit(ev.X)
	ev.Y = clampUnit(ev.Y)
	e.queue.push(ev)
}
