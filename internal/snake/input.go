package snake

import "gridsnake/internal/core"

// EventKind distinguishes raw backend events.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventQuit
)

// Key is a backend-neutral key code. Backends translate their own codes and
// report anything else as KeyNone.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Event is one entry of a backend's pending event queue.
type Event struct {
	Kind EventKind
	Key  Key
}

// KeyDownEvent builds a key press event.
func KeyDownEvent(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// QuitEvent builds a quit request.
func QuitEvent() Event { return Event{Kind: EventQuit} }

// Direction returns the heading a key asks for.
func (k Key) Direction() (core.Direction, bool) {
	switch k {
	case KeyUp:
		return core.Up, true
	case KeyDown:
		return core.Down, true
	case KeyLeft:
		return core.Left, true
	case KeyRight:
		return core.Right, true
	default:
		return 0, false
	}
}

// Steering turns direction requests into the heading used by the next tick.
// A request for the exact opposite of the committed heading is ignored.
type Steering struct {
	committed core.Direction
	intent    core.Direction
}

// NewSteering starts with both the committed and the requested heading set to initial.
func NewSteering(initial core.Direction) *Steering {
	return &Steering{committed: initial, intent: initial}
}

// Request records d as the next heading unless it reverses the committed one.
func (s *Steering) Request(d core.Direction) bool {
	if d == s.committed.Opposite() {
		return false
	}
	s.intent = d
	return true
}

// Commit applies the requested heading and returns it.
func (s *Steering) Commit() core.Direction {
	s.committed = s.intent
	return s.committed
}

// Committed returns the heading applied by the most recent tick.
func (s *Steering) Committed() core.Direction { return s.committed }

// Intent returns the heading the next tick will apply.
func (s *Steering) Intent() core.Direction { return s.intent }

// Apply feeds a batch of events into the steering state and reports whether a
// quit was requested. Quit does not interrupt the batch.
func (s *Steering) Apply(events []Event) (quit bool) {
	for _, ev := range events {
		switch ev.Kind {
		case EventQuit:
			quit = true
		case EventKeyDown:
			if d, ok := ev.Key.Direction(); ok {
				s.Request(d)
			}
		}
	}
	return quit
}
