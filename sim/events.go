package sim

// EventType identifies something the audio or telemetry layers care about.
type EventType uint8

const (
	EventThrow EventType = iota
	EventStrike
	EventKick
	EventVictory
)

// String returns the event name used in logs.
func (t EventType) String() string {
	switch t {
	case EventThrow:
		return "throw"
	case EventStrike:
		return "strike"
	case EventKick:
		return "kick"
	case EventVictory:
		return "victory"
	}
	return "unknown"
}

// Event is emitted synchronously from inside the frame that caused it.
type Event struct {
	Type  EventType
	Frame uint64

	Frog int    // frog index for strike and kick, -1 otherwise
	Ball uint64 // ball serial for throw and strike
}

// Listener receives world events. Listeners must not block.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

// OnEvent implements Listener.
func (f ListenerFunc) OnEvent(e Event) { f(e) }
