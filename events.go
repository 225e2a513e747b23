package signhands

import "time"

// EventKind identifies a playback event.
type EventKind uint8

const (
	SignStarted  EventKind = iota // a token's slot began
	SignFinished                  // a token's slot ended
	QueueDrained                  // the last slot ended and both hands are resting
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case SignStarted:
		return "started"
	case SignFinished:
		return "finished"
	case QueueDrained:
		return "drained"
	default:
		return "unknown"
	}
}

// SignEvent describes a playback transition.
type SignEvent struct {
	Kind   EventKind
	Token  string    // queued token, empty for QueueDrained
	Sign   string    // displayed text, empty for QueueDrained
	Letter bool      // token was a fingerspelling directive
	At     time.Time // wall-clock time of the transition
}

// EventSink is the interface for optional playback observers such as an
// ECS bridge. Events are emitted synchronously from Sequencer.Tick.
type EventSink interface {
	EmitEvent(event SignEvent)
}
