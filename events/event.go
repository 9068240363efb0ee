package events

// Event is the interface that all domain events must implement.
type Event interface {
	Name() string
}

// EventHandler is a callback invoked for each emitted event.
type EventHandler func(event Event)
