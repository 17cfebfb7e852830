// Package notify provides a small synchronous event channel used to surface
// diagnostics (queue resolution, decode failures, poll loop progress) without
// coupling the core client to a logging framework.
package notify

import "sync"

// Level indicates the severity of an Event.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelError:
		return "error"
	}

	return "unknown"
}

// Event is a single diagnostic emitted by the client.
type Event struct {
	Level   Level
	Queue   string
	Message string
	// Err is set for error level events.
	Err error
	// Detail carries event specific context, ex. a raw message body that
	// failed to decode.
	Detail map[string]string
}

// Listener is notified of every published event.
type Listener interface {
	Notify(Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

// Notify calls f(e).
func (f ListenerFunc) Notify(e Event) {
	f(e)
}

// Notifier fans events out to registered listeners. Listeners run
// synchronously on the publishing goroutine, in registration order.
// A nil *Notifier is valid and drops every event.
type Notifier struct {
	mu        sync.RWMutex
	listeners []Listener
}

// New returns an empty Notifier.
func New() *Notifier {
	return &Notifier{}
}

// On registers a listener. Safe for concurrent use.
func (n *Notifier) On(l Listener) {
	n.mu.Lock()
	n.listeners = append(n.listeners, l)
	n.mu.Unlock()
}

// Publish delivers the event to all listeners in registration order.
func (n *Notifier) Publish(e Event) {
	if n == nil {
		return
	}

	n.mu.RLock()
	listeners := n.listeners
	n.mu.RUnlock()

	for _, l := range listeners {
		l.Notify(e)
	}
}
