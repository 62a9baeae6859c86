// Package event provides a lightweight notification system for chat state.
//
// Design principles:
// - Events are small notifications describing what changed
// - Each event type is a separate Go type for type safety
// - Clients call HTTP APIs to fetch the full data after a notification
// - The Emitter is constructed at the composition root and injected; there
//   is no process-wide singleton
package event

import "sync"

// Event is the interface all event types must implement.
type Event interface {
	// EventName returns the unique name for this event type (e.g., "conversation.updated")
	EventName() string
}

// Listener is a callback function for handling events.
type Listener func(Event)

// Emitter manages event subscriptions and dispatching.
type Emitter struct {
	mu           sync.RWMutex
	nextID       int
	listeners    map[string]map[int]Listener // eventName -> id -> listener
	allListeners map[int]Listener            // listeners for all events
}

// NewEmitter creates a new event emitter.
func NewEmitter() *Emitter {
	return &Emitter{
		listeners:    make(map[string]map[int]Listener),
		allListeners: make(map[int]Listener),
	}
}

// On subscribes to a specific event type.
// Returns an unsubscribe function.
func (e *Emitter) On(eventName string, fn Listener) func() {
	e.mu.Lock()
	id := e.nextID
	e.nextID++
	if e.listeners[eventName] == nil {
		e.listeners[eventName] = make(map[int]Listener)
	}
	e.listeners[eventName][id] = fn
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.listeners[eventName], id)
	}
}

// OnAny subscribes to all events.
func (e *Emitter) OnAny(fn Listener) func() {
	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.allListeners[id] = fn
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.allListeners, id)
	}
}

// Emit dispatches an event to all matching listeners.
func (e *Emitter) Emit(ev Event) {
	e.mu.RLock()
	// Copy listeners to avoid holding the lock during callbacks
	specific := make([]Listener, 0, len(e.listeners[ev.EventName()]))
	for _, fn := range e.listeners[ev.EventName()] {
		specific = append(specific, fn)
	}
	all := make([]Listener, 0, len(e.allListeners))
	for _, fn := range e.allListeners {
		all = append(all, fn)
	}
	e.mu.RUnlock()

	for _, fn := range specific {
		fn(ev)
	}
	for _, fn := range all {
		fn(ev)
	}
}
