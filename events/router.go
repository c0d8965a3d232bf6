package events

// Handler processes specific event types within a context T
type Handler[T any] interface {
	// HandleEvent processes a single event
	// Called synchronously from Emit
	HandleEvent(ctx T, event Event)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []EventType
}

// HandlerFunc adapts a function to Handler for the given types
type HandlerFunc[T any] struct {
	Types []EventType
	Fn    func(ctx T, event Event)
}

func (h HandlerFunc[T]) HandleEvent(ctx T, event Event) { h.Fn(ctx, event) }
func (h HandlerFunc[T]) EventTypes() []EventType       { return h.Types }

type entry[T any] struct {
	id      uint32
	handler Handler[T]
}

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch on the caller's goroutine
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Context T is passed to handlers (typically the emitting widget)
type Router[T any] struct {
	handlers map[EventType][]entry[T]
	nextID   uint32
}

// Registration removes a handler previously added to a Router
type Registration struct {
	remove func()
}

// Remove unregisters the handler; safe to call more than once
func (r Registration) Remove() {
	if r.remove != nil {
		r.remove()
	}
}

// NewRouter creates an empty router
func NewRouter[T any]() *Router[T] {
	return &Router[T]{
		handlers: make(map[EventType][]entry[T]),
	}
}

// Register adds a handler for its declared event types
func (r *Router[T]) Register(handler Handler[T]) Registration {
	r.nextID++
	id := r.nextID
	types := handler.EventTypes()
	for _, t := range types {
		r.handlers[t] = append(r.handlers[t], entry[T]{id: id, handler: handler})
	}
	return Registration{remove: func() {
		for _, t := range types {
			r.handlers[t] = removeEntry(r.handlers[t], id)
		}
	}}
}

// On registers fn for a single event type
func (r *Router[T]) On(t EventType, fn func(ctx T, event Event)) Registration {
	return r.Register(HandlerFunc[T]{Types: []EventType{t}, Fn: fn})
}

// Emit routes ev to every handler registered for its type
// Handlers added or removed during dispatch take effect on the next Emit
func (r *Router[T]) Emit(ctx T, ev Event) {
	handlers := r.handlers[ev.Type]
	if len(handlers) == 0 {
		return
	}
	snapshot := make([]entry[T], len(handlers))
	copy(snapshot, handlers)
	for _, e := range snapshot {
		e.handler.HandleEvent(ctx, ev)
	}
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *Router[T]) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}

func removeEntry[T any](s []entry[T], id uint32) []entry[T] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = entry[T]{}
			return s[:len(s)-1]
		}
	}
	return s
}
