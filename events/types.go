// @focus: #event { types }
package events

import "github.com/lixenwraith/star-rating/rating"

// EventType identifies a widget notification
type EventType int

const (
	// EventPressed signals a pointer press on the widget
	// Trigger: every press, whether or not the value changed | Payload: press point
	EventPressed EventType = iota

	// EventValueChanged signals the primary integration point
	// Trigger: effective value change (press, drag inside, release inside)
	// Consumer: host title, audio chime | Payload: Value, Previous, Symbol
	EventValueChanged

	// EventDraggedInside signals pointer motion within bounds while tracking
	// Payload: move point
	EventDraggedInside

	// EventDraggedOutside signals pointer motion outside bounds while tracking
	// No state mutation | Payload: move point
	EventDraggedOutside

	// EventReleasedInside signals gesture end within bounds
	// Payload: release point
	EventReleasedInside

	// EventReleasedOutside signals gesture end outside bounds or with no release point
	// Payload: release point when available
	EventReleasedOutside

	// EventCancelled signals the gesture was cancelled by the host
	// No hit test, no state mutation | Payload: nil
	EventCancelled

	eventTypeCount
)

// Event is a notification delivered to listeners
// Value always carries the widget value at emission time
type Event struct {
	Type     EventType
	Value    int
	Previous int
	Symbol   int // index of the symbol that triggered a change, 0 otherwise
	Point    rating.Point
	HasPoint bool
}

// String returns the registered notification name
func (t EventType) String() string {
	return TypeName(t)
}
