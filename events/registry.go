package events

import (
	"fmt"
	"strings"
)

var typeNames = [eventTypeCount]string{
	EventPressed:         "pressed",
	EventValueChanged:    "valueChanged",
	EventDraggedInside:   "draggedInside",
	EventDraggedOutside:  "draggedOutside",
	EventReleasedInside:  "releasedInside",
	EventReleasedOutside: "releasedOutside",
	EventCancelled:       "cancelled",
}

var nameToType = func() map[string]EventType {
	m := make(map[string]EventType, len(typeNames))
	for i, name := range typeNames {
		m[strings.ToLower(name)] = EventType(i)
	}
	return m
}()

// TypeName returns the name for an EventType
func TypeName(t EventType) string {
	if t < 0 || t >= eventTypeCount {
		return fmt.Sprintf("EventType(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType resolves a notification name, case-insensitive
func ParseType(name string) (EventType, bool) {
	t, ok := nameToType[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// AllTypes returns every notification type in declaration order
func AllTypes() []EventType {
	out := make([]EventType, 0, eventTypeCount)
	for t := EventType(0); t < eventTypeCount; t++ {
		out = append(out, t)
	}
	return out
}
