package widget

import "github.com/lixenwraith/star-rating/rating"

// Control is the pointer lifecycle a host drives
// A gesture is one PointerDown, zero or more PointerMove, then exactly one of PointerUp or PointerCancel
type Control interface {
	// PointerDown starts tracking; returns true to keep receiving moves
	PointerDown(p rating.Point) bool
	// PointerMove continues tracking; returns true to keep receiving moves
	PointerMove(p rating.Point) bool
	// PointerUp ends the gesture; nil when the host lost the release position
	PointerUp(p *rating.Point)
	// PointerCancel aborts the gesture
	PointerCancel()
	// Bounds is the hit area in local units
	Bounds() rating.Rect
}

// Phase identifies a tracking lifecycle stage
type Phase uint8

const (
	PhaseBegin Phase = iota
	PhaseContinue
	PhaseEnd
	PhaseCancel
)

// String returns human-readable phase name
func (p Phase) String() string {
	switch p {
	case PhaseBegin:
		return "Begin"
	case PhaseContinue:
		return "Continue"
	case PhaseEnd:
		return "End"
	case PhaseCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// Tracker is the default tracking behaviour every Control entry point completes with
// Widgets defer complete() so it runs regardless of outcome
type Tracker struct {
	tracking bool
	last     rating.Point
	hasLast  bool
	onDone   func(Phase)
}

// Tracking reports whether a gesture is in progress
func (t *Tracker) Tracking() bool {
	return t.tracking
}

// LastPoint returns the most recent tracked position
func (t *Tracker) LastPoint() (rating.Point, bool) {
	return t.last, t.hasLast
}

func (t *Tracker) complete(phase Phase, p *rating.Point) {
	switch phase {
	case PhaseBegin, PhaseContinue:
		t.tracking = true
	case PhaseEnd, PhaseCancel:
		t.tracking = false
	}
	if p != nil {
		t.last = *p
		t.hasLast = true
	}
	if t.onDone != nil {
		t.onDone(phase)
	}
}
