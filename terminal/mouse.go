package terminal

import "github.com/gdamore/tcell/v2"

// MouseAction represents the gesture stage a mouse event maps to
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionDrag
	MouseActionRelease
)

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionDrag:
		return "Drag"
	case MouseActionRelease:
		return "Release"
	default:
		return "None"
	}
}

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// Gesture turns tcell's button-state snapshots into press/drag/release
// tcell reports held buttons on every event, so transitions are derived from the previous state
type Gesture struct {
	tracking bool
	// swallow drops held-button events after a cancel until the button is released
	swallow bool
}

// Translate classifies ev against the current gesture
// Only the primary button drives gestures; wheel and other buttons are ignored
func (g *Gesture) Translate(ev *tcell.EventMouse) MouseAction {
	buttons := ev.Buttons()
	if buttons&wheelMask != 0 {
		return MouseActionNone
	}
	held := buttons&tcell.Button1 != 0

	if g.swallow {
		g.swallow = held
		return MouseActionNone
	}

	switch {
	case held && !g.tracking:
		g.tracking = true
		return MouseActionPress
	case held:
		return MouseActionDrag
	case g.tracking:
		g.tracking = false
		return MouseActionRelease
	default:
		return MouseActionNone
	}
}

// Tracking reports whether the primary button is held
func (g *Gesture) Tracking() bool {
	return g.tracking
}

// Cancel drops the current gesture, returning true if one was active
// Events for the still-held button are ignored until it is released
func (g *Gesture) Cancel() bool {
	was := g.tracking
	g.tracking = false
	g.swallow = g.swallow || was
	return was
}
