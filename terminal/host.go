package terminal

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/star-rating/widget"
)

// FrameInterval is the redraw cadence while a flare runs (~60 FPS)
const FrameInterval = 16 * time.Millisecond

const hintText = "click or drag to rate, q to quit"

// Host owns the screen and drives one widget
type Host struct {
	screen  tcell.Screen
	widget  *widget.Widget
	layout  Layout
	gesture Gesture
	style   tcell.Style
	title   string
	dirty   bool
	flaring bool // widget was animating at the previous frame
}

// NewHost wires a widget to an initialised screen
func NewHost(screen tcell.Screen, w *widget.Widget, layout Layout) *Host {
	return &Host{
		screen: screen,
		widget: w,
		layout: layout,
		style:  tcell.StyleDefault,
		dirty:  true,
	}
}

// SetTitle replaces the title line shown above the widget
func (h *Host) SetTitle(title string) {
	h.title = title
	h.dirty = true
}

// Title returns the current title line
func (h *Host) Title() string {
	return h.title
}

// Layout returns the cell placement of the widget
func (h *Host) Layout() Layout {
	return h.layout
}

// HandleEvent routes one tcell event; returns false to quit
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyCtrlC,
			ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			h.cancel()
			return false
		case ev.Key() == tcell.KeyEscape:
			if !h.cancel() {
				return false
			}
		}

	case *tcell.EventMouse:
		h.handleMouse(ev)

	case *tcell.EventResize:
		h.cancel()
		h.screen.Sync()
		h.dirty = true

	case *tcell.EventFocus:
		if !ev.Focused {
			h.cancel()
		}
	}
	return true
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := h.layout.ToLocal(x, y)

	switch h.gesture.Translate(ev) {
	case MouseActionPress:
		// Presses outside the widget never start a gesture
		if !h.widget.Bounds().Contains(p) {
			h.gesture.Cancel()
			return
		}
		if !h.widget.PointerDown(p) {
			h.gesture.Cancel()
		}
	case MouseActionDrag:
		if !h.widget.PointerMove(p) {
			h.gesture.Cancel()
		}
	case MouseActionRelease:
		h.widget.PointerUp(&p)
	default:
		return
	}
	h.dirty = true
}

// cancel aborts an in-progress gesture, returning true if there was one
func (h *Host) cancel() bool {
	if !h.gesture.Cancel() {
		return false
	}
	h.widget.PointerCancel()
	h.dirty = true
	return true
}

// Draw renders title, widget and hint, then flushes
func (h *Host) Draw() {
	h.screen.Clear()

	l := h.layout
	DrawText(h.screen, l.OriginX, l.OriginY-2, h.title, h.style.Bold(true))
	DrawWidget(h.screen, h.widget, l, h.style)

	_, rows := l.CellSize(h.widget.IntrinsicSize())
	DrawText(h.screen, l.OriginX, l.OriginY+rows+1, hintText, h.style.Dim(true))

	h.screen.Show()
	h.dirty = false
}

// Run polls input and redraws until the user quits or ctx is done
func (h *Host) Run(ctx context.Context) error {
	h.screen.EnableMouse(tcell.MouseDragEvents)
	h.screen.EnableFocus()
	defer h.screen.DisableMouse()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !h.HandleEvent(ev) {
				log.Printf("host: quit requested")
				return nil
			}
			if h.dirty {
				h.Draw()
			}

		case <-ticker.C:
			// One extra frame after the flare ends settles symbols at identity scale
			animating := h.widget.Tick()
			if animating || h.flaring || h.dirty {
				h.Draw()
			}
			h.flaring = animating
		}
	}
}
