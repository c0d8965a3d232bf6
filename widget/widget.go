package widget

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/star-rating/animation"
	"github.com/lixenwraith/star-rating/events"
	"github.com/lixenwraith/star-rating/rating"
)

// Widget is the interactive star selector
type Widget struct {
	Tracker

	state   *rating.State
	symbols []rating.Symbol
	router  *events.Router[*Widget]
	anim    *animation.Queue

	// Construction options
	initial int
	geom    rating.Geometry
	palette Palette
	clock   animation.TimeProvider
	flare   animation.FlareConfig
	policy  NotifyPolicy
}

var _ Control = (*Widget)(nil)

// New creates a widget at rating 1 unless WithValue says otherwise
func New(opts ...Option) *Widget {
	w := &Widget{
		initial: 1,
		geom:    rating.DefaultGeometry,
		palette: DefaultPalette,
		flare:   animation.DefaultFlare,
		policy:  NotifyOnChange,
	}
	for _, opt := range opts {
		opt(w)
	}

	w.state = rating.NewStateWithValue(w.geom, w.initial)
	w.router = events.NewRouter[*Widget]()
	w.anim = animation.NewQueue(w.clock)
	w.Setup()
	return w
}

// Setup rebuilds the whole symbol set from the current value
// Idempotent; the only path by which a value change reaches the visuals
func (w *Widget) Setup() {
	w.symbols = rating.Symbols(w.state.Value(), w.state.Geometry())
}

// Value returns the selected rating in [1, Count]
func (w *Widget) Value() int {
	return w.state.Value()
}

// Count returns the number of symbols
func (w *Widget) Count() int {
	return w.state.Count()
}

// Symbols returns a copy of the current symbol set
func (w *Widget) Symbols() []rating.Symbol {
	out := make([]rating.Symbol, len(w.symbols))
	copy(out, w.symbols)
	return out
}

// SymbolColor returns the palette color for a symbol
func (w *Widget) SymbolColor(sym rating.Symbol) tcell.Color {
	return w.palette.Color(sym.Active)
}

// Palette returns the widget colors
func (w *Widget) Palette() Palette {
	return w.palette
}

// Geometry returns the symbol layout
func (w *Widget) Geometry() rating.Geometry {
	return w.state.Geometry()
}

// IntrinsicSize returns the natural content size in local units
func (w *Widget) IntrinsicSize() rating.Size {
	return w.state.Geometry().IntrinsicSize()
}

// Bounds returns the hit area anchored at the local origin
func (w *Widget) Bounds() rating.Rect {
	return w.state.Geometry().Bounds()
}

// Flare returns the selection pulse configuration
func (w *Widget) Flare() animation.FlareConfig {
	return w.flare
}

// Scale returns the current flare scale of the 1-based symbol index
func (w *Widget) Scale(index int) float64 {
	return w.anim.Scale(index)
}

// Animating reports whether any flare is still running
func (w *Widget) Animating() bool {
	return w.anim.Active()
}

// Tick retires finished animation steps; returns true while animating
func (w *Widget) Tick() bool {
	return w.anim.Active()
}

// On registers a listener for one notification type
func (w *Widget) On(t events.EventType, fn func(w *Widget, ev events.Event)) events.Registration {
	return w.router.On(t, fn)
}

// Register adds a multi-type handler
func (w *Widget) Register(h events.Handler[*Widget]) events.Registration {
	return w.router.Register(h)
}

// PointerDown handles a press: select the hit symbol, then always report pressed
func (w *Widget) PointerDown(p rating.Point) bool {
	defer w.complete(PhaseBegin, &p)

	if tr, changed := w.update(p); changed {
		w.emitValue(tr, p)
	}
	w.emit(events.EventPressed, &p)
	return true
}

// PointerMove handles drag: select while inside bounds, only report while outside
func (w *Widget) PointerMove(p rating.Point) bool {
	defer w.complete(PhaseContinue, &p)

	if !w.Bounds().Contains(p) {
		w.emit(events.EventDraggedOutside, &p)
		return true
	}

	tr, changed := w.update(p)
	if changed || w.policy == NotifyEveryTick {
		w.emitValue(tr, p)
	}
	w.emit(events.EventDraggedInside, &p)
	return true
}

// PointerUp handles release; a nil or out-of-bounds point changes nothing
func (w *Widget) PointerUp(p *rating.Point) {
	defer w.complete(PhaseEnd, p)

	if p == nil || !w.Bounds().Contains(*p) {
		w.emit(events.EventReleasedOutside, p)
		return
	}

	tr, changed := w.update(*p)
	if changed || w.policy == NotifyEveryTick {
		w.emitValue(tr, *p)
	}
	w.emit(events.EventReleasedInside, p)
}

// PointerCancel reports cancellation; running flares finish on their own
func (w *Widget) PointerCancel() {
	defer w.complete(PhaseCancel, nil)

	w.emit(events.EventCancelled, nil)
}

// update applies a hit and, on change, rebuilds symbols and flares the new symbol
func (w *Widget) update(p rating.Point) (rating.Transition, bool) {
	tr, hit := w.state.Hit(p)
	if !hit || !tr.Changed {
		return tr, false
	}
	w.Setup()
	animation.Flare(w.anim, tr.Symbol.Index, w.flare)
	return tr, true
}

func (w *Widget) emitValue(tr rating.Transition, p rating.Point) {
	ev := events.Event{
		Type:     events.EventValueChanged,
		Value:    w.state.Value(),
		Previous: tr.Previous,
		Point:    p,
		HasPoint: true,
	}
	if tr.Changed {
		ev.Symbol = tr.Symbol.Index
	} else {
		ev.Previous = ev.Value
	}
	w.router.Emit(w, ev)
}

func (w *Widget) emit(t events.EventType, p *rating.Point) {
	ev := events.Event{
		Type:     t,
		Value:    w.state.Value(),
		Previous: w.state.Value(),
	}
	if p != nil {
		ev.Point = *p
		ev.HasPoint = true
	}
	w.router.Emit(w, ev)
}
