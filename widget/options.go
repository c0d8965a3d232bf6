package widget

import (
	"github.com/lixenwraith/star-rating/animation"
	"github.com/lixenwraith/star-rating/rating"
)

// NotifyPolicy decides when drag and release ticks emit valueChanged
type NotifyPolicy uint8

const (
	// NotifyOnChange emits valueChanged only for effective changes
	NotifyOnChange NotifyPolicy = iota
	// NotifyEveryTick emits valueChanged on every in-bounds drag and release, changed or not
	NotifyEveryTick
)

// ParseNotifyPolicy maps config strings to a policy
func ParseNotifyPolicy(s string) (NotifyPolicy, bool) {
	switch s {
	case "", "on_change":
		return NotifyOnChange, true
	case "every_tick":
		return NotifyEveryTick, true
	default:
		return NotifyOnChange, false
	}
}

// Option configures a Widget at construction
type Option func(*Widget)

// WithValue sets the initial rating, clamped into range
func WithValue(v int) Option {
	return func(w *Widget) { w.initial = v }
}

// WithGeometry overrides the symbol layout
func WithGeometry(g rating.Geometry) Option {
	return func(w *Widget) { w.geom = g }
}

// WithPalette sets symbol colors
func WithPalette(p Palette) Option {
	return func(w *Widget) { w.palette = p }
}

// WithClock sets the animation time source
func WithClock(c animation.TimeProvider) Option {
	return func(w *Widget) { w.clock = c }
}

// WithFlare sets the selection pulse
func WithFlare(cfg animation.FlareConfig) Option {
	return func(w *Widget) { w.flare = cfg }
}

// WithNotifyPolicy sets drag/release valueChanged emission
func WithNotifyPolicy(p NotifyPolicy) Option {
	return func(w *Widget) { w.policy = p }
}

// WithTrackingDone registers the host's tracking completion hook
func WithTrackingDone(fn func(Phase)) Option {
	return func(w *Widget) { w.onDone = fn }
}
