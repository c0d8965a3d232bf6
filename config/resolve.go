package config

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/star-rating/animation"
	"github.com/lixenwraith/star-rating/events"
	"github.com/lixenwraith/star-rating/terminal"
	"github.com/lixenwraith/star-rating/widget"
)

// Palette resolves the colour names
func (c *Config) Palette() widget.Palette {
	return widget.Palette{
		Active:   tcell.GetColor(c.Colors.Active),
		Inactive: tcell.GetColor(c.Colors.Inactive),
	}
}

// Flare returns the animation settings
func (c *Config) Flare() animation.FlareConfig {
	return animation.FlareConfig{
		Scale:  c.Animation.Scale,
		Grow:   c.Animation.Grow,
		Shrink: c.Animation.Shrink,
	}
}

// Layout returns the terminal placement
func (c *Config) Layout() terminal.Layout {
	return terminal.Layout{
		OriginX:    c.Terminal.OriginX,
		OriginY:    c.Terminal.OriginY,
		CellWidth:  c.Terminal.CellWidth,
		CellHeight: c.Terminal.CellHeight,
	}
}

// WidgetOptions translates the config into widget construction options
func (c *Config) WidgetOptions() []widget.Option {
	policy, _ := widget.ParseNotifyPolicy(c.DragNotify)
	return []widget.Option{
		widget.WithValue(c.InitialValue),
		widget.WithPalette(c.Palette()),
		widget.WithFlare(c.Flare()),
		widget.WithNotifyPolicy(policy),
	}
}

// LoggedEvents returns the notification types to log, all of them when unset
func (c *Config) LoggedEvents() []events.EventType {
	if len(c.LogEvents) == 0 {
		return events.AllTypes()
	}
	out := make([]events.EventType, 0, len(c.LogEvents))
	for _, name := range c.LogEvents {
		if t, ok := eventName(name); ok {
			out = append(out, t)
		}
	}
	return out
}

func eventName(name string) (events.EventType, bool) {
	return events.ParseType(name)
}
