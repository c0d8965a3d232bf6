package widget

import "github.com/gdamore/tcell/v2"

// Palette holds symbol colors
type Palette struct {
	Active   tcell.Color
	Inactive tcell.Color
}

// DefaultPalette suits dark terminal backgrounds
var DefaultPalette = Palette{
	Active:   tcell.ColorGold,
	Inactive: tcell.ColorGray,
}

// LightPalette matches a light background, black on light gray
var LightPalette = Palette{
	Active:   tcell.ColorBlack,
	Inactive: tcell.ColorLightGray,
}

// Color returns the color for an active or inactive symbol
func (p Palette) Color(active bool) tcell.Color {
	if active {
		return p.Active
	}
	return p.Inactive
}
