package terminal

import (
	"math"

	"github.com/lixenwraith/star-rating/rating"
)

// Layout places the widget on the cell grid
// One cell spans CellWidth x CellHeight widget units
type Layout struct {
	OriginX, OriginY int
	CellWidth        float64
	CellHeight       float64
}

// DefaultLayout maps the 8-unit margin to one column and a symbol row to one line
var DefaultLayout = Layout{
	OriginX:    2,
	OriginY:    2,
	CellWidth:  rating.SymbolMargin,
	CellHeight: rating.SymbolDimension,
}

// ToLocal converts a screen cell to the widget-local point at the cell centre
func (l Layout) ToLocal(cx, cy int) rating.Point {
	return rating.Point{
		X: float64(cx-l.OriginX)*l.CellWidth + l.CellWidth/2,
		Y: float64(cy-l.OriginY)*l.CellHeight + l.CellHeight/2,
	}
}

// CellRect returns the screen cells covering r, max edges exclusive
func (l Layout) CellRect(r rating.Rect) (x0, y0, x1, y1 int) {
	x0 = l.OriginX + int(math.Floor(r.X/l.CellWidth))
	y0 = l.OriginY + int(math.Floor(r.Y/l.CellHeight))
	x1 = l.OriginX + int(math.Ceil(r.MaxX()/l.CellWidth))
	y1 = l.OriginY + int(math.Ceil((r.Y+r.H)/l.CellHeight))
	return
}

// CellSize returns the widget footprint in cells
func (l Layout) CellSize(s rating.Size) (w, h int) {
	return int(math.Ceil(s.W / l.CellWidth)), int(math.Ceil(s.H / l.CellHeight))
}
