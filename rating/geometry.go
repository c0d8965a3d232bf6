package rating

// Symbol geometry in widget units
const (
	SymbolDimension = 40.0
	SymbolMargin    = 8.0
	SymbolCount     = 5
)

// DefaultGeometry is the fixed layout of the selector
var DefaultGeometry = Geometry{
	Dimension: SymbolDimension,
	Margin:    SymbolMargin,
	Count:     SymbolCount,
}

// Point is a widget-local coordinate
type Point struct {
	X, Y float64
}

// Size is a width/height pair in widget units
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle, half-open on its max edges
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside the rectangle
// NaN coordinates never match since every comparison fails
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W &&
		p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the rectangle midpoint
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// MaxX returns the right edge
func (r Rect) MaxX() float64 {
	return r.X + r.W
}

// Geometry describes symbol size, spacing and count
type Geometry struct {
	Dimension float64
	Margin    float64
	Count     int
}

// Frame returns the frame of the 1-based symbol index
// The margin precedes each symbol, so symbol 1 starts at x = margin
func (g Geometry) Frame(index int) Rect {
	n := float64(index)
	return Rect{
		X: n*g.Margin + g.Dimension*(n-1),
		Y: 0,
		W: g.Dimension,
		H: g.Dimension,
	}
}

// IntrinsicSize returns the natural content size: N symbols and N+1 margins wide, one symbol tall
func (g Geometry) IntrinsicSize() Size {
	return Size{
		W: float64(g.Count)*g.Dimension + float64(g.Count+1)*g.Margin,
		H: g.Dimension,
	}
}

// Bounds returns the widget bounds anchored at the local origin
func (g Geometry) Bounds() Rect {
	s := g.IntrinsicSize()
	return Rect{W: s.W, H: s.H}
}
