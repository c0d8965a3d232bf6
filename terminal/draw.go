package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/star-rating/widget"
)

// SparkleGlyph fills the cells a flaring symbol grows into
const SparkleGlyph = '·'

// DrawWidget renders every symbol into its cell span
// Symbols are drawn from the widget's current set, so colours always follow the value
func DrawWidget(s tcell.Screen, w *widget.Widget, l Layout, base tcell.Style) {
	peak := w.Flare().Scale
	for _, sym := range w.Symbols() {
		x0, y0, x1, y1 := l.CellRect(sym.Frame)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				s.SetContent(x, y, ' ', nil, base)
			}
		}

		cx := (x0 + x1 - 1) / 2
		cy := (y0 + y1 - 1) / 2
		style := base.Foreground(w.SymbolColor(sym))

		if scale := w.Scale(sym.Index); scale > 1 {
			style = style.Bold(true)
			reach := flareReach(scale, peak, (x1-x0)/2)
			for d := 1; d <= reach; d++ {
				s.SetContent(cx-d, cy, SparkleGlyph, nil, style)
				s.SetContent(cx+d, cy, SparkleGlyph, nil, style)
			}
		}
		s.SetContent(cx, cy, sym.Glyph, nil, style)
	}
}

// DrawText writes text starting at (x, y), clipped to the screen width
func DrawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	w, _ := s.Size()
	for _, r := range text {
		if x >= w {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// flareReach converts a scale into the number of sparkle cells per side
func flareReach(scale, peak float64, half int) int {
	if peak <= 1 || half <= 0 {
		return 0
	}
	reach := int(math.Round((scale - 1) / (peak - 1) * float64(half)))
	if reach < 0 {
		return 0
	}
	if reach > half {
		return half
	}
	return reach
}
