// @focus: #render { raster }
// Package raster draws the selector into an image for snapshots and previews.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/lixenwraith/star-rating/rating"
	"github.com/lixenwraith/star-rating/widget"
)

const (
	// innerRatio is the inner/outer vertex radius of the star outline
	innerRatio = 0.45
	// labelBand is the height reserved under the symbols for the label
	labelBand = 20
)

// Options controls snapshot output
type Options struct {
	Background color.Color
	LabelColor color.Color
	Label      string          // drawn under the symbols when non-empty
	Palette    *widget.Palette // overrides the widget palette when set
}

// DefaultOptions draws black/lightgray symbols on white with a black label
var DefaultOptions = Options{
	Background: color.White,
	LabelColor: color.Black,
	Palette:    &widget.LightPalette,
}

// Render rasterises the widget at one pixel per widget unit
// The canvas is padded so a symbol at peak flare scale is not clipped
func Render(w *widget.Widget, opts Options) *image.RGBA {
	size := w.IntrinsicSize()
	pad := Padding(w)

	width := int(math.Ceil(size.W)) + 2*pad
	height := int(math.Ceil(size.H)) + 2*pad
	if opts.Label != "" {
		height += labelBand
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bg := opts.Background
	if bg == nil {
		bg = color.White
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	for _, sym := range w.Symbols() {
		c := w.SymbolColor(sym)
		if opts.Palette != nil {
			c = opts.Palette.Color(sym.Active)
		}
		drawStar(img, sym, w.Scale(sym.Index), float64(pad), toRGBA(c))
	}

	if opts.Label != "" {
		fg := opts.LabelColor
		if fg == nil {
			fg = color.Black
		}
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(fg),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(pad, height-6),
		}
		d.DrawString(opts.Label)
	}
	return img
}

// Padding returns the border needed for the configured peak flare
func Padding(w *widget.Widget) int {
	peak := w.Flare().Scale
	if peak <= 1 {
		return 0
	}
	return int(math.Ceil(w.Geometry().Dimension * (peak - 1) / 2))
}

// SymbolCenter returns the pixel centre of a symbol in a Render output
func SymbolCenter(w *widget.Widget, index int) image.Point {
	c := w.Geometry().Frame(index).Center()
	pad := float64(Padding(w))
	return image.Pt(int(c.X+pad), int(c.Y+pad))
}

// WritePNG encodes img as PNG
func WritePNG(out io.Writer, img image.Image) error {
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// drawStar fills a five-point star inscribed in the symbol frame, scaled about its centre
func drawStar(dst *image.RGBA, sym rating.Symbol, scale, pad float64, c color.RGBA) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())

	center := sym.Frame.Center()
	cx, cy := center.X+pad, center.Y+pad
	outer := sym.Frame.W / 2 * scale
	inner := outer * innerRatio

	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		// Start at the top point, step 36 degrees clockwise
		angle := -math.Pi/2 + float64(i)*math.Pi/5
		x := float32(cx + r*math.Cos(angle))
		y := float32(cy + r*math.Sin(angle))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func toRGBA(c tcell.Color) color.RGBA {
	r, g, b := c.RGB()
	if r < 0 {
		// Default or unset colours have no RGB value
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}
