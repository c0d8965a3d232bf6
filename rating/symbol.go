package rating

// StarGlyph is the character drawn for every symbol
const StarGlyph = '✩'

// Symbol is one positioned rating marker
type Symbol struct {
	Index  int // 1-based, doubles as the identity tag
	Frame  Rect
	Active bool
	Glyph  rune
}

// Symbols derives the full symbol set for a value
// Symbol i is active iff i <= value; callers replace their whole set on every change
func Symbols(value int, g Geometry) []Symbol {
	out := make([]Symbol, 0, g.Count)
	for i := 1; i <= g.Count; i++ {
		out = append(out, Symbol{
			Index:  i,
			Frame:  g.Frame(i),
			Active: i <= value,
			Glyph:  StarGlyph,
		})
	}
	return out
}
