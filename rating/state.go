package rating

// State is the current rating and the geometry it is laid out on
// Invariant: 1 <= value <= geometry.Count
type State struct {
	value int
	geom  Geometry
}

// Transition describes the outcome of ApplyHit
type Transition struct {
	Changed  bool
	Previous int
	Value    int
	Symbol   Symbol // symbol that triggered the change, used for animation targeting
}

// NewState creates a state at the minimum rating of 1
func NewState(g Geometry) *State {
	return NewStateWithValue(g, 1)
}

// NewStateWithValue creates a state with value clamped into [1, Count]
func NewStateWithValue(g Geometry, value int) *State {
	if g.Count < 1 {
		g.Count = 1
	}
	return &State{value: clamp(value, 1, g.Count), geom: g}
}

// Value returns the selected rating
func (s *State) Value() int {
	return s.value
}

// Count returns the number of symbols
func (s *State) Count() int {
	return s.geom.Count
}

// Geometry returns the layout the state hit tests against
func (s *State) Geometry() Geometry {
	return s.geom
}

// HitTest returns the symbol whose frame contains p
// Frames never overlap, so at most one symbol matches
func (s *State) HitTest(p Point) (Symbol, bool) {
	for i := 1; i <= s.geom.Count; i++ {
		frame := s.geom.Frame(i)
		if frame.Contains(p) {
			return Symbol{
				Index:  i,
				Frame:  frame,
				Active: i <= s.value,
				Glyph:  StarGlyph,
			}, true
		}
	}
	return Symbol{}, false
}

// ApplyHit selects the hit symbol
// Hitting the already selected symbol is a no-op, not a toggle or reset
func (s *State) ApplyHit(sym Symbol) Transition {
	t := Transition{Previous: s.value, Value: s.value, Symbol: sym}
	if sym.Index == s.value || sym.Index < 1 || sym.Index > s.geom.Count {
		return t
	}
	s.value = sym.Index
	t.Changed = true
	t.Value = s.value
	t.Symbol.Active = true
	return t
}

// Hit runs HitTest followed by ApplyHit
// Misses return a zero Transition carrying the unchanged value
func (s *State) Hit(p Point) (Transition, bool) {
	sym, ok := s.HitTest(p)
	if !ok {
		return Transition{Previous: s.value, Value: s.value}, false
	}
	return s.ApplyHit(sym), true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
