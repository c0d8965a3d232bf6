package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestChimeFrequency_Rises(t *testing.T) {
	prev := 0.0
	for v := 1; v <= 7; v++ {
		f := ChimeFrequency(v)
		if f <= prev {
			t.Errorf("value %d: frequency %v not above %v", v, f, prev)
		}
		prev = f
	}
	if math.Abs(ChimeFrequency(1)-chimeBase) > 1e-9 {
		t.Errorf("Expected base pitch for 1 star, got %v", ChimeFrequency(1))
	}
	if math.Abs(ChimeFrequency(6)-2*chimeBase) > 1e-6 {
		t.Errorf("Expected octave above base for 6, got %v", ChimeFrequency(6))
	}
	if ChimeFrequency(0) != ChimeFrequency(1) {
		t.Error("Expected out-of-range values to clamp to 1")
	}
}

func TestChimeGenerator_Bounded(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := beep.Take(rate.N(chimeDuration), NewChimeGenerator(rate, ChimeFrequency(5)))

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 1 || buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d invalid: %v", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if total != rate.N(chimeDuration) {
		t.Errorf("Expected %d samples, got %d", rate.N(chimeDuration), total)
	}
}

func TestChimeGenerator_Decays(t *testing.T) {
	rate := beep.SampleRate(48000)
	g := NewChimeGenerator(rate, 440)

	peak := func(n int) float64 {
		buf := make([][2]float64, n)
		g.Stream(buf)
		m := 0.0
		for _, s := range buf {
			m = math.Max(m, math.Abs(s[0]))
		}
		return m
	}

	early := peak(rate.N(20 * time.Millisecond))
	peak(rate.N(80 * time.Millisecond))
	late := peak(rate.N(20 * time.Millisecond))
	if late >= early/4 {
		t.Errorf("Expected strong decay, early=%v late=%v", early, late)
	}
}
