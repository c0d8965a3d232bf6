package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// chimeBase is C5; ratings walk up a major pentatonic scale from it
const chimeBase = 523.25

var pentatonic = [...]int{0, 2, 4, 7, 9}

// ChimeFrequency maps a rating to a pitch, one scale degree per star
func ChimeFrequency(value int) float64 {
	if value < 1 {
		value = 1
	}
	step := value - 1
	semitones := pentatonic[step%len(pentatonic)] + 12*(step/len(pentatonic))
	return chimeBase * math.Pow(2, float64(semitones)/12)
}

// ChimeGenerator generates a bell-like decaying sine with a soft octave overtone
type ChimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewChimeGenerator creates a chime sound generator
func NewChimeGenerator(sr beep.SampleRate, freq float64) *ChimeGenerator {
	return &ChimeGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack then exponential decay
		attack := math.Min(t/0.005, 1.0)
		envelope := attack * math.Exp(-t*18)

		sample := 0.7*math.Sin(2*math.Pi*g.freq*t) + 0.3*math.Sin(2*math.Pi*g.freq*2*t)
		sample *= envelope * 0.35

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
