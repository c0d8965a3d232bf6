package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	chimeDuration = 120 * time.Millisecond
)

// SoundManager plays the selection chime
// Safe for concurrent use; the speaker pulls from the mixer on its own goroutine
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // 0.0-1.0
	initialized bool
}

// NewSoundManager creates a new sound manager at the given master volume
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: clampVolume(volume),
	}
}

// Initialize sets up the audio device
// Failure leaves the manager silent; callers continue without audio
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Initialized reports whether the device is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayChime plays a short tone whose pitch rises with the rating
func (sm *SoundManager) PlayChime(value int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.volume == 0 {
		return
	}

	streamer := withVolume(beep.Take(sampleRate.N(chimeDuration), NewChimeGenerator(sampleRate, ChimeFrequency(value))), sm.volume)

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// withVolume scales s by a linear volume using beep's logarithmic control
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	volume = clampVolume(volume)
	if volume >= 1 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(volume),
		Silent:   volume == 0,
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
