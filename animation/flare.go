package animation

import "time"

// FlareConfig controls the selection pulse
type FlareConfig struct {
	Scale  float64       // peak scale
	Grow   time.Duration // identity to peak
	Shrink time.Duration // peak back to identity
}

// DefaultFlare scales to 1.6x over 300ms then back over 100ms
var DefaultFlare = FlareConfig{
	Scale:  1.6,
	Grow:   300 * time.Millisecond,
	Shrink: 100 * time.Millisecond,
}

// Flare schedules the pulse on target: scale up, then back to identity
func Flare(q *Queue, target int, cfg FlareConfig) {
	q.Schedule(target,
		Step{To: cfg.Scale, Duration: cfg.Grow, Curve: EaseOut},
		Step{To: 1.0, Duration: cfg.Shrink, Curve: EaseIn},
	)
}

// Total returns the full pulse duration
func (c FlareConfig) Total() time.Duration {
	return c.Grow + c.Shrink
}
