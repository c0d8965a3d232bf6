// @focus: #animation { queue }
package animation

import "time"

// Step animates a target's scale from wherever the previous step ended to To
type Step struct {
	To       float64
	Duration time.Duration
	Curve    Curve
}

type track struct {
	steps   []Step
	from    float64   // scale at the start of steps[0]
	started time.Time // start of steps[0]
}

// Queue sequences per-target scale animations
//
// Steps scheduled for a target run one after another; the next step begins
// when the previous one completes. Scheduling never blocks and nothing waits
// on completion. Targets are small integers (symbol indices).
// Not safe for concurrent use; driven from the UI goroutine.
type Queue struct {
	clock  TimeProvider
	tracks map[int]*track
	rest   map[int]float64 // settled scale for targets with no pending steps
}

// NewQueue creates a queue reading time from clock
func NewQueue(clock TimeProvider) *Queue {
	if clock == nil {
		clock = NewRealTimeProvider()
	}
	return &Queue{
		clock:  clock,
		tracks: make(map[int]*track),
		rest:   make(map[int]float64),
	}
}

// Schedule appends steps to target's sequence
// An idle target starts immediately from its current scale
func (q *Queue) Schedule(target int, steps ...Step) {
	if len(steps) == 0 {
		return
	}
	q.Advance()
	tr, ok := q.tracks[target]
	if !ok {
		tr = &track{from: q.settled(target), started: q.clock.Now()}
		q.tracks[target] = tr
	}
	tr.steps = append(tr.steps, steps...)
}

// Scale returns target's current scale, 1.0 when never animated
func (q *Queue) Scale(target int) float64 {
	q.Advance()
	tr, ok := q.tracks[target]
	if !ok {
		return q.settled(target)
	}
	step := tr.steps[0]
	elapsed := q.clock.Now().Sub(tr.started)
	progress := 1.0
	if step.Duration > 0 {
		progress = float64(elapsed) / float64(step.Duration)
	}
	progress = clampUnit(progress)
	curve := step.Curve
	if curve == nil {
		curve = Linear
	}
	return tr.from + (step.To-tr.from)*curve(progress)
}

// Advance retires completed steps, carrying leftover time into the next one
func (q *Queue) Advance() {
	now := q.clock.Now()
	for target, tr := range q.tracks {
		for len(tr.steps) > 0 {
			step := tr.steps[0]
			end := tr.started.Add(step.Duration)
			if now.Before(end) {
				break
			}
			tr.from = step.To
			tr.started = end
			tr.steps = tr.steps[1:]
		}
		if len(tr.steps) == 0 {
			q.rest[target] = tr.from
			delete(q.tracks, target)
		}
	}
}

// Active reports whether any target still has pending steps
func (q *Queue) Active() bool {
	q.Advance()
	return len(q.tracks) > 0
}

// Pending returns the number of unfinished steps for target
func (q *Queue) Pending(target int) int {
	q.Advance()
	if tr, ok := q.tracks[target]; ok {
		return len(tr.steps)
	}
	return 0
}

func (q *Queue) settled(target int) float64 {
	if s, ok := q.rest[target]; ok {
		return s
	}
	return 1.0
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
