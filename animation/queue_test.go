package animation

import (
	"math"
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestQueue_IdleScaleIsIdentity(t *testing.T) {
	q := NewQueue(NewMockTimeProvider(epoch))
	if s := q.Scale(3); s != 1.0 {
		t.Errorf("Expected idle scale 1.0, got %v", s)
	}
	if q.Active() {
		t.Error("Expected empty queue to be inactive")
	}
}

func TestFlare_Timeline(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	q := NewQueue(clock)
	Flare(q, 4, DefaultFlare)

	if s := q.Scale(4); !almost(s, 1.0) {
		t.Errorf("t=0: expected 1.0, got %v", s)
	}
	if q.Pending(4) != 2 {
		t.Errorf("Expected 2 pending steps, got %d", q.Pending(4))
	}

	clock.Advance(150 * time.Millisecond)
	mid := q.Scale(4)
	if mid <= 1.0 || mid >= 1.6 {
		t.Errorf("t=150ms: expected scale in (1.0, 1.6), got %v", mid)
	}

	clock.Advance(150 * time.Millisecond)
	if s := q.Scale(4); !almost(s, 1.6) {
		t.Errorf("t=300ms: expected peak 1.6, got %v", s)
	}
	if q.Pending(4) != 1 {
		t.Errorf("Expected scale-down pending after scale-up, got %d", q.Pending(4))
	}

	clock.Advance(50 * time.Millisecond)
	down := q.Scale(4)
	if down <= 1.0 || down >= 1.6 {
		t.Errorf("t=350ms: expected scale in (1.0, 1.6), got %v", down)
	}

	clock.Advance(50 * time.Millisecond)
	if s := q.Scale(4); !almost(s, 1.0) {
		t.Errorf("t=400ms: expected identity, got %v", s)
	}
	if q.Active() {
		t.Error("Expected queue to drain after the pulse")
	}
}

func TestQueue_StepsCarryOverrun(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	q := NewQueue(clock)
	q.Schedule(1,
		Step{To: 2, Duration: 100 * time.Millisecond},
		Step{To: 0, Duration: 100 * time.Millisecond},
	)

	// Jump past the first step without observing it
	clock.Advance(150 * time.Millisecond)
	if s := q.Scale(1); !almost(s, 1.0) {
		t.Errorf("Expected halfway from 2 to 0 (1.0), got %v", s)
	}
}

func TestQueue_IndependentTargets(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	q := NewQueue(clock)
	Flare(q, 1, DefaultFlare)
	clock.Advance(200 * time.Millisecond)
	Flare(q, 2, DefaultFlare)
	clock.Advance(100 * time.Millisecond)

	if s := q.Scale(1); !almost(s, 1.6) {
		t.Errorf("target 1: expected 1.6, got %v", s)
	}
	if s := q.Scale(2); s <= 1.0 || s >= 1.6 {
		t.Errorf("target 2: expected mid-flare, got %v", s)
	}

	clock.Advance(100 * time.Millisecond)
	if q.Pending(1) != 0 {
		t.Error("target 1 should have finished")
	}
	if q.Pending(2) == 0 {
		t.Error("target 2 should still be running")
	}
}

func TestQueue_RescheduleAppends(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	q := NewQueue(clock)
	Flare(q, 5, DefaultFlare)
	clock.Advance(100 * time.Millisecond)
	Flare(q, 5, DefaultFlare)

	if q.Pending(5) != 4 {
		t.Errorf("Expected 4 queued steps, got %d", q.Pending(5))
	}
	clock.Advance(DefaultFlare.Total()*2 - 100*time.Millisecond)
	if q.Active() {
		t.Error("Expected both pulses to finish")
	}
}

func TestCurves_Endpoints(t *testing.T) {
	for name, c := range map[string]Curve{"linear": Linear, "easeOut": EaseOut, "easeIn": EaseIn} {
		if !almost(c(0), 0) || !almost(c(1), 1) {
			t.Errorf("%s: expected endpoints 0 and 1, got %v and %v", name, c(0), c(1))
		}
		prev := 0.0
		for i := 1; i <= 20; i++ {
			v := c(float64(i) / 20)
			if v < prev-1e-9 {
				t.Errorf("%s: not monotonic at %d", name, i)
			}
			prev = v
		}
	}
	if EaseOut(0.5) <= 0.5 {
		t.Errorf("EaseOut should lead linear at midpoint, got %v", EaseOut(0.5))
	}
}

func TestMockTimeProvider(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	mock.Advance(time.Hour)
	if !mock.Now().Equal(epoch.Add(time.Hour)) {
		t.Errorf("Expected %v, got %v", epoch.Add(time.Hour), mock.Now())
	}
	later := epoch.Add(48 * time.Hour)
	mock.SetTime(later)
	if !mock.Now().Equal(later) {
		t.Errorf("Expected %v, got %v", later, mock.Now())
	}
}
