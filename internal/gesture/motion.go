package gesture

import (
	"math"
	"time"

	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/detector"
)

// MotionTracker watches the tracked fingertip across a short window of
// frames and classifies its net motion into swipes and circles. Positions
// are fed every frame regardless of the current gesture label.
type MotionTracker struct {
	size           int
	swipeThreshold float64
	swipeCooldown  time.Duration
	circleCooldown time.Duration

	history    []detector.Point3D
	lastSwipe  time.Time
	lastCircle time.Time
	now        func() time.Time
}

// NewMotionTracker creates a MotionTracker with the configured window and
// thresholds.
func NewMotionTracker(cfg config.Config) *MotionTracker {
	return &MotionTracker{
		size:           cfg.SwipeBufferSize,
		swipeThreshold: cfg.SwipeThreshold,
		swipeCooldown:  cfg.SwipeCooldown,
		circleCooldown: cfg.CircleCooldown,
		history:        make([]detector.Point3D, 0, cfg.SwipeBufferSize),
		now:            time.Now,
	}
}

// Add records one fingertip position, evicting the oldest once the window
// is full.
func (t *MotionTracker) Add(p detector.Point3D) {
	if len(t.history) == t.size {
		copy(t.history, t.history[1:])
		t.history = t.history[:t.size-1]
	}
	t.history = append(t.history, p)
}

// Swipe classifies the net displacement across a full window. It fires at
// most once per cooldown interval; on firing the window is cleared so the
// same motion cannot trigger twice.
func (t *MotionTracker) Swipe() (Direction, bool) {
	if len(t.history) < t.size {
		return "", false
	}
	if t.now().Sub(t.lastSwipe) < t.swipeCooldown {
		return "", false
	}

	start := t.history[0]
	end := t.history[len(t.history)-1]
	dx := end.X - start.X
	dy := end.Y - start.Y

	if math.Hypot(dx, dy) < t.swipeThreshold {
		return "", false
	}

	t.lastSwipe = t.now()
	t.history = t.history[:0]

	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return SwipeRight, true
		}
		return SwipeLeft, true
	}
	if dy > 0 {
		return SwipeDown, true
	}
	return SwipeUp, true
}

// Circle sums the signed angle deltas between consecutive displacement
// vectors across a full window. An unwrapped total beyond half a turn in
// either direction reports a circular motion. With y growing downward a
// positive total is counterclockwise on screen.
func (t *MotionTracker) Circle() (Direction, bool) {
	if len(t.history) < t.size {
		return "", false
	}
	if t.now().Sub(t.lastCircle) < t.circleCooldown {
		return "", false
	}

	angles := make([]float64, 0, len(t.history)-1)
	for i := 1; i < len(t.history); i++ {
		dx := t.history[i].X - t.history[i-1].X
		dy := t.history[i].Y - t.history[i-1].Y
		angles = append(angles, math.Atan2(dy, dx))
	}

	var total float64
	for i := 1; i < len(angles); i++ {
		diff := angles[i] - angles[i-1]
		// Unwrap to [-pi, pi].
		if diff > math.Pi {
			diff -= 2 * math.Pi
		} else if diff < -math.Pi {
			diff += 2 * math.Pi
		}
		total += diff
	}

	if math.Abs(total) <= math.Pi {
		return "", false
	}

	t.lastCircle = t.now()
	t.history = t.history[:0]

	if total > 0 {
		return Counterclockwise, true
	}
	return Clockwise, true
}

// Reset clears the position history.
func (t *MotionTracker) Reset() {
	t.history = t.history[:0]
}

// SetClock replaces the wall clock used for cooldown checks. Tests use it
// to step time deterministically.
func (t *MotionTracker) SetClock(now func() time.Time) {
	t.now = now
}
