package gesture

import (
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/detector"
)

// TwoHandTracker detects the two-open-palms pose used as a hard pause.
// It keeps its own short confirmation buffer: both palms must stay open for
// a run of consecutive frames before the gesture reports.
type TwoHandTracker struct {
	minFingers int
	frames     int
	buf        []bool
}

// NewTwoHandTracker creates a TwoHandTracker with the configured finger
// minimum and confirmation frame count.
func NewTwoHandTracker(cfg config.Config) *TwoHandTracker {
	return &TwoHandTracker{
		minFingers: cfg.TwoHandsMinFingers,
		frames:     cfg.TwoHandsFrames,
		buf:        make([]bool, 0, cfg.TwoHandsFrames),
	}
}

// Update feeds one frame's detected hands. It returns true when both hands
// have shown at least the minimum number of extended fingers for the full
// confirmation window. Frames with fewer than two hands clear the window.
func (t *TwoHandTracker) Update(hands []detector.HandLandmarks) bool {
	if len(hands) < 2 {
		t.Reset()
		return false
	}

	fs1, ok1 := ReadFingerStates(&hands[0])
	fs2, ok2 := ReadFingerStates(&hands[1])
	if !ok1 || !ok2 {
		t.Reset()
		return false
	}

	open := fs1.Count() >= t.minFingers && fs2.Count() >= t.minFingers

	if len(t.buf) == t.frames {
		copy(t.buf, t.buf[1:])
		t.buf = t.buf[:t.frames-1]
	}
	t.buf = append(t.buf, open)

	if len(t.buf) < t.frames {
		return false
	}
	for _, v := range t.buf {
		if !v {
			return false
		}
	}
	return true
}

// Reset clears the confirmation window.
func (t *TwoHandTracker) Reset() {
	t.buf = t.buf[:0]
}
