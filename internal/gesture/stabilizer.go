package gesture

import "github.com/ayusman/mudra/internal/config"

// Stabilizer debounces the raw per-frame label stream with a sliding-window
// majority vote. Its output is sticky: once a label wins the vote it stays
// the stable gesture until another label wins, never silently falling back
// to IDLE.
type Stabilizer struct {
	size      int
	threshold int
	buf       []Label
	current   Label
}

// NewStabilizer creates a Stabilizer with the configured window size and
// confidence threshold.
func NewStabilizer(cfg config.Config) *Stabilizer {
	return &Stabilizer{
		size:      cfg.GestureBufferSize,
		threshold: cfg.GestureConfidence,
		buf:       make([]Label, 0, cfg.GestureBufferSize),
		current:   Idle,
	}
}

// Update pushes one raw label and returns the stable gesture. Until the
// window fills, the previous stable gesture is returned unchanged. Once
// full, the most frequent label in the window wins if it appears at least
// the threshold number of times; ties break to the label that entered the
// window earliest.
func (s *Stabilizer) Update(label Label) Label {
	if len(s.buf) == s.size {
		copy(s.buf, s.buf[1:])
		s.buf = s.buf[:s.size-1]
	}
	s.buf = append(s.buf, label)

	if len(s.buf) < s.size {
		return s.current
	}

	counts := make(map[Label]int, len(s.buf))
	for _, l := range s.buf {
		counts[l]++
	}

	var best Label
	bestCount := 0
	for _, l := range s.buf {
		if counts[l] > bestCount {
			best = l
			bestCount = counts[l]
		}
	}

	if bestCount >= s.threshold {
		s.current = best
	}
	return s.current
}

// Current returns the stable gesture without pushing a new label.
func (s *Stabilizer) Current() Label {
	return s.current
}

// Reset clears the window and the stored stable gesture.
func (s *Stabilizer) Reset() {
	s.buf = s.buf[:0]
	s.current = Idle
}
