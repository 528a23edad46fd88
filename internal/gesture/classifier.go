package gesture

import "github.com/ayusman/mudra/internal/config"

// Classifier maps one frame's finger state to a gesture label using a fixed
// decision table. It has no state: the same input always yields the same
// label.
type Classifier struct {
	pinchThreshold float64
	palmThreshold  int
}

// NewClassifier creates a Classifier with the configured thresholds.
func NewClassifier(cfg config.Config) *Classifier {
	return &Classifier{
		pinchThreshold: cfg.PinchThreshold,
		palmThreshold:  cfg.PalmThreshold,
	}
}

// Classify returns the gesture label for one frame. ok reports whether the
// finger state came from a real hand; pinch is the thumb-to-index fingertip
// distance, negative when unavailable. Rules are checked in a fixed order
// and the first match wins.
//
// The palm rule runs before the exact three-finger rule, so with the default
// palm threshold of 3 an index+middle+ring hand reads as RIGHT_CLICK;
// THREE_FINGERS needs a palm threshold of 4 or more.
func (c *Classifier) Classify(fs FingerState, ok bool, pinch float64) Label {
	if !ok {
		return Idle
	}

	count := fs.Count()

	if pinch >= 0 && pinch < c.pinchThreshold {
		switch {
		case fs.Thumb && fs.Index && count == 2:
			return LeftClick
		case fs.Index && fs.Middle && count == 2:
			return Drag
		case fs.Thumb && fs.Index:
			return Scroll
		}
	}

	switch {
	case count >= c.palmThreshold && fs.Index && fs.Middle && fs.Ring:
		return RightClick
	case count == 0:
		return Fist
	case fs.Index && fs.Middle && count == 2:
		return Victory
	case fs.Index && fs.Middle && fs.Ring && count == 3:
		return ThreeFingers
	case fs.Index && count == 1:
		return Point
	case fs.Thumb && !fs.Index && !fs.Middle:
		return ThumbsUp
	}

	return Idle
}
