package gesture

import (
	"math"

	"github.com/ayusman/mudra/internal/detector"
)

// FingerState records which of the five fingers of one hand are extended.
type FingerState struct {
	Thumb  bool
	Index  bool
	Middle bool
	Ring   bool
	Pinky  bool
}

// Count returns the number of extended fingers.
func (f FingerState) Count() int {
	n := 0
	for _, up := range []bool{f.Thumb, f.Index, f.Middle, f.Ring, f.Pinky} {
		if up {
			n++
		}
	}
	return n
}

// ReadFingerStates derives the extension flags from one hand's landmarks.
// It is a pure per-frame function with no smoothing.
//
// The thumb counts as extended when its tip x lies farther from the wrist x
// than its IP joint x. Measuring from the wrist keeps the rule valid for
// either hand and either mirror convention. The other four fingers count as
// extended when the tip y is above the PIP joint y (y grows downward).
//
// The second return value is false for an absent hand; the classifier maps
// that frame to IDLE.
func ReadFingerStates(hand *detector.HandLandmarks) (FingerState, bool) {
	if hand == nil {
		return FingerState{}, false
	}

	lm := hand.Points
	wristX := lm[detector.Wrist].X

	return FingerState{
		Thumb:  math.Abs(lm[detector.ThumbTip].X-wristX) > math.Abs(lm[detector.ThumbIP].X-wristX),
		Index:  lm[detector.IndexTip].Y < lm[detector.IndexPIP].Y,
		Middle: lm[detector.MiddleTip].Y < lm[detector.MiddlePIP].Y,
		Ring:   lm[detector.RingTip].Y < lm[detector.RingPIP].Y,
		Pinky:  lm[detector.PinkyTip].Y < lm[detector.PinkyPIP].Y,
	}, true
}
