// Package detector provides hand landmark detection for the mudra gesture controller.
package detector

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D is a landmark position in normalized image coordinates:
// x and y in [0,1] with the origin top-left and y increasing downward,
// z a relative depth with the wrist near zero.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks holds the 21 landmarks of one detected hand.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// Distance returns the planar distance between two landmarks in normalized
// coordinate space, or -1 for a nil hand or an out-of-range index. Depth is
// ignored: gesture thresholds are tuned against the image plane.
func (h *HandLandmarks) Distance(a, b int) float64 {
	if h == nil || a < 0 || a >= NumLandmarks || b < 0 || b >= NumLandmarks {
		return -1
	}
	dx := h.Points[a].X - h.Points[b].X
	dy := h.Points[a].Y - h.Points[b].Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PinchDistance returns the distance between the thumb tip and the index
// fingertip, or -1 if the hand is nil. A value below the configured pinch
// threshold marks the hand as pinching.
func (h *HandLandmarks) PinchDistance() float64 {
	return h.Distance(ThumbTip, IndexTip)
}

// IndexTipPoint returns the tracked fingertip used for cursor motion,
// scrolling and swipe detection.
func (h *HandLandmarks) IndexTipPoint() Point3D {
	return h.Points[IndexTip]
}
