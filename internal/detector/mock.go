package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// Fixture geometry. One knuckle row, fingertips either raised well above
// their PIP joint (extended) or dropped below it (curled); the thumb tip
// either pushed past its IP joint away from the wrist x (extended) or
// tucked back toward it (curled).
const (
	fixtureWristX = 0.5
	fixtureWristY = 0.8
	fixtureMCPY   = 0.68
	fixturePIPY   = 0.62
	raisedTipY    = 0.40
	curledTipY    = 0.70
	thumbIPX      = 0.56
	thumbOutX     = 0.70
	thumbInX      = 0.48
)

var fingerColumnX = map[int]float64{
	IndexTip:  0.56,
	MiddleTip: 0.50,
	RingTip:   0.44,
	PinkyTip:  0.38,
}

// handPose builds a right-hand fixture with the given fingers extended.
func handPose(thumb, index, middle, ring, pinky bool) HandLandmarks {
	h := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	h.Points[Wrist] = Point3D{X: fixtureWristX, Y: fixtureWristY}

	h.Points[ThumbCMC] = Point3D{X: 0.53, Y: 0.76}
	h.Points[ThumbMCP] = Point3D{X: 0.55, Y: 0.72}
	h.Points[ThumbIP] = Point3D{X: thumbIPX, Y: 0.70}
	if thumb {
		h.Points[ThumbTip] = Point3D{X: thumbOutX, Y: 0.66}
	} else {
		h.Points[ThumbTip] = Point3D{X: thumbInX, Y: curledTipY}
	}

	fingers := []struct {
		tip      int
		extended bool
	}{
		{IndexTip, index},
		{MiddleTip, middle},
		{RingTip, ring},
		{PinkyTip, pinky},
	}
	for _, f := range fingers {
		x := fingerColumnX[f.tip]
		h.Points[f.tip-3] = Point3D{X: x, Y: fixtureMCPY} // MCP
		h.Points[f.tip-2] = Point3D{X: x, Y: fixturePIPY} // PIP
		if f.extended {
			h.Points[f.tip-1] = Point3D{X: x, Y: 0.50} // DIP
			h.Points[f.tip] = Point3D{X: x, Y: raisedTipY}
		} else {
			h.Points[f.tip-1] = Point3D{X: x, Y: 0.66}
			h.Points[f.tip] = Point3D{X: x, Y: curledTipY}
		}
	}

	return h
}

// PointingHand returns a hand with only the index finger extended.
func PointingHand() HandLandmarks {
	return handPose(false, true, false, false, false)
}

// OpenPalmHand returns a hand with all five fingers extended.
func OpenPalmHand() HandLandmarks {
	return handPose(true, true, true, true, true)
}

// FistHand returns a hand with every finger curled.
func FistHand() HandLandmarks {
	return handPose(false, false, false, false, false)
}

// VictoryHand returns a hand with index and middle fingers extended.
func VictoryHand() HandLandmarks {
	return handPose(false, true, true, false, false)
}

// ThreeFingerHand returns a hand with index, middle and ring extended.
func ThreeFingerHand() HandLandmarks {
	return handPose(false, true, true, true, false)
}

// ThumbsUpHand returns a hand with only the thumb extended.
func ThumbsUpHand() HandLandmarks {
	return handPose(true, false, false, false, false)
}

// PinchHand returns a hand with thumb and index extended and their tips
// nearly touching: the left-click pinch.
func PinchHand() HandLandmarks {
	h := handPose(true, true, false, false, false)
	h.Points[ThumbTip] = Point3D{X: 0.585, Y: 0.42}
	return h
}

// DragPinchHand returns a hand with index and middle extended and the
// curled thumb tip resting against the index tip: the drag pinch.
func DragPinchHand() HandLandmarks {
	h := handPose(false, true, true, false, false)
	h.Points[ThumbTip] = Point3D{X: 0.54, Y: 0.42}
	return h
}

// ScrollPinchHand returns a pinching hand with a third finger extended,
// which classifies as the scroll pose.
func ScrollPinchHand() HandLandmarks {
	h := handPose(true, true, true, false, false)
	h.Points[ThumbTip] = Point3D{X: 0.585, Y: 0.42}
	return h
}
