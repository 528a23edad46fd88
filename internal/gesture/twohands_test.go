package gesture

import (
	"testing"

	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/detector"
)

func TestTwoHandTracker_ConfirmsAfterWindow(t *testing.T) {
	tr := NewTwoHandTracker(config.Default())
	hands := []detector.HandLandmarks{detector.OpenPalmHand(), detector.OpenPalmHand()}

	if tr.Update(hands) {
		t.Error("Update() frame 1 = true, want false")
	}
	if tr.Update(hands) {
		t.Error("Update() frame 2 = true, want false")
	}
	if !tr.Update(hands) {
		t.Error("Update() frame 3 = false, want true")
	}
	// Stays true while the pose holds.
	if !tr.Update(hands) {
		t.Error("Update() frame 4 = false, want true")
	}
}

func TestTwoHandTracker_SingleHandResets(t *testing.T) {
	tr := NewTwoHandTracker(config.Default())
	open := []detector.HandLandmarks{detector.OpenPalmHand(), detector.OpenPalmHand()}

	tr.Update(open)
	tr.Update(open)
	if tr.Update([]detector.HandLandmarks{detector.OpenPalmHand()}) {
		t.Error("Update() with one hand = true, want false")
	}
	// The confirmation window restarts from zero.
	if tr.Update(open) || tr.Update(open) {
		t.Error("Update() confirmed before the window refilled")
	}
	if !tr.Update(open) {
		t.Error("Update() = false after full window, want true")
	}
}

func TestTwoHandTracker_ClosedHandsDoNotConfirm(t *testing.T) {
	tr := NewTwoHandTracker(config.Default())
	mixed := []detector.HandLandmarks{detector.OpenPalmHand(), detector.FistHand()}

	for i := 0; i < 5; i++ {
		if tr.Update(mixed) {
			t.Fatalf("Update() frame %d = true with a closed hand", i)
		}
	}
}
