package capture

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"gocv.io/x/gocv"
)

func TestMotionDetector_FirstFrameIsBaseline(t *testing.T) {
	m := NewMotionDetector(1.0)
	defer m.Close()

	frame := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC1)
	defer frame.Close()

	detected, percent := m.Detect(&frame)
	if detected {
		t.Error("first frame reported motion")
	}
	if percent != 0 {
		t.Errorf("first frame change percent = %v, want 0", percent)
	}
}

func TestMotionDetector_StaticScene(t *testing.T) {
	m := NewMotionDetector(1.0)
	defer m.Close()

	frame := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC1)
	defer frame.Close()

	m.Detect(&frame)
	detected, _ := m.Detect(&frame)
	if detected {
		t.Error("identical frames reported motion")
	}
}

func TestMotionDetector_ChangedScene(t *testing.T) {
	m := NewMotionDetector(1.0)
	defer m.Close()

	dark := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC1)
	defer dark.Close()

	bright := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC1)
	defer bright.Close()
	gocv.Rectangle(&bright, image.Rect(0, 0, 160, 120), color.RGBA{255, 255, 255, 255}, -1)

	m.Detect(&dark)
	detected, percent := m.Detect(&bright)
	if !detected {
		t.Errorf("full-frame change not detected (changed %.1f%%)", percent)
	}
}

func TestMotionDetector_NilFrame(t *testing.T) {
	m := NewMotionDetector(1.0)
	defer m.Close()

	if detected, _ := m.Detect(nil); detected {
		t.Error("nil frame reported motion")
	}
}

func TestMockCamera(t *testing.T) {
	frame := gocv.NewMatWithSize(10, 10, gocv.MatTypeCV8UC1)
	defer frame.Close()

	cam := NewMockCamera([]*gocv.Mat{&frame}, false)

	if _, err := cam.ReadFrame(); !errors.Is(err, ErrCameraNotOpen) {
		t.Errorf("ReadFrame() before Open error = %v, want ErrCameraNotOpen", err)
	}

	if err := cam.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	got, err := cam.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame() error = %v", err)
	}
	got.Close()

	if _, err := cam.ReadFrame(); err == nil {
		t.Error("ReadFrame() past the end expected error, got nil")
	}
}
