package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWithOverrides(t *testing.T) {
	cfg := Default().WithOverrides(map[string]any{
		"cursor_smoothing":    0.3,
		"palm_threshold":      float64(4),
		"drag_hold_time":      0.25,
		"scroll_max_amount":   float64(40),
		"not_a_real_setting":  123.0,
		"another_unknown_key": "ignored",
	})

	if cfg.CursorSmoothing != 0.3 {
		t.Errorf("CursorSmoothing = %v, want 0.3", cfg.CursorSmoothing)
	}
	if cfg.PalmThreshold != 4 {
		t.Errorf("PalmThreshold = %d, want 4", cfg.PalmThreshold)
	}
	if cfg.DragHoldTime != 250*time.Millisecond {
		t.Errorf("DragHoldTime = %v, want 250ms", cfg.DragHoldTime)
	}
	if cfg.ScrollMaxAmount != 40 {
		t.Errorf("ScrollMaxAmount = %d, want 40", cfg.ScrollMaxAmount)
	}
}

func TestWithOverrides_WrongTypeSkipped(t *testing.T) {
	base := Default()
	cfg := base.WithOverrides(map[string]any{
		"cursor_smoothing": "fast",
		"palm_threshold":   true,
	})

	if cfg.CursorSmoothing != base.CursorSmoothing {
		t.Errorf("CursorSmoothing changed to %v on bad type", cfg.CursorSmoothing)
	}
	if cfg.PalmThreshold != base.PalmThreshold {
		t.Errorf("PalmThreshold changed to %d on bad type", cfg.PalmThreshold)
	}
}

func TestWithStringOverrides(t *testing.T) {
	cfg := Default().WithStringOverrides(map[string]string{
		"pinch_threshold": "0.08",
		"camera_index":    "1",
		"pause_cooldown":  "2",
	})

	if cfg.PinchThreshold != 0.08 {
		t.Errorf("PinchThreshold = %v, want 0.08", cfg.PinchThreshold)
	}
	if cfg.CameraIndex != 1 {
		t.Errorf("CameraIndex = %d, want 1", cfg.CameraIndex)
	}
	if cfg.PauseCooldown != 2*time.Second {
		t.Errorf("PauseCooldown = %v, want 2s", cfg.PauseCooldown)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mudra.json")
	doc := `{"swipe_threshold": 0.25, "gesture_buffer_size": 7, "mystery": 9}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Default().LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.SwipeThreshold != 0.25 {
		t.Errorf("SwipeThreshold = %v, want 0.25", cfg.SwipeThreshold)
	}
	if cfg.GestureBufferSize != 7 {
		t.Errorf("GestureBufferSize = %d, want 7", cfg.GestureBufferSize)
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Default().LoadFile(path); err == nil {
		t.Error("LoadFile() with malformed JSON expected error, got nil")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := Default().LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("LoadFile() with missing file expected error, got nil")
	}
}

func TestMapRoundTrips(t *testing.T) {
	base := Default()
	base.CursorSmoothing = 0.45
	base.DragHoldTime = 700 * time.Millisecond
	base.ScrollMaxAmount = 60

	got := Default().WithOverrides(base.Map())
	if got != base {
		t.Errorf("Map round trip changed the config:\n got %+v\nwant %+v", got, base)
	}
}
