// Package config provides the tunable settings for the mudra gesture controller.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Config holds all tunable settings for a session. A Config is a plain value:
// components receive a copy at construction time and never observe later edits.
type Config struct {
	// Camera settings
	CameraIndex  int
	CameraWidth  int
	CameraHeight int

	// Hand detection settings
	MaxHands               int
	MinDetectionConfidence float64
	MinTrackingConfidence  float64
	MotionThreshold        float64 // percent of changed pixels that counts as motion

	// Cursor settings
	CursorSmoothing float64 // 0.0-1.0, higher tracks faster
	MouseSpeed      float64
	ScreenWidth     int // 0 = ask the action sink
	ScreenHeight    int

	// Gesture classification settings
	PinchThreshold    float64
	PalmThreshold     int
	GestureBufferSize int
	GestureConfidence int

	// Two-handed gesture settings
	TwoHandsMinFingers int
	TwoHandsFrames     int

	// Action timing
	LeftClickCooldown   time.Duration
	RightClickCooldown  time.Duration
	DoubleClickCooldown time.Duration
	DragHoldTime        time.Duration
	PauseCooldown       time.Duration

	// Scroll settings
	ScrollMultiplier float64
	ScrollDeadzone   float64
	ScrollMaxAmount  int

	// Swipe and circular motion settings
	SwipeThreshold  float64
	SwipeBufferSize int
	SwipeCooldown   time.Duration
	CircleCooldown  time.Duration
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		CameraIndex:  0,
		CameraWidth:  640,
		CameraHeight: 480,

		MaxHands:               2,
		MinDetectionConfidence: 0.6,
		MinTrackingConfidence:  0.6,
		MotionThreshold:        1.0,

		CursorSmoothing: 0.6,
		MouseSpeed:      1.0,

		PinchThreshold:    0.05,
		PalmThreshold:     3,
		GestureBufferSize: 5,
		GestureConfidence: 3,

		TwoHandsMinFingers: 3,
		TwoHandsFrames:     3,

		LeftClickCooldown:   500 * time.Millisecond,
		RightClickCooldown:  500 * time.Millisecond,
		DoubleClickCooldown: 600 * time.Millisecond,
		DragHoldTime:        400 * time.Millisecond,
		PauseCooldown:       time.Second,

		ScrollMultiplier: 180,
		ScrollDeadzone:   0.015,
		ScrollMaxAmount:  80,

		SwipeThreshold:  0.18,
		SwipeBufferSize: 10,
		SwipeCooldown:   500 * time.Millisecond,
		CircleCooldown:  time.Second,
	}
}

// LoadFile overlays settings from a flat JSON document onto c.
// Recognized keys override the corresponding setting; unknown keys are
// ignored silently. A malformed file is an error: the caller decides at
// startup, there is no mid-session reload.
func (c Config) LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config file: %w", err)
	}

	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return c, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return c.WithOverrides(values), nil
}

// WithOverrides returns a copy of c with recognized keys replaced by the
// given values. Keys that are unknown, or whose value has the wrong type,
// are skipped without error.
func (c Config) WithOverrides(values map[string]any) Config {
	for key, value := range values {
		c.apply(key, value)
	}
	return c
}

// WithStringOverrides overlays settings whose values arrive as strings,
// e.g. rows from the settings table. Each value is decoded as a JSON
// scalar where possible; otherwise the raw string is used.
func (c Config) WithStringOverrides(values map[string]string) Config {
	decoded := make(map[string]any, len(values))
	for key, raw := range values {
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			v = raw
		}
		decoded[key] = v
	}
	return c.WithOverrides(decoded)
}

// Map returns the settings as a flat snake_case document, durations in
// seconds. The result round-trips through WithOverrides.
func (c Config) Map() map[string]any {
	return map[string]any{
		"camera_index":             c.CameraIndex,
		"camera_width":             c.CameraWidth,
		"camera_height":            c.CameraHeight,
		"max_hands":                c.MaxHands,
		"min_detection_confidence": c.MinDetectionConfidence,
		"min_tracking_confidence":  c.MinTrackingConfidence,
		"motion_threshold":         c.MotionThreshold,
		"cursor_smoothing":         c.CursorSmoothing,
		"mouse_speed":              c.MouseSpeed,
		"screen_width":             c.ScreenWidth,
		"screen_height":            c.ScreenHeight,
		"pinch_threshold":          c.PinchThreshold,
		"palm_threshold":           c.PalmThreshold,
		"gesture_buffer_size":      c.GestureBufferSize,
		"gesture_confidence":       c.GestureConfidence,
		"two_hands_min_fingers":    c.TwoHandsMinFingers,
		"two_hands_frames":         c.TwoHandsFrames,
		"left_click_cooldown":      c.LeftClickCooldown.Seconds(),
		"right_click_cooldown":     c.RightClickCooldown.Seconds(),
		"double_click_cooldown":    c.DoubleClickCooldown.Seconds(),
		"drag_hold_time":           c.DragHoldTime.Seconds(),
		"pause_cooldown":           c.PauseCooldown.Seconds(),
		"scroll_multiplier":        c.ScrollMultiplier,
		"scroll_deadzone":          c.ScrollDeadzone,
		"scroll_max_amount":        c.ScrollMaxAmount,
		"swipe_threshold":          c.SwipeThreshold,
		"swipe_buffer_size":        c.SwipeBufferSize,
		"swipe_cooldown":           c.SwipeCooldown.Seconds(),
		"circle_cooldown":          c.CircleCooldown.Seconds(),
	}
}

func (c *Config) apply(key string, value any) {
	switch key {
	case "camera_index":
		setInt(&c.CameraIndex, value)
	case "camera_width":
		setInt(&c.CameraWidth, value)
	case "camera_height":
		setInt(&c.CameraHeight, value)
	case "max_hands":
		setInt(&c.MaxHands, value)
	case "min_detection_confidence":
		setFloat(&c.MinDetectionConfidence, value)
	case "min_tracking_confidence":
		setFloat(&c.MinTrackingConfidence, value)
	case "motion_threshold":
		setFloat(&c.MotionThreshold, value)
	case "cursor_smoothing":
		setFloat(&c.CursorSmoothing, value)
	case "mouse_speed":
		setFloat(&c.MouseSpeed, value)
	case "screen_width":
		setInt(&c.ScreenWidth, value)
	case "screen_height":
		setInt(&c.ScreenHeight, value)
	case "pinch_threshold":
		setFloat(&c.PinchThreshold, value)
	case "palm_threshold":
		setInt(&c.PalmThreshold, value)
	case "gesture_buffer_size":
		setInt(&c.GestureBufferSize, value)
	case "gesture_confidence":
		setInt(&c.GestureConfidence, value)
	case "two_hands_min_fingers":
		setInt(&c.TwoHandsMinFingers, value)
	case "two_hands_frames":
		setInt(&c.TwoHandsFrames, value)
	case "left_click_cooldown":
		setSeconds(&c.LeftClickCooldown, value)
	case "right_click_cooldown":
		setSeconds(&c.RightClickCooldown, value)
	case "double_click_cooldown":
		setSeconds(&c.DoubleClickCooldown, value)
	case "drag_hold_time":
		setSeconds(&c.DragHoldTime, value)
	case "pause_cooldown":
		setSeconds(&c.PauseCooldown, value)
	case "scroll_multiplier":
		setFloat(&c.ScrollMultiplier, value)
	case "scroll_deadzone":
		setFloat(&c.ScrollDeadzone, value)
	case "scroll_max_amount":
		setInt(&c.ScrollMaxAmount, value)
	case "swipe_threshold":
		setFloat(&c.SwipeThreshold, value)
	case "swipe_buffer_size":
		setInt(&c.SwipeBufferSize, value)
	case "swipe_cooldown":
		setSeconds(&c.SwipeCooldown, value)
	case "circle_cooldown":
		setSeconds(&c.CircleCooldown, value)
	}
}

// asFloat accepts the numeric types a value can arrive as: float64 from
// JSON decoding, int from programmatic maps such as Map().
func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func setFloat(dst *float64, value any) {
	if f, ok := asFloat(value); ok {
		*dst = f
	}
}

func setInt(dst *int, value any) {
	if f, ok := asFloat(value); ok {
		*dst = int(f)
	}
}

// setSeconds interprets a numeric value as seconds, matching the flat
// config document format (e.g. "drag_hold_time": 0.4).
func setSeconds(dst *time.Duration, value any) {
	if f, ok := asFloat(value); ok {
		*dst = time.Duration(f * float64(time.Second))
	}
}
