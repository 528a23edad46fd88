package control

import "github.com/go-vgo/robotgo"

// RobotgoSink implements Sink on top of robotgo.
type RobotgoSink struct{}

// NewRobotgoSink creates the real OS input sink.
func NewRobotgoSink() *RobotgoSink {
	return &RobotgoSink{}
}

// ScreenSize returns the primary display dimensions in pixels.
func (s *RobotgoSink) ScreenSize() (int, int) {
	return robotgo.GetScreenSize()
}

// MoveCursor moves the cursor to absolute screen coordinates.
func (s *RobotgoSink) MoveCursor(x, y int) error {
	robotgo.Move(x, y)
	return nil
}

// Click performs a single click with the given button.
func (s *RobotgoSink) Click(b Button) error {
	robotgo.Click(string(b), false)
	return nil
}

// DoubleClick performs a left double-click.
func (s *RobotgoSink) DoubleClick() error {
	robotgo.Click("left", true)
	return nil
}

// PressButton holds a mouse button down.
func (s *RobotgoSink) PressButton(b Button) error {
	return robotgo.Toggle(string(b), "down")
}

// ReleaseButton releases a held mouse button.
func (s *RobotgoSink) ReleaseButton(b Button) error {
	return robotgo.Toggle(string(b), "up")
}

// Scroll scrolls vertically. Positive scrolls up, negative down.
func (s *RobotgoSink) Scroll(amount int) error {
	robotgo.Scroll(0, amount)
	return nil
}

// Hotkey taps a key with optional modifiers.
func (s *RobotgoSink) Hotkey(key string, modifiers ...string) error {
	args := make([]interface{}, len(modifiers))
	for i, m := range modifiers {
		args[i] = m
	}
	return robotgo.KeyTap(key, args...)
}

// TypeText types a string.
func (s *RobotgoSink) TypeText(text string) error {
	robotgo.TypeStr(text)
	return nil
}
