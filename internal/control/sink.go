// Package control dispatches stable gestures to OS input actions.
package control

// Button identifies a mouse button.
type Button string

const (
	ButtonLeft  Button = "left"
	ButtonRight Button = "right"
)

// Sink is the OS input-injection collaborator. Every action is fire-or-skip:
// a failed call is reported through the error, never retried.
type Sink interface {
	// ScreenSize returns the primary display dimensions in pixels.
	ScreenSize() (width, height int)

	// MoveCursor moves the cursor to absolute screen coordinates.
	MoveCursor(x, y int) error

	// Click performs a single click with the given button.
	Click(b Button) error

	// DoubleClick performs a left double-click.
	DoubleClick() error

	// PressButton holds a mouse button down (drag start).
	PressButton(b Button) error

	// ReleaseButton releases a held mouse button (drag end).
	ReleaseButton(b Button) error

	// Scroll scrolls vertically. Positive scrolls up, negative down.
	Scroll(amount int) error

	// Hotkey taps a key with optional modifiers, e.g. Hotkey("left", "alt").
	Hotkey(key string, modifiers ...string) error

	// TypeText types a string.
	TypeText(text string) error
}
