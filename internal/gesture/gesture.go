// Package gesture turns per-frame hand landmarks into a stable stream of
// discrete gesture labels and motion events.
package gesture

// Label identifies a recognized hand pose. The set is closed: every frame
// classifies to exactly one of these.
type Label string

const (
	Idle         Label = "IDLE"
	Point        Label = "POINT"
	LeftClick    Label = "LEFT_CLICK"
	RightClick   Label = "RIGHT_CLICK"
	Drag         Label = "DRAG"
	Scroll       Label = "SCROLL"
	Victory      Label = "VICTORY"
	ThreeFingers Label = "THREE_FINGERS"
	ThumbsUp     Label = "THUMBS_UP"
	Fist         Label = "FIST"
	TwoHandsOpen Label = "TWO_HANDS_OPEN"
)

// Direction identifies a detected motion pattern.
type Direction string

const (
	SwipeLeft        Direction = "LEFT"
	SwipeRight       Direction = "RIGHT"
	SwipeUp          Direction = "UP"
	SwipeDown        Direction = "DOWN"
	Clockwise        Direction = "CLOCKWISE"
	Counterclockwise Direction = "COUNTERCLOCKWISE"
)
