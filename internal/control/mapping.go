package control

import (
	"strings"
	"sync"

	"github.com/ayusman/mudra/internal/gesture"
)

// Action identifies what the dispatcher should do for a gesture.
type Action string

const (
	ActionMoveCursor      Action = "move_cursor"
	ActionLeftClick       Action = "left_click"
	ActionRightClick      Action = "right_click"
	ActionDoubleClick     Action = "double_click"
	ActionDrag            Action = "drag"
	ActionScroll          Action = "scroll"
	ActionPause           Action = "pause"
	ActionNavigateBack    Action = "navigate_back"
	ActionNavigateForward Action = "navigate_forward"
	ActionVolumeUp        Action = "volume_up"
	ActionVolumeDown      Action = "volume_down"
	ActionUndo            Action = "undo"
	ActionRedo            Action = "redo"
)

// Mapping holds the gesture-to-action lookup tables. It is safe for
// concurrent reads and writes: the HTTP API may edit mappings while the
// frame loop reads them.
type Mapping struct {
	mu       sync.RWMutex
	gestures map[gesture.Label]Action
	swipes   map[gesture.Direction]Action
	circles  map[gesture.Direction]Action
}

// NewMapping creates a Mapping with the default bindings.
func NewMapping() *Mapping {
	return &Mapping{
		gestures: map[gesture.Label]Action{
			gesture.Point:        ActionMoveCursor,
			gesture.LeftClick:    ActionLeftClick,
			gesture.RightClick:   ActionRightClick,
			gesture.Drag:         ActionDrag,
			gesture.Fist:         ActionDrag,
			gesture.Scroll:       ActionScroll,
			gesture.ThreeFingers: ActionScroll,
			gesture.Victory:      ActionDoubleClick,
			gesture.ThumbsUp:     ActionPause,
		},
		swipes: map[gesture.Direction]Action{
			gesture.SwipeLeft:  ActionNavigateBack,
			gesture.SwipeRight: ActionNavigateForward,
			gesture.SwipeUp:    ActionVolumeUp,
			gesture.SwipeDown:  ActionVolumeDown,
		},
		circles: map[gesture.Direction]Action{
			gesture.Clockwise:        ActionRedo,
			gesture.Counterclockwise: ActionUndo,
		},
	}
}

// ActionFor returns the action bound to a gesture label, or "" if unbound.
func (m *Mapping) ActionFor(l gesture.Label) Action {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.gestures[l]
}

// SwipeAction returns the action bound to a swipe direction.
func (m *Mapping) SwipeAction(d gesture.Direction) Action {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.swipes[d]
}

// CircleAction returns the action bound to a circular motion direction.
func (m *Mapping) CircleAction(d gesture.Direction) Action {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.circles[d]
}

// Load overlays bindings from a flat trigger-to-action map. Swipe triggers
// carry a "swipe_" prefix and circle triggers a "circle_" prefix; anything
// else names a gesture label.
func (m *Mapping) Load(bindings map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for trigger, action := range bindings {
		switch {
		case strings.HasPrefix(trigger, "swipe_"):
			d := gesture.Direction(strings.TrimPrefix(trigger, "swipe_"))
			m.swipes[d] = Action(action)
		case strings.HasPrefix(trigger, "circle_"):
			d := gesture.Direction(strings.TrimPrefix(trigger, "circle_"))
			m.circles[d] = Action(action)
		default:
			m.gestures[gesture.Label(trigger)] = Action(action)
		}
	}
}

// All returns every binding as a flat trigger-to-action map, using the same
// prefixes that Load accepts.
func (m *Mapping) All() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]string, len(m.gestures)+len(m.swipes)+len(m.circles))
	for l, a := range m.gestures {
		out[string(l)] = string(a)
	}
	for d, a := range m.swipes {
		out["swipe_"+string(d)] = string(a)
	}
	for d, a := range m.circles {
		out["circle_"+string(d)] = string(a)
	}
	return out
}

// Describe returns a human-readable description of a gesture.
func Describe(l gesture.Label) string {
	switch l {
	case gesture.Point:
		return "Point with index finger to move the cursor"
	case gesture.LeftClick:
		return "Pinch thumb and index to left click"
	case gesture.RightClick:
		return "Open palm to right click"
	case gesture.Drag:
		return "Pinch index and middle, hold to drag"
	case gesture.Fist:
		return "Closed fist, hold to drag"
	case gesture.Scroll:
		return "Pinch with a third finger up, move vertically to scroll"
	case gesture.ThreeFingers:
		return "Show three fingers, move vertically to scroll"
	case gesture.Victory:
		return "Victory sign to double click"
	case gesture.ThumbsUp:
		return "Thumbs up to pause or resume"
	case gesture.TwoHandsOpen:
		return "Both palms open to force pause"
	case gesture.Idle:
		return "No active gesture"
	}
	return "Unknown gesture"
}
