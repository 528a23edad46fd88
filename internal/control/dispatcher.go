package control

import (
	"log"
	"math"
	"time"

	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
)

// Dispatcher turns the stable gesture stream into OS input actions. It owns
// the per-session state: pause flag, drag hold timer, per-action cooldowns
// and the scroll reference. All state is mutated on the frame loop
// goroutine; Dispatcher is not safe for concurrent use.
type Dispatcher struct {
	cfg     config.Config
	sink    Sink
	cursor  *Cursor
	tracker *gesture.MotionTracker
	mapping *Mapping

	paused     bool
	dragging   bool
	dragStart  time.Time
	prevStable gesture.Label
	lastToggle time.Time
	lastFire   map[Action]time.Time
	scrollY    float64
	hasScrollY bool

	now      func() time.Time
	onAction func(label gesture.Label, action Action)
}

// NewDispatcher creates a Dispatcher writing to the given sink. Screen
// dimensions come from the config when set, otherwise from the sink.
func NewDispatcher(cfg config.Config, sink Sink, mapping *Mapping) *Dispatcher {
	width, height := cfg.ScreenWidth, cfg.ScreenHeight
	if width <= 0 || height <= 0 {
		width, height = sink.ScreenSize()
	}

	return &Dispatcher{
		cfg:      cfg,
		sink:     sink,
		cursor:   NewCursor(width, height, cfg),
		tracker:  gesture.NewMotionTracker(cfg),
		mapping:  mapping,
		lastFire: make(map[Action]time.Time),
		now:      time.Now,
	}
}

// SetClock replaces the wall clock used for all timing gates, including the
// motion tracker's. Tests use it to step time deterministically.
func (d *Dispatcher) SetClock(now func() time.Time) {
	d.now = now
	d.tracker.SetClock(now)
}

// SetOnAction registers a callback invoked after every successfully
// dispatched action. Used for the event stream and the tray.
func (d *Dispatcher) SetOnAction(fn func(label gesture.Label, action Action)) {
	d.onAction = fn
}

// Paused reports whether action dispatch is currently paused.
func (d *Dispatcher) Paused() bool {
	return d.paused
}

// TogglePause flips the pause state programmatically, e.g. from the tray
// menu. It shares the cooldown with the thumbs-up gesture so the two ways
// of toggling cannot flap against each other. Returns the new state.
func (d *Dispatcher) TogglePause() bool {
	if d.now().Sub(d.lastToggle) >= d.cfg.PauseCooldown {
		d.paused = !d.paused
		d.lastToggle = d.now()
		if d.paused {
			d.releaseDrag()
			d.dragStart = time.Time{}
			d.hasScrollY = false
		}
	}
	return d.paused
}

// Dispatch processes one frame's stable gesture. hand carries the raw
// landmarks for continuous control (cursor, scroll, motion tracking) and
// may be nil when no hand is visible.
func (d *Dispatcher) Dispatch(stable gesture.Label, hand *detector.HandLandmarks) {
	prev := d.prevStable
	d.prevStable = stable

	switch stable {
	case gesture.TwoHandsOpen:
		// Hard pause: both palms open never resumes.
		if !d.paused && d.now().Sub(d.lastToggle) >= d.cfg.PauseCooldown {
			d.paused = true
			d.lastToggle = d.now()
			d.releaseDrag()
			d.dragStart = time.Time{}
			d.hasScrollY = false
			d.notify(stable, ActionPause)
		}
		return
	case gesture.ThumbsUp:
		// Edge-triggered: only the transition into THUMBS_UP toggles,
		// a sustained thumbs-up never re-fires.
		if prev != gesture.ThumbsUp && d.now().Sub(d.lastToggle) >= d.cfg.PauseCooldown {
			d.paused = !d.paused
			d.lastToggle = d.now()
			if d.paused {
				d.releaseDrag()
				d.dragStart = time.Time{}
				d.hasScrollY = false
			}
			d.notify(stable, ActionPause)
		}
		return
	}

	if d.paused {
		d.releaseDrag()
		d.dragStart = time.Time{}
		return
	}

	action := d.mapping.ActionFor(stable)

	if action != ActionDrag {
		d.releaseDrag()
		d.dragStart = time.Time{}
	}
	if action != ActionScroll {
		d.hasScrollY = false
	}

	switch action {
	case ActionMoveCursor:
		if hand == nil {
			return
		}
		tip := hand.IndexTipPoint()
		x, y := d.cursor.Update(tip.X, tip.Y)
		d.try("move cursor", func() error { return d.sink.MoveCursor(x, y) })

		d.tracker.Add(tip)
		if dir, ok := d.tracker.Swipe(); ok {
			d.fireMotion(stable, d.mapping.SwipeAction(dir))
		}
		if dir, ok := d.tracker.Circle(); ok {
			d.fireMotion(stable, d.mapping.CircleAction(dir))
		}

	case ActionLeftClick:
		d.fireGated(stable, ActionLeftClick, d.cfg.LeftClickCooldown, func() error {
			return d.sink.Click(ButtonLeft)
		})

	case ActionRightClick:
		d.fireGated(stable, ActionRightClick, d.cfg.RightClickCooldown, func() error {
			return d.sink.Click(ButtonRight)
		})

	case ActionDoubleClick:
		d.fireGated(stable, ActionDoubleClick, d.cfg.DoubleClickCooldown, func() error {
			return d.sink.DoubleClick()
		})

	case ActionDrag:
		if hand == nil {
			return
		}
		if d.dragStart.IsZero() {
			d.dragStart = d.now()
		}
		if d.now().Sub(d.dragStart) < d.cfg.DragHoldTime {
			return
		}
		if !d.dragging {
			if !d.try("press button", func() error { return d.sink.PressButton(ButtonLeft) }) {
				return
			}
			d.dragging = true
			d.notify(stable, ActionDrag)
		}
		// Cursor keeps tracking the hand while the button is held.
		tip := hand.IndexTipPoint()
		x, y := d.cursor.Update(tip.X, tip.Y)
		d.try("move cursor", func() error { return d.sink.MoveCursor(x, y) })

	case ActionScroll:
		if hand == nil {
			return
		}
		y := hand.IndexTipPoint().Y
		if d.hasScrollY {
			dy := y - d.scrollY
			if math.Abs(dy) > d.cfg.ScrollDeadzone {
				amount := clampInt(int(dy*d.cfg.ScrollMultiplier), -d.cfg.ScrollMaxAmount, d.cfg.ScrollMaxAmount)
				// Hand moving down scrolls the page down.
				if d.try("scroll", func() error { return d.sink.Scroll(-amount) }) {
					d.notify(stable, ActionScroll)
				}
			}
		}
		d.scrollY = y
		d.hasScrollY = true
	}
}

// Release lets go of any held input-device state. The session calls it on
// shutdown so a drag never outlives the process, and the tray calls it when
// detection is disabled.
func (d *Dispatcher) Release() {
	d.releaseDrag()
	d.dragStart = time.Time{}
	d.hasScrollY = false
}

func (d *Dispatcher) releaseDrag() {
	if !d.dragging {
		return
	}
	d.try("release button", func() error { return d.sink.ReleaseButton(ButtonLeft) })
	d.dragging = false
}

// fireGated runs a click-style action behind its per-action cooldown.
func (d *Dispatcher) fireGated(l gesture.Label, a Action, cooldown time.Duration, fn func() error) {
	if last, ok := d.lastFire[a]; ok && d.now().Sub(last) < cooldown {
		return
	}
	if d.try(string(a), fn) {
		d.lastFire[a] = d.now()
		d.notify(l, a)
	}
}

// fireMotion runs a swipe- or circle-mapped hotkey action.
func (d *Dispatcher) fireMotion(l gesture.Label, a Action) {
	var fn func() error
	switch a {
	case ActionNavigateBack:
		fn = func() error { return d.sink.Hotkey("left", "alt") }
	case ActionNavigateForward:
		fn = func() error { return d.sink.Hotkey("right", "alt") }
	case ActionVolumeUp:
		fn = func() error { return d.sink.Hotkey("audio_vol_up") }
	case ActionVolumeDown:
		fn = func() error { return d.sink.Hotkey("audio_vol_down") }
	case ActionUndo:
		fn = func() error { return d.sink.Hotkey("z", "ctrl") }
	case ActionRedo:
		fn = func() error { return d.sink.Hotkey("y", "ctrl") }
	default:
		return
	}
	if d.try(string(a), fn) {
		d.notify(l, a)
	}
}

// try makes one best-effort sink call. A failure is logged and the action
// dropped for this frame; the loop is never interrupted.
func (d *Dispatcher) try(name string, fn func() error) bool {
	if err := fn(); err != nil {
		log.Printf("action %s failed: %v", name, err)
		return false
	}
	return true
}

func (d *Dispatcher) notify(l gesture.Label, a Action) {
	if d.onAction != nil {
		d.onAction(l, a)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
