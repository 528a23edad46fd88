package control

import "github.com/ayusman/mudra/internal/config"

// Cursor maps a normalized fingertip position to screen pixels and smooths
// the result. The x axis is inverted so that hand motion matches cursor
// motion on a mirrored camera image.
type Cursor struct {
	screenW   int
	screenH   int
	smoothing float64
	speed     float64

	x float64
	y float64
}

// NewCursor creates a Cursor for the given screen, starting at its center.
func NewCursor(screenW, screenH int, cfg config.Config) *Cursor {
	return &Cursor{
		screenW:   screenW,
		screenH:   screenH,
		smoothing: cfg.CursorSmoothing,
		speed:     cfg.MouseSpeed,
		x:         float64(screenW) / 2,
		y:         float64(screenH) / 2,
	}
}

// Update maps one normalized position to screen coordinates and advances
// the smoothed cursor one step toward it. The target is mirrored, scaled by
// the speed multiplier and clamped to screen bounds before smoothing, so
// the cursor converges monotonically and never overshoots.
func (c *Cursor) Update(nx, ny float64) (int, int) {
	tx := (1 - nx) * float64(c.screenW) * c.speed
	ty := ny * float64(c.screenH) * c.speed

	tx = clampFloat(tx, 0, float64(c.screenW-1))
	ty = clampFloat(ty, 0, float64(c.screenH-1))

	c.x += (tx - c.x) * c.smoothing
	c.y += (ty - c.y) * c.smoothing

	return int(c.x), int(c.y)
}

// Position returns the current smoothed cursor position.
func (c *Cursor) Position() (int, int) {
	return int(c.x), int(c.y)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
