package app

import (
	"testing"
	"time"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/detector"
)

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time {
	return c.t
}

func (c *testClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestApp(t *testing.T) (*App, *control.MockSink, *testClock) {
	t.Helper()

	sink := control.NewMockSink()
	a := New(Config{
		Settings: config.Default(),
		Camera:   capture.NewMockCamera(nil, false),
		Sink:     sink,
	})
	a.SetDetector(detector.NewMockDetector())

	clock := &testClock{t: time.Unix(1000, 0)}
	a.Dispatcher().SetClock(clock.now)
	return a, sink, clock
}

// feed runs the same hand set through the pipeline for n frames.
func feed(a *App, hands []detector.HandLandmarks, n int) {
	for i := 0; i < n; i++ {
		a.processHands(hands)
	}
}

func TestApp_PointingMovesCursor(t *testing.T) {
	a, sink, _ := newTestApp(t)

	// The stabilizer needs a full window before the label settles.
	feed(a, []detector.HandLandmarks{detector.PointingHand()}, 8)

	if len(sink.Moves) == 0 {
		t.Fatal("sustained pointing produced no cursor movement")
	}
	if len(sink.Clicks) != 0 {
		t.Errorf("pointing produced %d clicks", len(sink.Clicks))
	}
}

func TestApp_PinchClicksOnce(t *testing.T) {
	a, sink, clock := newTestApp(t)

	feed(a, []detector.HandLandmarks{detector.PinchHand()}, 10)

	if len(sink.Clicks) != 1 {
		t.Fatalf("got %d clicks from a held pinch, want 1", len(sink.Clicks))
	}
	if sink.Clicks[0] != control.ButtonLeft {
		t.Errorf("got %q click, want left", sink.Clicks[0])
	}

	// After the cooldown the still-held pinch clicks again.
	clock.advance(config.Default().LeftClickCooldown)
	feed(a, []detector.HandLandmarks{detector.PinchHand()}, 1)
	if len(sink.Clicks) != 2 {
		t.Errorf("got %d clicks after cooldown, want 2", len(sink.Clicks))
	}
}

func TestApp_FistDragPressesAndReleases(t *testing.T) {
	a, sink, clock := newTestApp(t)

	feed(a, []detector.HandLandmarks{detector.FistHand()}, 6)
	if len(sink.Presses) != 0 {
		t.Fatal("drag engaged before the hold time")
	}

	clock.advance(config.Default().DragHoldTime)
	feed(a, []detector.HandLandmarks{detector.FistHand()}, 3)
	if len(sink.Presses) != 1 {
		t.Fatalf("got %d presses, want 1", len(sink.Presses))
	}

	// Opening the hand back to pointing drops the drag.
	feed(a, []detector.HandLandmarks{detector.PointingHand()}, 8)
	if len(sink.Releases) != 1 {
		t.Fatalf("got %d releases, want 1", len(sink.Releases))
	}
}

func TestApp_TwoOpenHandsForcePause(t *testing.T) {
	a, sink, _ := newTestApp(t)

	hands := []detector.HandLandmarks{detector.OpenPalmHand(), detector.OpenPalmHand()}
	feed(a, hands, config.Default().TwoHandsFrames)

	if !a.Paused() {
		t.Fatal("two open hands did not pause dispatch")
	}

	// While paused, nothing reaches the sink.
	feed(a, []detector.HandLandmarks{detector.PinchHand()}, 10)
	if len(sink.Clicks) != 0 {
		t.Errorf("got %d clicks while paused", len(sink.Clicks))
	}
}

func TestApp_ThumbsUpResumes(t *testing.T) {
	a, _, clock := newTestApp(t)

	hands := []detector.HandLandmarks{detector.OpenPalmHand(), detector.OpenPalmHand()}
	feed(a, hands, config.Default().TwoHandsFrames)
	if !a.Paused() {
		t.Fatal("two open hands did not pause dispatch")
	}

	clock.advance(config.Default().PauseCooldown)
	feed(a, []detector.HandLandmarks{detector.ThumbsUpHand()}, 8)
	if a.Paused() {
		t.Fatal("thumbs up did not resume dispatch")
	}
}

func TestApp_NoHandsGoesIdle(t *testing.T) {
	a, sink, _ := newTestApp(t)

	feed(a, []detector.HandLandmarks{detector.PointingHand()}, 8)
	moves := len(sink.Moves)

	feed(a, nil, 8)
	feed(a, nil, 4)

	if len(sink.Moves) != moves {
		t.Errorf("cursor kept moving with no hands visible")
	}
}

func TestApp_StartStopRestart(t *testing.T) {
	cam := capture.NewMockCamera(nil, false)
	a := New(Config{
		Settings: config.Default(),
		Camera:   cam,
		Sink:     control.NewMockSink(),
	})
	a.SetDetector(detector.NewMockDetector())

	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !cam.IsOpen() {
		t.Fatal("camera not opened on start")
	}

	a.Stop()
	if cam.IsOpen() {
		t.Fatal("camera still open after stop")
	}

	// Each run owns its stop channel, so a restart is clean.
	if err := a.Start(); err != nil {
		t.Fatalf("restart error = %v", err)
	}
	if !cam.IsOpen() {
		t.Fatal("camera not reopened on restart")
	}
	a.Stop()
}

func TestApp_TrayToggleSharesGestureCooldown(t *testing.T) {
	a, sink, clock := newTestApp(t)

	if !a.TogglePause() {
		t.Fatal("toggle did not pause")
	}
	feed(a, []detector.HandLandmarks{detector.PinchHand()}, 10)
	if len(sink.Clicks) != 0 {
		t.Errorf("got %d clicks while paused", len(sink.Clicks))
	}

	clock.advance(config.Default().PauseCooldown)
	if a.TogglePause() {
		t.Fatal("toggle did not resume")
	}
}

func TestApp_DisableReleasesHeldDrag(t *testing.T) {
	a, sink, clock := newTestApp(t)

	feed(a, []detector.HandLandmarks{detector.FistHand()}, 6)
	clock.advance(config.Default().DragHoldTime)
	feed(a, []detector.HandLandmarks{detector.FistHand()}, 2)
	if len(sink.Presses) != 1 {
		t.Fatal("drag never engaged")
	}

	a.SetEnabled(false)
	if len(sink.Releases) != 1 {
		t.Fatalf("got %d releases on disable, want 1", len(sink.Releases))
	}
	if a.IsEnabled() {
		t.Error("app still reports enabled")
	}
}
