// Package app wires the capture, detection, gesture and control layers into
// the running mudra application.
package app

import (
	"log"
	"sync"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/store"
)

// Config holds configuration options for the application.
type Config struct {
	Settings config.Config
	Store    *store.Store

	// Camera and Sink override the real devices, mainly for tests.
	Camera  capture.Camera
	Sink    control.Sink
	Mapping *control.Mapping
}

// App is the main application that turns camera frames into input actions.
type App struct {
	config     Config
	camera     capture.Camera
	motion     *capture.MotionDetector
	detector   detector.Detector
	classifier *gesture.Classifier
	stabilizer *gesture.Stabilizer
	twoHands   *gesture.TwoHandTracker
	mapping    *control.Mapping
	dispatcher *control.Dispatcher

	enabled bool
	mu      sync.RWMutex
	stopCh  chan struct{}
}

// New creates a new App instance with the given configuration.
func New(cfg Config) *App {
	settings := cfg.Settings

	camera := cfg.Camera
	if camera == nil {
		camera = capture.NewCamera(settings.CameraIndex, settings.CameraWidth, settings.CameraHeight)
	}

	sink := cfg.Sink
	if sink == nil {
		sink = control.NewRobotgoSink()
	}

	mapping := cfg.Mapping
	if mapping == nil {
		mapping = control.NewMapping()
	}

	a := &App{
		config:     cfg,
		camera:     camera,
		motion:     capture.NewMotionDetector(settings.MotionThreshold),
		classifier: gesture.NewClassifier(settings),
		stabilizer: gesture.NewStabilizer(settings),
		twoHands:   gesture.NewTwoHandTracker(settings),
		mapping:    mapping,
		dispatcher: control.NewDispatcher(settings, sink, mapping),
		enabled:    true,
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.Config{
		MaxHands:        settings.MaxHands,
		MinConfidence:   settings.MinDetectionConfidence,
		MinTrackingConf: settings.MinTrackingConfidence,
	}); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables hand control. Disabling releases any held
// input state and clears the gesture window.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.enabled == enabled {
		return
	}
	a.enabled = enabled
	if !enabled {
		a.dispatcher.Release()
		a.stabilizer.Reset()
		a.twoHands.Reset()
	}
}

// IsEnabled returns whether hand control is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// Mapping returns the live gesture-to-action mapping.
func (a *App) Mapping() *control.Mapping {
	return a.mapping
}

// Dispatcher returns the action dispatcher.
func (a *App) Dispatcher() *control.Dispatcher {
	return a.dispatcher
}

// Paused reports whether action dispatch is paused.
func (a *App) Paused() bool {
	return a.dispatcher.Paused()
}

// TogglePause flips the dispatch pause, the same as a thumbs-up gesture.
func (a *App) TogglePause() bool {
	return a.dispatcher.TogglePause()
}

// LoadMappings overlays persisted bindings from the store onto the live
// mapping. Missing store or empty table leaves the defaults in place.
func (a *App) LoadMappings() error {
	if a.config.Store == nil {
		return nil
	}

	bindings, err := a.config.Store.Mappings().Flat()
	if err != nil {
		return err
	}
	if len(bindings) > 0 {
		a.mapping.Load(bindings)
		log.Printf("Loaded %d mapping overrides from database", len(bindings))
	}
	return nil
}

// Start begins the frame pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}
	a.camera.SetFPS(IdleFPS)

	// The goroutine gets its own reference: Stop nils the field, and the
	// loop must keep selecting on the channel it was started with.
	stop := make(chan struct{})
	a.stopCh = stop
	go a.runPipeline(stop)

	log.Println("Hand control pipeline started")
	return nil
}

// Stop halts the pipeline and releases resources. Held input state is
// released before the devices close.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	a.dispatcher.Release()

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}
	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Hand control pipeline stopped")
}
