package app

import (
	"log"
	"time"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active detection.
	ActiveFPS = 15
	// IdleTimeout is how long without motion before dropping back to idle.
	IdleTimeout = 2 * time.Second
)

// runPipeline is the main loop that processes frames from the camera.
// It manages the transitions between idle and active modes based on motion
// detection: hand detection only runs while the scene is moving.
func (a *App) runPipeline(stop <-chan struct{}) {
	activeMode := false
	lastMotionTime := time.Now()

	frameInterval := time.Second / time.Duration(IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()
				if !activeMode {
					activeMode = true
					a.camera.SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				if time.Since(lastMotionTime) > IdleTimeout {
					activeMode = false
					a.camera.SetFPS(IdleFPS)
					frameInterval = time.Second / time.Duration(IdleFPS)
					ticker.Reset(frameInterval)
					a.stabilizer.Reset()
					a.twoHands.Reset()
					a.dispatcher.Release()
					log.Println("Switched to idle mode")
				}
			}

			if !activeMode || a.detector == nil {
				frame.Close()
				continue
			}

			hands, err := a.detector.Detect(frame)
			frame.Close()
			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			a.processHands(hands)
		}
	}
}

// processHands runs one frame's landmarks through classification,
// stabilization and dispatch.
func (a *App) processHands(hands []detector.HandLandmarks) {
	if len(hands) == 0 {
		stable := a.stabilizer.Update(gesture.Idle)
		a.twoHands.Update(nil)
		a.dispatcher.Dispatch(stable, nil)
		return
	}

	primary := &hands[0]
	fs, ok := gesture.ReadFingerStates(primary)
	label := a.classifier.Classify(fs, ok, primary.PinchDistance())
	stable := a.stabilizer.Update(label)

	// Two open hands override whatever the primary hand classifies as.
	if a.twoHands.Update(hands) {
		stable = gesture.TwoHandsOpen
	}

	a.dispatcher.Dispatch(stable, primary)
}
