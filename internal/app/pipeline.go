package app

import (
	"fmt"
	"log"
	"time"
)

// runPipeline is the main detection loop. One frame is fully processed
// before the next begins: capture, motion gate, hand detection,
// classification, chakra update, effect advance, publish.
//
// Motion gating mirrors the capture hardware's duty cycle: the loop idles at
// IdleFPS until the scene changes, runs detection at ActiveFPS while motion
// is present, and drops back to idle after IdleTimeout without motion.
func (a *App) runPipeline(stopCh chan struct{}) {
	activeMode := false
	lastMotionTime := time.Now()
	readErrors := 0

	frameInterval := time.Second / time.Duration(IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				// Keep the regen clock current so resuming does not
				// grant chakra for the paused interval.
				a.skipTick(time.Now())
				continue
			}

			frame, err := a.Camera().ReadFrame()
			if err != nil {
				readErrors++
				log.Printf("Error reading frame: %v", err)
				if readErrors >= maxConsecutiveReadErrors {
					a.fail(fmt.Errorf("camera lost after %d consecutive read failures: %w", readErrors, err))
					return
				}
				continue
			}
			readErrors = 0

			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()
				if !activeMode {
					activeMode = true
					a.Camera().SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode && time.Since(lastMotionTime) > IdleTimeout {
				activeMode = false
				a.Camera().SetFPS(IdleFPS)
				frameInterval = time.Second / time.Duration(IdleFPS)
				ticker.Reset(frameInterval)
				log.Println("Switched to idle mode")
			}

			if !activeMode {
				frame.Close()
				// Effects keep animating and chakra keeps regenerating
				// while the detector idles.
				a.processFrame(nil, time.Now())
				continue
			}

			hands, err := a.Detector().Detect(frame)
			frame.Close()

			if err != nil {
				// Degrade to no activation this frame.
				log.Printf("Error detecting hands: %v", err)
				a.processFrame(nil, time.Now())
				continue
			}

			hands = a.detectorCfg.FilterConfident(hands)
			a.processFrame(hands, time.Now())
		}
	}
}

// fail shuts the pipeline down and reports the error to the fatal callback.
func (a *App) fail(err error) {
	log.Printf("Pipeline fatal: %v", err)

	a.mu.Lock()
	a.stopCh = nil
	fn := a.onFatal
	a.mu.Unlock()

	if fn != nil {
		fn(err)
	}
}
