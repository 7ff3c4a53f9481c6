package detector

import "gocv.io/x/gocv"

// Detector defines the interface for hand detection implementations.
type Detector interface {
	// Detect analyzes a video frame and returns detected hand landmarks.
	// Returns an empty slice if no hands are detected.
	Detect(frame *gocv.Mat) ([]HandLandmarks, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for hand detection.
type Config struct {
	// MaxHands is the maximum number of hands to detect (default: 2).
	MaxHands int

	// MinDetectionConfidence is the minimum per-hand detection confidence
	// threshold (0.0-1.0). Hands below it are treated as absent.
	MinDetectionConfidence float64

	// MinTrackingConfidence is the minimum per-frame tracking confidence
	// threshold (0.0-1.0). Hands below it are treated as absent.
	MinTrackingConfidence float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MaxHands:               2,
		MinDetectionConfidence: 0.7,
		MinTrackingConfidence:  0.5,
	}
}

// FilterConfident returns the hands that satisfy the config's detection and
// tracking confidence thresholds, truncated to MaxHands. Hands reporting no
// tracking score pass the tracking gate.
func (c Config) FilterConfident(hands []HandLandmarks) []HandLandmarks {
	kept := make([]HandLandmarks, 0, len(hands))
	for _, h := range hands {
		if h.Score < c.MinDetectionConfidence {
			continue
		}
		if h.TrackScore > 0 && h.TrackScore < c.MinTrackingConfidence {
			continue
		}
		kept = append(kept, h)
		if c.MaxHands > 0 && len(kept) >= c.MaxHands {
			break
		}
	}
	return kept
}
