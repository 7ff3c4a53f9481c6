package app

import (
	"time"

	"github.com/hokage/jutsu/internal/effect"
	"github.com/hokage/jutsu/internal/gesture"
)

// HandResult is the per-hand classification outcome for one frame.
type HandResult struct {
	Handedness string              `json:"handedness"`
	Fingers    gesture.FingerState `json:"fingers"`
	Gesture    gesture.Gesture     `json:"gesture"`
}

// FrameOutput is what the orchestrator hands to the rendering and UI
// collaborators after each processed frame: the declarative render list plus
// the resource state needed for the energy bar and cooldown feedback.
type FrameOutput struct {
	Timestamp time.Time           `json:"timestamp"`
	Hands     []HandResult        `json:"hands"`
	Effects   []effect.RenderItem `json:"effects"`

	Chakra      float64            `json:"chakra"`
	ChakraPct   float64            `json:"chakraPct"`
	ChakraLevel string             `json:"chakraLevel"`
	Cooldowns   map[string]float64 `json:"cooldowns"` // remaining seconds per gesture slot

	LastJutsu string  `json:"lastJutsu,omitempty"`
	FPS       float64 `json:"fps"`
	Paused    bool    `json:"paused"`
}

// FrameSink receives the output of every processed frame. Implementations
// must not block; the pipeline publishes synchronously.
type FrameSink interface {
	Publish(FrameOutput)
}
