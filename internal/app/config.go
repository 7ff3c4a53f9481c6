package app

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds configuration options for the application, loaded from the
// environment.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `env:"JUTSU_ADDR" envDefault:":8080"`

	// DataDir overrides where the database lives. Empty means ~/.jutsu.
	DataDir string `env:"JUTSU_DATA_DIR"`

	// CameraID selects the capture device.
	CameraID int `env:"JUTSU_CAMERA_ID" envDefault:"0"`

	// MaxChakra is the chakra pool capacity.
	MaxChakra float64 `env:"JUTSU_MAX_CHAKRA" envDefault:"100"`

	// RegenRate is chakra regeneration in points per second of wall-clock
	// time.
	RegenRate float64 `env:"JUTSU_REGEN_RATE" envDefault:"0.5"`

	// MinDetectionConfidence gates hands by detector confidence.
	MinDetectionConfidence float64 `env:"JUTSU_MIN_DETECTION_CONFIDENCE" envDefault:"0.7"`

	// MinTrackingConfidence gates hands by per-frame tracking confidence.
	MinTrackingConfidence float64 `env:"JUTSU_MIN_TRACKING_CONFIDENCE" envDefault:"0.5"`

	// MaxHands bounds how many hands are processed per frame.
	MaxHands int `env:"JUTSU_MAX_HANDS" envDefault:"2"`

	// HoldDuration is how long a gesture must be held before it activates.
	HoldDuration time.Duration `env:"JUTSU_HOLD_DURATION" envDefault:"500ms"`

	// MotionThreshold is the percentage of changed pixels that switches the
	// pipeline into active mode.
	MotionThreshold float64 `env:"JUTSU_MOTION_THRESHOLD" envDefault:"1.0"`

	// EffectSeed seeds the effect geometry RNG. Zero means seed from the
	// clock at startup.
	EffectSeed int64 `env:"JUTSU_EFFECT_SEED"`

	// AudioEnabled controls whether activation cues play.
	AudioEnabled bool `env:"JUTSU_AUDIO_ENABLED" envDefault:"true"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
