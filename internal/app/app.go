// Package app orchestrates the per-frame jutsu pipeline: capture, hand
// detection, gesture classification, chakra gating, and effect lifecycle.
package app

import (
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hokage/jutsu/internal/audio"
	"github.com/hokage/jutsu/internal/capture"
	"github.com/hokage/jutsu/internal/chakra"
	"github.com/hokage/jutsu/internal/detector"
	"github.com/hokage/jutsu/internal/effect"
	"github.com/hokage/jutsu/internal/gesture"
	"github.com/hokage/jutsu/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active detection.
	ActiveFPS = 15
	// IdleTimeout is how long without motion before switching back to idle.
	IdleTimeout = 2 * time.Second
	// maxConsecutiveReadErrors is how many camera failures in a row are
	// tolerated before the pipeline gives up. Losing the camera is fatal.
	maxConsecutiveReadErrors = 30
)

// settingEnabled is the settings key persisting the detection toggle.
const settingEnabled = "detection_enabled"

// App is the frame orchestrator. All mutable pipeline state (chakra pool,
// effect arena, debouncer) is guarded by mu; the pipeline goroutine and the
// HTTP/tray control surface both go through it.
type App struct {
	config Config

	camera capture.Camera
	motion *capture.MotionDetector

	detector    detector.Detector
	detectorCfg detector.Config

	mu        sync.RWMutex
	pool      *chakra.Pool
	effects   *effect.Manager
	debounce  *debouncer
	player    audio.Player
	store     *store.Store
	sinks     []FrameSink
	enabled   bool
	lastTick  time.Time
	lastJutsu string
	snapshot  FrameOutput
	stopCh    chan struct{}
	onFatal   func(error)
}

// New creates an App from the given configuration and collaborators. The
// definitions slice is the jutsu table loaded from the store at startup.
func New(cfg Config, st *store.Store, defs []chakra.Definition) *App {
	detCfg := detector.Config{
		MaxHands:               cfg.MaxHands,
		MinDetectionConfidence: cfg.MinDetectionConfidence,
		MinTrackingConfidence:  cfg.MinTrackingConfidence,
	}

	seed := cfg.EffectSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a := &App{
		config:      cfg,
		camera:      capture.NewCamera(cfg.CameraID),
		motion:      capture.NewMotionDetector(cfg.MotionThreshold),
		detectorCfg: detCfg,
		pool:        chakra.NewPool(cfg.MaxChakra, cfg.RegenRate, defs),
		effects:     effect.NewManager(effect.DefaultCatalog(), seed),
		debounce:    newDebouncer(cfg.HoldDuration),
		player:      audio.NopPlayer{},
		store:       st,
		enabled:     true,
	}

	// Try MediaPipe first, fall back to the mock detector.
	if mp, err := detector.NewMediaPipeDetector(detCfg); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	a.restoreEnabled()
	return a
}

// restoreEnabled loads the persisted detection toggle.
func (a *App) restoreEnabled() {
	if a.store == nil {
		return
	}
	v, err := a.store.Settings().Get(settingEnabled)
	if err != nil {
		return
	}
	a.enabled = v != "false"
}

// SetPlayer sets the audio collaborator.
func (a *App) SetPlayer(p audio.Player) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.player = p
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera replaces the capture device, for tests and playback.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// OnFatal registers a callback invoked when the pipeline dies from an
// unrecoverable error such as losing the camera.
func (a *App) OnFatal(fn func(error)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onFatal = fn
}

// AddSink registers a frame output sink.
func (a *App) AddSink(s FrameSink) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sinks = append(a.sinks, s)
}

// SetEnabled pauses or resumes gesture processing and persists the choice.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	a.enabled = enabled
	st := a.store
	a.mu.Unlock()

	if st != nil {
		v := "true"
		if !enabled {
			v = "false"
		}
		if err := st.Settings().Set(settingEnabled, v); err != nil {
			log.Printf("Failed to persist detection toggle: %v", err)
		}
	}
}

// IsEnabled returns whether gesture processing is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// ResetChakra restores the pool to maximum and clears all cooldowns.
func (a *App) ResetChakra() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pool.Reset()
	log.Println("Chakra reset to maximum")
}

// Definitions returns the current jutsu table.
func (a *App) Definitions() []chakra.Definition {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.pool.Definitions()
}

// UpdateDefinition replaces the live definition for its gesture. The caller
// is responsible for persisting it to the store.
func (a *App) UpdateDefinition(def chakra.Definition) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pool.SetDefinition(def)
}

// Snapshot returns the most recent frame output.
func (a *App) Snapshot() FrameOutput {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// Start begins the detection pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}
	a.camera.SetFPS(IdleFPS)

	a.lastTick = time.Now()
	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Println("Detection pipeline started")
	return nil
}

// Stop halts the detection pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	if err := a.player.Close(); err != nil {
		log.Printf("Error closing audio player: %v", err)
	}

	log.Println("Detection pipeline stopped")
}

// skipTick advances the regeneration clock without processing a frame.
// Called on frames skipped while detection is paused.
func (a *App) skipTick(now time.Time) {
	a.mu.Lock()
	a.lastTick = now
	a.mu.Unlock()
}

// processFrame runs one frame of the core pipeline over the detected hands:
// classification, chakra tick, debounced activation, effect advance. It owns
// no I/O, so tests can drive it with fixed hands and timestamps.
func (a *App) processFrame(hands []detector.HandLandmarks, now time.Time) FrameOutput {
	a.mu.Lock()

	dt := now.Sub(a.lastTick)
	a.lastTick = now
	a.pool.Tick(dt)

	seen := make(map[string]bool, len(hands))
	results := make([]HandResult, 0, len(hands))

	for i := range hands {
		hand := &hands[i]

		fingers, err := gesture.ExtractFromHand(hand)
		if err != nil {
			// Malformed landmark set: the hand contributes nothing this
			// frame and mutates no state.
			log.Printf("Skipping hand: %v", err)
			continue
		}

		g := gesture.Classify(fingers)
		key := handKey(hand, i)
		seen[key] = true
		results = append(results, HandResult{
			Handedness: hand.Handedness,
			Fingers:    fingers,
			Gesture:    g,
		})

		if !a.debounce.Observe(key, g, now) {
			continue
		}

		decision := a.pool.TryActivate(g, now)
		if !decision.Admitted {
			log.Printf("Jutsu denied for %s: %s", g, decision.Reason)
			continue
		}

		def := decision.Definition
		a.effects.Spawn(def.EffectID, now)
		a.player.Play(def.SoundID)
		a.lastJutsu = def.Name
		log.Printf("Activated: %s", def.Name)

		a.recordActivation(def, now)
	}

	a.debounce.Sweep(seen)

	out := FrameOutput{
		Timestamp:   now,
		Hands:       results,
		Effects:     a.effects.Advance(now),
		Chakra:      a.pool.Current(),
		ChakraPct:   a.pool.Percentage(),
		ChakraLevel: a.pool.Level(),
		Cooldowns:   cooldownSeconds(a.pool, now),
		LastJutsu:   a.lastJutsu,
		FPS:         float64(a.camera.FPS()),
		Paused:      !a.enabled,
	}
	a.snapshot = out
	sinks := a.sinks

	a.mu.Unlock()

	for _, s := range sinks {
		s.Publish(out)
	}

	return out
}

// recordActivation writes the admitted activation to the history table.
func (a *App) recordActivation(def *chakra.Definition, now time.Time) {
	if a.store == nil {
		return
	}
	err := a.store.Activations().Create(&store.Activation{
		ID:          uuid.NewString(),
		Gesture:     def.Gesture,
		JutsuName:   def.Name,
		ChakraAfter: a.pool.Current(),
		CreatedAt:   now,
	})
	if err != nil {
		log.Printf("Failed to record activation: %v", err)
	}
}

// handKey identifies a hand for debounce tracking. Handedness separates the
// two tracked hands; the index breaks ties if the detector ever reports two
// hands with the same label.
func handKey(hand *detector.HandLandmarks, i int) string {
	if hand.Handedness != "" {
		return hand.Handedness + "-" + strconv.Itoa(i)
	}
	return "hand-" + strconv.Itoa(i)
}

// cooldownSeconds flattens the pool's cooldown map for the UI.
func cooldownSeconds(p *chakra.Pool, now time.Time) map[string]float64 {
	cds := p.Cooldowns(now)
	out := make(map[string]float64, len(cds))
	for g, d := range cds {
		out[g.String()] = d.Seconds()
	}
	return out
}
