package chakra

import (
	"time"

	"github.com/hokage/jutsu/internal/gesture"
)

// Chakra level thresholds for UI coloring, as percentages.
const (
	LevelHighThreshold = 60
	LevelLowThreshold  = 30
)

// DenyReason explains why an activation attempt was not admitted.
type DenyReason int

const (
	// DenyNone means the attempt was admitted.
	DenyNone DenyReason = iota
	// DenyNoDefinition means the gesture has no jutsu bound to it.
	DenyNoDefinition
	// DenyInsufficientChakra means the pool cannot cover the jutsu cost.
	DenyInsufficientChakra
	// DenyOnCooldown means the jutsu's cooldown has not elapsed yet.
	DenyOnCooldown
)

// String returns a short stable key for the reason.
func (r DenyReason) String() string {
	switch r {
	case DenyNone:
		return "admitted"
	case DenyNoDefinition:
		return "no_definition"
	case DenyInsufficientChakra:
		return "insufficient_chakra"
	case DenyOnCooldown:
		return "on_cooldown"
	}
	return "unknown"
}

// Decision is the outcome of a TryActivate call. Denials are expected,
// frequent outcomes surfaced to the UI, not errors.
type Decision struct {
	Admitted   bool
	Reason     DenyReason
	Definition *Definition // set only when admitted
}

// Pool tracks a bounded chakra value with continuous regeneration and
// per-jutsu cooldown timers. A Pool is owned by a single frame-processing
// loop and is not safe for concurrent use; independent game sessions each
// get their own Pool.
type Pool struct {
	max         float64
	regenRate   float64 // points per second
	current     float64
	defs        map[gesture.Gesture]Definition
	nextAllowed map[gesture.Gesture]time.Time
}

// NewPool creates a full Pool with the given capacity, regeneration rate in
// points per second, and jutsu definitions.
func NewPool(max, regenRate float64, defs []Definition) *Pool {
	p := &Pool{
		max:         max,
		regenRate:   regenRate,
		current:     max,
		defs:        make(map[gesture.Gesture]Definition, len(defs)),
		nextAllowed: make(map[gesture.Gesture]time.Time),
	}
	for _, d := range defs {
		p.defs[d.Gesture] = d
	}
	return p
}

// Tick regenerates chakra for the elapsed wall-clock time, clamped to the
// pool maximum. Called once per frame.
func (p *Pool) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	p.current += p.regenRate * dt.Seconds()
	if p.current > p.max {
		p.current = p.max
	}
}

// TryActivate checks both gates (chakra and cooldown) for the jutsu bound to
// the gesture and, when both pass, commits the activation: chakra is reduced
// by the cost and the cooldown window starts at now. Check and commit happen
// in one call so a frame never observes a half-applied activation.
func (p *Pool) TryActivate(g gesture.Gesture, now time.Time) Decision {
	def, ok := p.defs[g]
	if !ok {
		return Decision{Reason: DenyNoDefinition}
	}

	if p.current < float64(def.Cost) {
		return Decision{Reason: DenyInsufficientChakra}
	}

	if next, ok := p.nextAllowed[g]; ok && now.Before(next) {
		return Decision{Reason: DenyOnCooldown}
	}

	p.current -= float64(def.Cost)
	p.nextAllowed[g] = now.Add(def.Cooldown)

	return Decision{Admitted: true, Definition: &def}
}

// Current returns the current chakra value.
func (p *Pool) Current() float64 {
	return p.current
}

// Max returns the pool capacity.
func (p *Pool) Max() float64 {
	return p.max
}

// Percentage returns the current chakra as a 0-100 percentage.
func (p *Pool) Percentage() float64 {
	if p.max <= 0 {
		return 0
	}
	return p.current / p.max * 100
}

// Level buckets the chakra percentage for UI coloring: "high" above 60%,
// "low" below 30%, "medium" in between.
func (p *Pool) Level() string {
	pct := p.Percentage()
	switch {
	case pct > LevelHighThreshold:
		return "high"
	case pct > LevelLowThreshold:
		return "medium"
	default:
		return "low"
	}
}

// CooldownRemaining reports how long until the gesture's jutsu may fire
// again; zero when ready or unbound.
func (p *Pool) CooldownRemaining(g gesture.Gesture, now time.Time) time.Duration {
	next, ok := p.nextAllowed[g]
	if !ok || !now.Before(next) {
		return 0
	}
	return next.Sub(now)
}

// Cooldowns returns the remaining cooldown per gesture slot, including ready
// (zero) entries, for UI feedback.
func (p *Pool) Cooldowns(now time.Time) map[gesture.Gesture]time.Duration {
	out := make(map[gesture.Gesture]time.Duration, len(p.defs))
	for g := range p.defs {
		out[g] = p.CooldownRemaining(g, now)
	}
	return out
}

// Definition returns the jutsu bound to the gesture, if any.
func (p *Pool) Definition(g gesture.Gesture) (Definition, bool) {
	def, ok := p.defs[g]
	return def, ok
}

// Definitions returns all bound jutsu definitions.
func (p *Pool) Definitions() []Definition {
	out := make([]Definition, 0, len(p.defs))
	for _, g := range gesture.Gestures() {
		if def, ok := p.defs[g]; ok {
			out = append(out, def)
		}
	}
	return out
}

// SetDefinition replaces or adds the definition for its gesture.
func (p *Pool) SetDefinition(def Definition) {
	p.defs[def.Gesture] = def
}

// Reset restores chakra to maximum and clears all cooldowns.
func (p *Pool) Reset() {
	p.current = p.max
	clear(p.nextAllowed)
}
