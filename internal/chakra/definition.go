// Package chakra manages the bounded regenerating energy pool that gates
// jutsu activation, including per-jutsu costs and cooldown timers.
package chakra

import (
	"time"

	"github.com/hokage/jutsu/internal/gesture"
)

// Definition is the static configuration for one jutsu, keyed by the gesture
// that triggers it. Immutable for the process lifetime once loaded.
type Definition struct {
	Gesture  gesture.Gesture `json:"gesture"`
	Name     string          `json:"name"`
	Cost     int             `json:"cost"`
	Cooldown time.Duration   `json:"cooldown"`
	EffectID string          `json:"effectId"`
	SoundID  string          `json:"soundId"`
}

// DefaultDefinitions returns the built-in jutsu table. It is seeded into the
// store on first run and can be edited through the API afterwards.
func DefaultDefinitions() []Definition {
	return []Definition{
		{
			Gesture:  gesture.Fist,
			Name:     "Fire Style: Fireball Jutsu",
			Cost:     30,
			Cooldown: 2 * time.Second,
			EffectID: "fireball",
			SoundID:  "fire_jutsu",
		},
		{
			Gesture:  gesture.OpenPalm,
			Name:     "Shadow Clone Jutsu",
			Cost:     25,
			Cooldown: 3 * time.Second,
			EffectID: "shadow_clone",
			SoundID:  "shadow_clone_jutsu",
		},
		{
			Gesture:  gesture.Peace,
			Name:     "Lightning Style: Chidori",
			Cost:     40,
			Cooldown: 4 * time.Second,
			EffectID: "chidori",
			SoundID:  "chidori",
		},
		{
			Gesture:  gesture.ThumbsUp,
			Name:     "Water Style: Water Dragon",
			Cost:     20,
			Cooldown: 2 * time.Second,
			EffectID: "water_dragon",
			SoundID:  "water_dragon",
		},
		{
			Gesture:  gesture.RockSign,
			Name:     "Earth Style: Rock Barrier",
			Cost:     35,
			Cooldown: 3500 * time.Millisecond,
			EffectID: "rock_barrier",
			SoundID:  "rock_barrier",
		},
		{
			Gesture:  gesture.GunSign,
			Name:     "Wind Style: Air Bullet",
			Cost:     30,
			Cooldown: 2500 * time.Millisecond,
			EffectID: "air_bullet",
			SoundID:  "air_bullet",
		},
		{
			Gesture:  gesture.ThreeFingers,
			Name:     "Ice Style: Crystal Mirror",
			Cost:     25,
			Cooldown: 2 * time.Second,
			EffectID: "crystal_mirror",
			SoundID:  "crystal_mirror",
		},
		{
			Gesture:  gesture.Point,
			Name:     "Gentle Fist: Chakra Strike",
			Cost:     15,
			Cooldown: 1500 * time.Millisecond,
			EffectID: "chakra_strike",
			SoundID:  "chakra_strike",
		},
	}
}
