package app

import (
	"time"

	"github.com/hokage/jutsu/internal/gesture"
)

// holdState tracks one hand's current gesture hold.
type holdState struct {
	gesture gesture.Gesture
	since   time.Time
	armed   bool
}

// debouncer enforces the hold-to-activate rule per hand: a gesture must be
// held for the configured duration before it fires, and a continuous hold
// fires at most once. The hand must pass through None (or a different
// gesture) before the same gesture can re-trigger.
type debouncer struct {
	hold  time.Duration
	hands map[string]*holdState
}

func newDebouncer(hold time.Duration) *debouncer {
	return &debouncer{
		hold:  hold,
		hands: make(map[string]*holdState),
	}
}

// Observe records the gesture seen for a hand this frame and reports whether
// an activation attempt should be made now.
func (d *debouncer) Observe(hand string, g gesture.Gesture, now time.Time) bool {
	if g == gesture.None {
		delete(d.hands, hand)
		return false
	}

	s, ok := d.hands[hand]
	if !ok || s.gesture != g {
		d.hands[hand] = &holdState{gesture: g, since: now, armed: true}
		return false
	}

	if !s.armed {
		return false
	}

	if now.Sub(s.since) >= d.hold {
		// Disarm so the continuous hold cannot re-trigger.
		s.armed = false
		return true
	}

	return false
}

// Sweep drops hold state for hands that were not seen this frame, so a hand
// leaving the camera counts as a transition through None.
func (d *debouncer) Sweep(seen map[string]bool) {
	for hand := range d.hands {
		if !seen[hand] {
			delete(d.hands, hand)
		}
	}
}
