package gesture

import "fmt"

// Gesture is a discrete recognized hand shape from a closed set.
type Gesture int

const (
	// None means no pattern matched or no hand was present.
	None Gesture = iota
	Fist
	OpenPalm
	Peace
	ThumbsUp
	RockSign
	GunSign
	ThreeFingers
	Point
)

var gestureNames = map[Gesture]string{
	None:         "none",
	Fist:         "fist",
	OpenPalm:     "open_palm",
	Peace:        "peace",
	ThumbsUp:     "thumbs_up",
	RockSign:     "rock_sign",
	GunSign:      "gun_sign",
	ThreeFingers: "three_fingers",
	Point:        "point",
}

// String returns the stable key for the gesture, used in the store and API.
func (g Gesture) String() string {
	if name, ok := gestureNames[g]; ok {
		return name
	}
	return fmt.Sprintf("gesture(%d)", int(g))
}

// MarshalText implements encoding.TextMarshaler.
func (g Gesture) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Gesture) UnmarshalText(text []byte) error {
	parsed, err := ParseGesture(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// ParseGesture maps a stable key back to its Gesture.
func ParseGesture(s string) (Gesture, error) {
	for g, name := range gestureNames {
		if name == s {
			return g, nil
		}
	}
	return None, fmt.Errorf("unknown gesture %q", s)
}

// Gestures returns every recognizable gesture in classification order,
// excluding None.
func Gestures() []Gesture {
	out := make([]Gesture, len(rules))
	for i, r := range rules {
		out[i] = r.gesture
	}
	return out
}

// rule pairs a required finger pattern with the gesture it produces.
type rule struct {
	pattern FingerState // thumb, index, middle, ring, pinky
	gesture Gesture
}

// rules is the ordered classification table. Rules are evaluated top to
// bottom and the first exact match wins; the order below is the documented
// priority order. A state matching no rule classifies as None.
var rules = []rule{
	{FingerState{false, false, false, false, false}, Fist},
	{FingerState{true, true, true, true, true}, OpenPalm},
	{FingerState{false, true, true, false, false}, Peace},
	{FingerState{true, false, false, false, false}, ThumbsUp},
	{FingerState{false, true, false, false, true}, RockSign},
	{FingerState{true, true, false, false, false}, GunSign},
	{FingerState{true, true, true, false, false}, ThreeFingers},
	{FingerState{false, true, false, false, false}, Point},
}

// Classify maps a FingerState to a Gesture. Pure and deterministic.
func Classify(fs FingerState) Gesture {
	for _, r := range rules {
		if r.pattern == fs {
			return r.gesture
		}
	}
	return None
}
