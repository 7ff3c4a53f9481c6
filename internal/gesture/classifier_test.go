package gesture

import "testing"

func TestClassify_Patterns(t *testing.T) {
	tests := []struct {
		name  string
		state FingerState
		want  Gesture
	}{
		{"all retracted is fist", FingerState{false, false, false, false, false}, Fist},
		{"all extended is open palm", FingerState{true, true, true, true, true}, OpenPalm},
		{"index and middle is peace", FingerState{false, true, true, false, false}, Peace},
		{"thumb only is thumbs up", FingerState{true, false, false, false, false}, ThumbsUp},
		{"index and pinky is rock sign", FingerState{false, true, false, false, true}, RockSign},
		{"thumb and index is gun sign", FingerState{true, true, false, false, false}, GunSign},
		{"thumb index middle is three fingers", FingerState{true, true, true, false, false}, ThreeFingers},
		{"index only is point", FingerState{false, true, false, false, false}, Point},
		{"unmatched pattern is none", FingerState{false, false, true, true, false}, None},
		{"pinky only is none", FingerState{false, false, false, false, true}, None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.state); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.state, got, tt.want)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	// Exhaustive: every possible finger state classifies identically on
	// repeated calls.
	for mask := 0; mask < 1<<NumFingers; mask++ {
		var fs FingerState
		for f := 0; f < NumFingers; f++ {
			fs[f] = mask&(1<<f) != 0
		}

		first := Classify(fs)
		for i := 0; i < 10; i++ {
			if got := Classify(fs); got != first {
				t.Fatalf("Classify(%v) not deterministic: %v vs %v", fs, got, first)
			}
		}
	}
}

func TestGesture_StringRoundTrip(t *testing.T) {
	for _, g := range Gestures() {
		parsed, err := ParseGesture(g.String())
		if err != nil {
			t.Fatalf("ParseGesture(%q) error = %v", g.String(), err)
		}
		if parsed != g {
			t.Errorf("round trip for %v produced %v", g, parsed)
		}
	}

	if _, err := ParseGesture("kamehameha"); err == nil {
		t.Error("expected error for unknown gesture key")
	}
}

func TestGestures_CoversRuleTable(t *testing.T) {
	all := Gestures()
	if len(all) != 8 {
		t.Fatalf("expected 8 recognizable gestures, got %d", len(all))
	}

	seen := make(map[Gesture]bool)
	for _, g := range all {
		if g == None {
			t.Error("None must not appear in the recognizable set")
		}
		if seen[g] {
			t.Errorf("duplicate gesture %v in rule table", g)
		}
		seen[g] = true
	}
}
