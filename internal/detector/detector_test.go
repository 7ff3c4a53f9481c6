package detector

import (
	"testing"
)

func TestConfig_FilterConfident(t *testing.T) {
	cfg := Config{
		MaxHands:               2,
		MinDetectionConfidence: 0.7,
		MinTrackingConfidence:  0.5,
	}

	t.Run("drops low detection confidence", func(t *testing.T) {
		hands := []HandLandmarks{
			{Score: 0.95, TrackScore: 0.9},
			{Score: 0.4, TrackScore: 0.9},
		}

		kept := cfg.FilterConfident(hands)
		if len(kept) != 1 {
			t.Fatalf("expected 1 hand kept, got %d", len(kept))
		}
		if kept[0].Score != 0.95 {
			t.Errorf("wrong hand kept, score = %f", kept[0].Score)
		}
	})

	t.Run("drops low tracking confidence", func(t *testing.T) {
		hands := []HandLandmarks{
			{Score: 0.95, TrackScore: 0.2},
		}

		if kept := cfg.FilterConfident(hands); len(kept) != 0 {
			t.Fatalf("expected 0 hands kept, got %d", len(kept))
		}
	})

	t.Run("missing tracking score passes", func(t *testing.T) {
		hands := []HandLandmarks{
			{Score: 0.95},
		}

		if kept := cfg.FilterConfident(hands); len(kept) != 1 {
			t.Fatalf("expected 1 hand kept, got %d", len(kept))
		}
	})

	t.Run("truncates to max hands", func(t *testing.T) {
		hands := []HandLandmarks{
			{Score: 0.9, TrackScore: 0.9},
			{Score: 0.9, TrackScore: 0.9},
			{Score: 0.9, TrackScore: 0.9},
		}

		if kept := cfg.FilterConfident(hands); len(kept) != 2 {
			t.Fatalf("expected 2 hands kept, got %d", len(kept))
		}
	})
}

func TestMockDetector_Detect(t *testing.T) {
	mock := NewMockDetector()
	mock.SetHands([]HandLandmarks{FistLandmarks()})

	hands, err := mock.Detect(nil)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(hands) != 1 {
		t.Fatalf("expected 1 hand, got %d", len(hands))
	}
	if hands[0].Handedness != "Right" {
		t.Errorf("expected Right hand fixture, got %s", hands[0].Handedness)
	}
}
