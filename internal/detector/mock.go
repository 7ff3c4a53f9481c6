package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// Preset fixture geometry: an upright right hand in image coordinates
// (Y grows downward), wrist at (0.5, 0.8), fingers pointing up.
var fingerColumns = [4]float64{0.56, 0.50, 0.44, 0.38} // index, middle, ring, pinky

// handFixture builds a HandLandmarks preset with the given fingers extended.
// Extended fingers point straight up from their MCP; curled fingers fold the
// tip back toward the palm. The thumb extends laterally when up and tucks
// across the palm when down.
func handFixture(thumb, index, middle, ring, pinky bool) HandLandmarks {
	lm := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
		TrackScore: 0.9,
	}

	lm.Points[Wrist] = Point3D{X: 0.5, Y: 0.8}

	// Thumb chain
	lm.Points[ThumbCMC] = Point3D{X: 0.58, Y: 0.74}
	if thumb {
		lm.Points[ThumbMCP] = Point3D{X: 0.64, Y: 0.70}
		lm.Points[ThumbIP] = Point3D{X: 0.69, Y: 0.66}
		lm.Points[ThumbTip] = Point3D{X: 0.74, Y: 0.63}
	} else {
		lm.Points[ThumbMCP] = Point3D{X: 0.60, Y: 0.68}
		lm.Points[ThumbIP] = Point3D{X: 0.56, Y: 0.64}
		lm.Points[ThumbTip] = Point3D{X: 0.52, Y: 0.62}
	}

	extended := [4]bool{index, middle, ring, pinky}
	bases := [4]int{IndexMCP, MiddleMCP, RingMCP, PinkyMCP}

	for f := 0; f < 4; f++ {
		x := fingerColumns[f]
		base := bases[f]

		lm.Points[base] = Point3D{X: x, Y: 0.62}
		if extended[f] {
			lm.Points[base+1] = Point3D{X: x, Y: 0.54} // PIP
			lm.Points[base+2] = Point3D{X: x, Y: 0.47} // DIP
			lm.Points[base+3] = Point3D{X: x, Y: 0.40} // Tip
		} else {
			// Folded: tip curls back down past the PIP toward the palm.
			lm.Points[base+1] = Point3D{X: x, Y: 0.56, Z: -0.03}
			lm.Points[base+2] = Point3D{X: x - 0.02, Y: 0.62, Z: -0.04}
			lm.Points[base+3] = Point3D{X: x - 0.03, Y: 0.67, Z: -0.02}
		}
	}

	return lm
}

// FistLandmarks returns a preset hand with all fingers curled.
func FistLandmarks() HandLandmarks {
	return handFixture(false, false, false, false, false)
}

// OpenPalmLandmarks returns a preset hand with all fingers extended.
func OpenPalmLandmarks() HandLandmarks {
	return handFixture(true, true, true, true, true)
}

// PeaceLandmarks returns a preset hand with index and middle extended.
func PeaceLandmarks() HandLandmarks {
	return handFixture(false, true, true, false, false)
}

// ThumbsUpLandmarks returns a preset hand with only the thumb extended.
func ThumbsUpLandmarks() HandLandmarks {
	return handFixture(true, false, false, false, false)
}

// RockSignLandmarks returns a preset hand with index and pinky extended.
func RockSignLandmarks() HandLandmarks {
	return handFixture(false, true, false, false, true)
}

// GunSignLandmarks returns a preset hand with thumb and index extended.
func GunSignLandmarks() HandLandmarks {
	return handFixture(true, true, false, false, false)
}

// ThreeFingersLandmarks returns a preset hand with thumb, index and middle extended.
func ThreeFingersLandmarks() HandLandmarks {
	return handFixture(true, true, true, false, false)
}

// PointLandmarks returns a preset hand with only the index extended.
func PointLandmarks() HandLandmarks {
	return handFixture(false, true, false, false, false)
}
