// Package gesture converts hand landmarks into finger states and classifies
// them into a closed set of recognized gestures.
package gesture

import (
	"errors"
	"math"

	"github.com/hokage/jutsu/internal/detector"
)

// ErrInvalidLandmarkSet is returned when a landmark set does not describe a
// usable 21-point hand topology.
var ErrInvalidLandmarkSet = errors.New("invalid landmark set")

// Finger indices within a FingerState.
const (
	Thumb = iota
	Index
	Middle
	Ring
	Pinky
	NumFingers
)

// FingerState is the per-finger extended/retracted vector, ordered
// thumb, index, middle, ring, pinky.
type FingerState [NumFingers]bool

// Count returns the number of extended fingers.
func (fs FingerState) Count() int {
	n := 0
	for _, up := range fs {
		if up {
			n++
		}
	}
	return n
}

// fingerTips and fingerPIPs are the tip and PIP joint landmark indices for
// the four non-thumb fingers, ordered index, middle, ring, pinky.
var (
	fingerTips = [4]int{detector.IndexTip, detector.MiddleTip, detector.RingTip, detector.PinkyTip}
	fingerPIPs = [4]int{detector.IndexPIP, detector.MiddlePIP, detector.RingPIP, detector.PinkyPIP}
)

// ExtractFingerState converts exactly 21 hand landmarks into a FingerState.
//
// The four non-thumb fingers are extended when the tip projects further than
// the PIP joint along the wrist -> middle MCP axis, which keeps the check
// invariant to in-plane hand rotation. The thumb does not flex in that plane,
// so it compares the lateral (perpendicular-axis) offsets of tip and IP joint
// instead.
//
// Pure function of its input. Returns ErrInvalidLandmarkSet when the point
// count is wrong or the hand axis is degenerate.
func ExtractFingerState(points []detector.Point3D) (FingerState, error) {
	var fs FingerState

	if len(points) != detector.NumLandmarks {
		return fs, ErrInvalidLandmarkSet
	}

	wrist := points[detector.Wrist]
	middleMCP := points[detector.MiddleMCP]

	// Hand extension axis, in the image plane.
	ax := middleMCP.X - wrist.X
	ay := middleMCP.Y - wrist.Y
	length := math.Hypot(ax, ay)
	if length < 1e-10 {
		return fs, ErrInvalidLandmarkSet
	}
	ux, uy := ax/length, ay/length

	// along projects a point onto the extension axis; lateral onto its
	// perpendicular.
	along := func(p detector.Point3D) float64 {
		return (p.X-wrist.X)*ux + (p.Y-wrist.Y)*uy
	}
	lateral := func(p detector.Point3D) float64 {
		return (p.X-wrist.X)*-uy + (p.Y-wrist.Y)*ux
	}

	// Thumb: lateral tip-vs-IP comparison.
	tipLat := math.Abs(lateral(points[detector.ThumbTip]))
	ipLat := math.Abs(lateral(points[detector.ThumbIP]))
	fs[Thumb] = tipLat > ipLat

	// Remaining fingers: tip-above-PIP along the extension axis.
	for f := 0; f < 4; f++ {
		tip := along(points[fingerTips[f]])
		pip := along(points[fingerPIPs[f]])
		fs[Index+f] = tip > pip
	}

	return fs, nil
}

// ExtractFromHand extracts the FingerState from a detected hand.
func ExtractFromHand(hand *detector.HandLandmarks) (FingerState, error) {
	if hand == nil {
		return FingerState{}, ErrInvalidLandmarkSet
	}
	return ExtractFingerState(hand.Points[:])
}
