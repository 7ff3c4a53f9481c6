package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// tone is a sine streamer with a short attack and an exponential decay, so
// cues start without a click and fade out on their own.
type tone struct {
	pitch      float64
	sampleRate float64
	pos        int
}

func newTone(pitch float64, sr beep.SampleRate) *tone {
	return &tone{pitch: pitch, sampleRate: float64(sr)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		phase := 2 * math.Pi * t.pitch * float64(t.pos) / t.sampleRate
		v := math.Sin(phase)

		// Linear attack over the first samples, then exponential decay.
		env := math.Exp(-3 * float64(t.pos) / t.sampleRate)
		if t.pos < attackSamples {
			env *= float64(t.pos) / attackSamples
		}

		v *= env * 0.6
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
