// Package audio plays a short synthesized cue when a jutsu activates.
// Playback is fire-and-forget: the pipeline never waits on the speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player is the audio collaborator: one Play call per admitted activation.
type Player interface {
	Play(soundID string)
	Close() error
}

const (
	sampleRate    = beep.SampleRate(44100)
	bufferDur     = 100 * time.Millisecond
	cueDuration   = 400 * time.Millisecond
	defaultPitch  = 440.0
	attackSamples = 512
)

// cuePitches assigns each jutsu sound a base pitch in Hz.
var cuePitches = map[string]float64{
	"fire_jutsu":         196.0,
	"shadow_clone_jutsu": 329.6,
	"chidori":            880.0,
	"water_dragon":       261.6,
	"rock_barrier":       146.8,
	"air_bullet":         587.3,
	"crystal_mirror":     659.3,
	"chakra_strike":      392.0,
}

// SpeakerPlayer synthesizes per-jutsu tones and plays them through the
// system speaker.
type SpeakerPlayer struct {
	mu     sync.Mutex
	cues   map[string]*beep.Buffer
	closed bool
}

// NewSpeakerPlayer initializes the speaker and pre-renders all cues.
// Returns an error when no audio device is available; callers should fall
// back to NopPlayer in that case.
func NewSpeakerPlayer() (*SpeakerPlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(bufferDur)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	p := &SpeakerPlayer{cues: make(map[string]*beep.Buffer, len(cuePitches))}
	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

	for id, pitch := range cuePitches {
		buf := beep.NewBuffer(format)
		buf.Append(beep.Take(sampleRate.N(cueDuration), newTone(pitch, sampleRate)))
		p.cues[id] = buf
	}

	return p, nil
}

// Play queues the cue for the given sound id and returns immediately.
// Unknown ids play the default pitch.
func (p *SpeakerPlayer) Play(soundID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	buf, ok := p.cues[soundID]
	if !ok {
		format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
		buf = beep.NewBuffer(format)
		buf.Append(beep.Take(sampleRate.N(cueDuration), newTone(defaultPitch, sampleRate)))
		p.cues[soundID] = buf
	}

	speaker.Play(buf.Streamer(0, buf.Len()))
}

// Close stops playback.
func (p *SpeakerPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	speaker.Clear()
	return nil
}

// NopPlayer discards all play requests. Used when the speaker is unavailable
// and in tests.
type NopPlayer struct{}

func (NopPlayer) Play(soundID string) {}
func (NopPlayer) Close() error        { return nil }
