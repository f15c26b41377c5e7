// Package audio sonifies sort steps: each step plays a short tone pitched by the
// value under examination, and a finished sort plays a chime.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/sorted/constants"
)

const sampleRate = beep.SampleRate(constants.SampleRate)

// SoundManager owns the speaker and mixes step tones
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool

	lastTone time.Time
	now      func() time.Time
}

// NewSoundManager creates a sound manager at the given master volume
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		now:    time.Now,
	}
}

// Initialize sets up the speaker. Failure leaves the manager silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.SpeakerBuffer)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops playback and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted toggles output without releasing the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayStep plays a tone for value within [lo, hi], rate limited to one per MinToneGap
func (sm *SoundManager) PlayStep(value, lo, hi int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || !sm.admit() {
		return
	}
	sm.add(CreateStepTone(ToneFrequency(value, lo, hi), sm.volume, sampleRate))
}

// PlayComplete plays the completion chime
func (sm *SoundManager) PlayComplete() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	sm.add(CreateChime(sm.volume, sampleRate))
}

// admit reports whether enough time passed since the last tone; caller holds mu
func (sm *SoundManager) admit() bool {
	now := sm.now()
	if !sm.lastTone.IsZero() && now.Sub(sm.lastTone) < constants.MinToneGap {
		return false
	}
	sm.lastTone = now
	return true
}

// add queues s on the mixer; the speaker goroutine reads the mixer under its own lock
func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
