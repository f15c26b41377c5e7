package constants

import "time"

// Audio Engine
const (
	// SampleRate is the speaker sample rate
	SampleRate = 48000

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond

	// MinToneGap is the minimum gap between consecutive step tones
	MinToneGap = 16 * time.Millisecond

	// DefaultVolume is the master volume (0..1)
	DefaultVolume = 0.3
)

// Step Tone
const (
	StepToneDuration = 40 * time.Millisecond
	StepToneAttack   = 4 * time.Millisecond
	StepToneRelease  = 24 * time.Millisecond

	// StepToneLowHz and StepToneHighHz bound the pitch mapped from bar value
	StepToneLowHz  = 120.0
	StepToneHighHz = 1200.0
)

// Completion Chime Timing
const (
	ChimeNote1Duration = 80 * time.Millisecond
	ChimeNote2Duration = 280 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond
	ChimeNote1Release  = 40 * time.Millisecond
	ChimeNote2Release  = 200 * time.Millisecond
)
