package constants

import "time"

// Frame & Step Timing
const (
	// FrameRate is the idle redraw rate in frames per second
	FrameRate = 60

	// FrameUpdateInterval is the idle rendering interval (~60 FPS)
	FrameUpdateInterval = time.Second / FrameRate

	// StepDelayMs is the pause after every rendered sort step
	StepDelayMs = 8

	// StepDelay is the duration form of StepDelayMs
	StepDelay = StepDelayMs * time.Millisecond

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 256
)

// Array Generation
const (
	// ArraySize is the number of bars generated per array
	ArraySize = 60

	// MinValue is the smallest generated bar value (inclusive)
	MinValue = 50

	// MaxValue is the largest generated bar value (inclusive)
	MaxValue = 500

	// MaxArraySize caps configured sizes; beyond this bars are sub-cell on any terminal
	MaxArraySize = 1000
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "sorted.log"

	// MaxLogSize triggers rotation of an existing log file on startup (10 MB)
	MaxLogSize = 10 * 1024 * 1024
)
