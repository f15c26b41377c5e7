package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/sorted/constants"
)

// Wave maps a phase in [0,1) to a sample in [-1,1]
type Wave func(phase float64) float64

// Sine is a pure tone
func Sine(phase float64) float64 {
	return math.Sin(2 * math.Pi * phase)
}

// Square is a hollow, bright tone
func Square(phase float64) float64 {
	if phase < 0.5 {
		return 1
	}
	return -1
}

// Triangle is a soft tone with odd harmonics
func Triangle(phase float64) float64 {
	return 1 - 4*math.Abs(phase-0.5)
}

// Shape is a tone length with linear attack and release ramps
type Shape struct {
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
}

var (
	stepShape = Shape{constants.StepToneDuration, constants.StepToneAttack, constants.StepToneRelease}
	chimeLow  = Shape{constants.ChimeNote1Duration, constants.ChimeAttack, constants.ChimeNote1Release}
	chimeHigh = Shape{constants.ChimeNote2Duration, constants.ChimeAttack, constants.ChimeNote2Release}
)

// chime pitches, B5 then E6
const (
	chimeLowHz  = 987.77
	chimeHighHz = 1318.51
)

// tone streams one enveloped note and then drains
type tone struct {
	wave  Wave
	phase float64
	inc   float64 // phase advance per sample

	pos     int
	total   int
	attack  int
	release int
}

// NewTone returns a finite mono stream (duplicated to both channels) of freq Hz
func NewTone(freq float64, wave Wave, shape Shape, rate beep.SampleRate) beep.Streamer {
	return &tone{
		wave:    wave,
		inc:     freq / float64(rate),
		total:   rate.N(shape.Duration),
		attack:  rate.N(shape.Attack),
		release: rate.N(shape.Release),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		v := t.wave(t.phase) * t.gain()
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.inc
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// gain is the envelope level at the current position
func (t *tone) gain() float64 {
	if t.release > 0 && t.pos >= t.total-t.release {
		return float64(t.total-t.pos) / float64(t.release)
	}
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	return 1
}

// math.Log2(0) is -Inf, so 0 volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ToneFrequency maps value within [lo, hi] linearly onto the step tone pitch range
func ToneFrequency(value, lo, hi int) float64 {
	if hi <= lo {
		return constants.StepToneLowHz
	}
	fraction := float64(value-lo) / float64(hi-lo)
	fraction = min(max(fraction, 0), 1)
	return constants.StepToneLowHz + fraction*(constants.StepToneHighHz-constants.StepToneLowHz)
}

// CreateStepTone generates a short blip at freq
func CreateStepTone(freq, volume float64, rate beep.SampleRate) beep.Streamer {
	return newVolume(NewTone(freq, Triangle, stepShape, rate), volume)
}

// CreateChime generates the rising two-note completion chime
func CreateChime(volume float64, rate beep.SampleRate) beep.Streamer {
	notes := beep.Seq(
		NewTone(chimeLowHz, Square, chimeLow, rate),
		NewTone(chimeHighHz, Square, chimeHigh, rate),
	)
	return newVolume(notes, volume*0.5)
}
