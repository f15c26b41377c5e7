package app

import "time"

// Clock provides wall time and the step delay
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock uses the real monotonic clock
type SystemClock struct{}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for d
func (SystemClock) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
