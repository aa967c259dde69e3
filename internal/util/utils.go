package util

import (
	"time"
)

// Debugf is the subset of the logger used by TimeTrack
type Debugf interface {
	Debugf(format string, v ...interface{})
}

// Lerp performs linear interpolation between a and b with t in [0,1]
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Clamp restricts a value to be between min and max
func Clamp(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampInt restricts an integer to be between min and max
func ClampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// MinInt returns the smaller of a and b
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// TimeTrack logs how long a stage took.
// Usage: defer util.TimeTrack(log, time.Now(), "synthesize")
func TimeTrack(log Debugf, start time.Time, name string) {
	if log == nil {
		return
	}
	log.Debugf("%s took %s", name, time.Since(start))
}
