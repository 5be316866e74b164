package logic

import "time"

// LowPassFilter is a discrete one-pole low-pass filter parameterized by
// time constant tau.
type LowPassFilter struct {
	tau time.Duration
	out float64
}

// NewLowPassFilter builds a LowPassFilter with the given time constant.
func NewLowPassFilter(tau time.Duration) *LowPassFilter {
	return &LowPassFilter{tau: tau}
}

// Update advances the filter by dt toward input and returns the new
// output. A degenerate dt=0 passes through unchanged rather than dividing
// by zero.
func (f *LowPassFilter) Update(dt time.Duration, input float64) float64 {
	denom := dt + f.tau
	if denom <= 0 {
		return f.out
	}
	alpha := dt.Seconds() / denom.Seconds()
	f.out += (input - f.out) * alpha
	return f.out
}

// Output returns the filter's current output without advancing it.
func (f *LowPassFilter) Output() float64 {
	return f.out
}
