package logic

import "time"

// RateLimiter caps the slew rate of a scalar signal symmetrically. Its
// state initializes to the first input it observes, so there is no
// artificial ramp-in from zero.
type RateLimiter struct {
	slew        float64 // units per second
	out         float64
	initialized bool
}

// NewRateLimiter builds a RateLimiter with the given symmetric slew cap.
func NewRateLimiter(slewPerSecond float64) *RateLimiter {
	return &RateLimiter{slew: slewPerSecond}
}

// Update advances the limiter by dt toward input and returns the new
// output.
func (r *RateLimiter) Update(dt time.Duration, input float64) float64 {
	if !r.initialized {
		r.out = input
		r.initialized = true
		return r.out
	}
	step := r.slew * dt.Seconds()
	lo, hi := r.out-step, r.out+step
	switch {
	case input < lo:
		r.out = lo
	case input > hi:
		r.out = hi
	default:
		r.out = input
	}
	return r.out
}

// Output returns the limiter's current output without advancing it.
func (r *RateLimiter) Output() float64 {
	return r.out
}
