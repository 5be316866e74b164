package logic

import (
	"math"
	"testing"
	"time"
)

func TestConfirmationNodeRising(t *testing.T) {
	c := NewRisingConfirmation(800 * time.Millisecond)

	if c.Output() != false {
		t.Fatalf("expected initial output false, got %v", c.Output())
	}

	// Condition true but not long enough.
	if got := c.Update(true, 500*time.Millisecond); got {
		t.Errorf("expected no flip before T elapsed, got %v", got)
	}
	// Crossing T.
	if got := c.Update(true, 400*time.Millisecond); !got {
		t.Errorf("expected flip to true once T elapsed, got %v", got)
	}
	// Dropping the condition resets instantly.
	if got := c.Update(false, 10*time.Millisecond); got {
		t.Errorf("expected instant drop to false on leaving armed direction, got %v", got)
	}
}

func TestConfirmationNodeFalling(t *testing.T) {
	c := NewFallingConfirmation(200 * time.Millisecond)

	if c.Output() != true {
		t.Fatalf("expected initial output true, got %v", c.Output())
	}

	if got := c.Update(false, 100*time.Millisecond); !got {
		t.Errorf("expected still true before T elapsed, got %v", got)
	}
	if got := c.Update(false, 150*time.Millisecond); got {
		t.Errorf("expected flip to false once T elapsed, got %v", got)
	}
	if got := c.Update(true, 10*time.Millisecond); !got {
		t.Errorf("expected instant rise to true on leaving armed direction, got %v", got)
	}
}

func TestConfirmationNodeResetsAccumulator(t *testing.T) {
	c := NewRisingConfirmation(1 * time.Second)
	c.Update(true, 900*time.Millisecond)
	c.Update(false, 1*time.Millisecond) // resets accumulator
	if got := c.Update(true, 900*time.Millisecond); got {
		t.Errorf("expected accumulator to have reset, got premature flip to %v", got)
	}
}

func TestMonostableFallingEdge(t *testing.T) {
	m := NewMonostableFalling(60 * time.Second)

	// First sample primes prev=true, no trigger yet.
	if got := m.Update(true, 1*time.Second); got {
		t.Errorf("expected no hold before a falling edge, got %v", got)
	}
	// true -> false is the armed edge.
	if got := m.Update(false, 1*time.Second); !got {
		t.Errorf("expected hold active immediately after falling edge, got %v", got)
	}
	// Hold persists under T.
	if got := m.Update(false, 50*time.Second); !got {
		t.Errorf("expected hold still active 50s into the 60s hold, got %v", got)
	}
	// Hold expires at T.
	if got := m.Update(false, 10*time.Second); got {
		t.Errorf("expected hold expired past 60s, got %v", got)
	}
}

func TestMonostableRetriggerRestartsTimer(t *testing.T) {
	m := NewMonostableFalling(10 * time.Second)
	m.Update(true, 0)
	m.Update(false, 8*time.Second) // trigger, remaining = 10s
	m.Update(false, 5*time.Second) // remaining = 5s, still held
	// Re-trigger: true then false again restarts the full hold.
	m.Update(true, 0)
	m.Update(false, 0) // retrigger, remaining = 10s
	if got := m.Update(false, 9*time.Second); !got {
		t.Errorf("expected retrigger to restart the 10s hold, got %v at 9s", got)
	}
	if got := m.Update(false, 2*time.Second); got {
		t.Errorf("expected hold expired after retrigger + 11s, got %v", got)
	}
}

func TestRateLimiterInitializesToFirstInput(t *testing.T) {
	r := NewRateLimiter(170)
	if got := r.Update(time.Second, 5000); got != 5000 {
		t.Errorf("expected first sample to pass through unclamped, got %v", got)
	}
}

func TestRateLimiterClampsSlew(t *testing.T) {
	r := NewRateLimiter(10) // 10 units/sec
	r.Update(0, 0)
	got := r.Update(1*time.Second, 1000)
	if got != 10 {
		t.Errorf("expected slew-limited output 10, got %v", got)
	}
	got = r.Update(1*time.Second, -1000)
	if got != 0 {
		t.Errorf("expected slew-limited output 0 (10 - 10), got %v", got)
	}
}

func TestLowPassFilterZeroDtPassthrough(t *testing.T) {
	f := NewLowPassFilter(1 * time.Second)
	before := f.Update(time.Second, 100)
	got := f.Update(0, 999)
	if got != before {
		t.Errorf("zero Δt should not change output, got %v", got)
	}
}

func TestLowPassFilterConverges(t *testing.T) {
	f := NewLowPassFilter(1 * time.Second)
	var out float64
	for i := 0; i < 600; i++ {
		out = f.Update(10*time.Millisecond, 100)
	}
	if math.Abs(out-100) > 0.5 {
		t.Errorf("expected filter to converge near 100 after 6s, got %v", out)
	}
}

func TestDerivativeNodeFirstSampleIsZero(t *testing.T) {
	d := NewDerivativeNode()
	if got := d.Update(100, time.Second); got != 0 {
		t.Errorf("expected first sample derivative 0, got %v", got)
	}
}

func TestDerivativeNodeZeroDt(t *testing.T) {
	d := NewDerivativeNode()
	d.Update(0, time.Second)
	if got := d.Update(100, 0); got != 0 {
		t.Errorf("expected Δt=0 derivative 0, got %v", got)
	}
}

func TestDerivativeNodeComputesSlope(t *testing.T) {
	d := NewDerivativeNode()
	d.Update(0, time.Second)
	got := d.Update(10, 2*time.Second)
	if got != 5 {
		t.Errorf("expected slope 5, got %v", got)
	}
}
