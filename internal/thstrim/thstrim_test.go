package thstrim

import "testing"

func TestReferenceDeflectionExactBreakpoint(t *testing.T) {
	got := ReferenceDeflection(48, 15)
	if got != 3.7 {
		t.Fatalf("ReferenceDeflection(48, 15) = %v, want 3.7", got)
	}
}

func TestReferenceDeflectionSnapsBeyondEdges(t *testing.T) {
	low := ReferenceDeflection(10, 5)
	atEdge := ReferenceDeflection(48, 15)
	if low != atEdge {
		t.Fatalf("out-of-range lookup should binary-snap to the nearest edge: got %v, want %v", low, atEdge)
	}

	high := ReferenceDeflection(200, 200)
	atFarEdge := ReferenceDeflection(79, 40)
	if high != atFarEdge {
		t.Fatalf("out-of-range lookup should binary-snap to the nearest edge: got %v, want %v", high, atFarEdge)
	}
}

func TestReferenceDeflectionInterpolatesInterior(t *testing.T) {
	got := ReferenceDeflection(49, 15)
	if got <= 3.7 || got >= 4.3 {
		t.Fatalf("ReferenceDeflection(49, 15) = %v, want strictly between the bracketing rows", got)
	}
}

func TestSpeedControllerClampsToLimit(t *testing.T) {
	c := NewSpeedController()
	speed := c.Speed(1.0, 0.0)
	if speed > manualSpeedLimit || speed < -manualSpeedLimit {
		t.Fatalf("Speed() = %v, want within ±%v", speed, manualSpeedLimit)
	}
	if speed != manualSpeedLimit {
		t.Fatalf("Speed() with a full-scale error should saturate at %v, got %v", manualSpeedLimit, speed)
	}
}

func TestSpeedControllerZeroErrorIsZero(t *testing.T) {
	c := NewSpeedController()
	speed := c.Speed(0.5, 0.5)
	if speed != 0 {
		t.Fatalf("Speed() with zero position error = %v, want 0", speed)
	}
}
