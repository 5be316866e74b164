package egpwc

import (
	"testing"
	"time"

	"github.com/stratux/egpwc/internal/arinc"
)

type fakeRA struct {
	altitudeFt float64
	failed     bool
}

func (f *fakeRA) RadioAltitude() arinc.Word[float64] {
	switch {
	case f.failed:
		return arinc.New(0.0, arinc.FailureWarning)
	case f.altitudeFt < -20:
		return arinc.New(-20.0, arinc.NoComputedData)
	case f.altitudeFt > 8192:
		return arinc.New(8192.0, arinc.NoComputedData)
	default:
		return arinc.New(f.altitudeFt, arinc.NormalOperation)
	}
}

type fakeADR struct {
	casKt         float64
	verticalSpeed float64
	altitudeFt    float64
	casFailed     bool
}

func (f *fakeADR) ComputedAirspeed() arinc.Word[float64] {
	if f.casFailed {
		return arinc.New(0.0, arinc.FailureWarning)
	}
	return arinc.New(f.casKt, arinc.NormalOperation)
}
func (f *fakeADR) VerticalSpeed() arinc.Word[float64] {
	return arinc.New(f.verticalSpeed, arinc.NormalOperation)
}
func (f *fakeADR) StandardAltitude() arinc.Word[float64] {
	return arinc.New(f.altitudeFt, arinc.NormalOperation)
}

type fakeIR struct {
	altitudeFt    float64
	verticalSpeed float64
	pitchDeg      float64
	trackDeg      float64
}

func (f *fakeIR) InertialAltitude() arinc.Word[float64] {
	return arinc.New(f.altitudeFt, arinc.NormalOperation)
}
func (f *fakeIR) InertialVerticalSpeed() arinc.Word[float64] {
	return arinc.New(f.verticalSpeed, arinc.NormalOperation)
}
func (f *fakeIR) PitchAngle() arinc.Word[float64] {
	return arinc.New(f.pitchDeg, arinc.NormalOperation)
}
func (f *fakeIR) MagneticTrack() arinc.Word[float64] {
	return arinc.New(f.trackDeg, arinc.NormalOperation)
}

type fakeILS struct {
	hasGlideslope      bool
	glideslopeDeviation float64
	localizerDeviation  float64
	runwayHeadingDeg    float64
	failed              bool
}

func (f *fakeILS) GlideslopeDeviation() arinc.Word[float64] {
	switch {
	case f.failed:
		return arinc.New(f.glideslopeDeviation, arinc.FailureWarning)
	case f.hasGlideslope:
		return arinc.New(f.glideslopeDeviation, arinc.NormalOperation)
	default:
		return arinc.New(f.glideslopeDeviation, arinc.NoComputedData)
	}
}
func (f *fakeILS) LocalizerDeviation() arinc.Word[float64] {
	if f.failed {
		return arinc.New(f.localizerDeviation, arinc.FailureWarning)
	}
	return arinc.New(f.localizerDeviation, arinc.NormalOperation)
}
func (f *fakeILS) RunwayHeading() arinc.Word[float64] {
	if f.failed {
		return arinc.New(f.runwayHeadingDeg, arinc.FailureWarning)
	}
	return arinc.New(f.runwayHeadingDeg, arinc.NormalOperation)
}

type harness struct {
	rt        *Runtime
	discretes DiscreteInputs
	ra1, ra2  fakeRA
	adr       fakeADR
	ir        fakeIR
	ils       fakeILS
}

func newHarness(selfTest time.Duration, onGround bool, phase FlightPhase) *harness {
	h := &harness{
		rt: New(selfTest, onGround, phase, PinProgramConfig{}),
	}
	h.ra1.altitudeFt = 1500
	h.ra2.altitudeFt = 1500
	h.adr.casKt = 250
	h.adr.altitudeFt = 1500
	h.ir.altitudeFt = 1500
	if selfTest == 0 {
		// Falling confirmation nodes start on their true output (mode 1's
		// 200ms lamp and pull-up chains, the 3s reposition debounce); one
		// settling tick clears them before the test starts asserting.
		h.tick(3 * time.Second)
	}
	return h
}

func (h *harness) tick(d time.Duration) {
	h.rt.Update(d, h.discretes, &h.ra1, &h.ra2, &h.adr, &h.ir, &h.ils)
}

func (h *harness) tickRepeated(step time.Duration, total time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		h.tick(step)
	}
}

func (h *harness) assertNoWarning(t *testing.T) {
	t.Helper()
	out := h.rt.Outputs()
	if out.AudioOn {
		t.Fatalf("expected AudioOn=false, aural=%v", out.AuralOutput)
	}
	if out.AuralOutput != AuralNone {
		t.Fatalf("expected AuralOutput=None, got %v", out.AuralOutput)
	}
	if out.WarningLamp {
		t.Fatal("expected WarningLamp=false")
	}
	if out.AlertLamp {
		t.Fatal("expected AlertLamp=false")
	}
}

func TestSelfTestAfterPowerCycle(t *testing.T) {
	h := newHarness(60*time.Second, true, Takeoff)
	h.tick(time.Millisecond)
	if !h.rt.Outputs().GpwsInop {
		t.Fatal("expected GpwsInop=true during startup gate")
	}
	h.assertNoWarning(t)
}

func TestSelfTestClearsAfterStartupDuration(t *testing.T) {
	h := newHarness(60*time.Second, true, Takeoff)
	h.tickRepeated(time.Second, 61*time.Second)
	if h.rt.Outputs().GpwsInop {
		t.Fatal("expected GpwsInop=false once startup completes")
	}
	h.assertNoWarning(t)
}

func TestRaFailureSetsInopAndClears(t *testing.T) {
	h := newHarness(0, false, Approach)
	h.ra1.altitudeFt, h.ra2.altitudeFt = 2500, 2500
	h.tick(time.Millisecond)
	if h.rt.Outputs().GpwsInop {
		t.Fatal("expected GpwsInop=false before fault injected")
	}

	h.ra1.failed, h.ra2.failed = true, true
	h.tick(time.Millisecond)
	out := h.rt.Outputs()
	if !out.GpwsInop {
		t.Fatal("expected GpwsInop=true with both RA channels failed")
	}
	h.assertNoWarning(t)

	h.ra1.failed, h.ra2.failed = false, false
	h.tick(time.Millisecond)
	if h.rt.Outputs().GpwsInop {
		t.Fatal("expected GpwsInop=false once RA failure clears")
	}
}

func TestMode1SinkrateThenPullUp(t *testing.T) {
	h := newHarness(0, false, Approach)
	h.ra1.altitudeFt, h.ra2.altitudeFt = 1500, 1500
	h.adr.altitudeFt, h.ir.altitudeFt = 1500, 1500
	h.adr.casKt = 250
	h.tick(time.Millisecond)
	h.assertNoWarning(t)

	h.adr.verticalSpeed = -4000
	h.ir.verticalSpeed = -4000
	h.tick(time.Millisecond)
	h.assertNoWarning(t)

	h.tickRepeated(10*time.Millisecond, time.Second)
	out := h.rt.Outputs()
	if !out.AudioOn || out.AuralOutput != AuralSinkRate {
		t.Fatalf("expected SinkRate after 1s at -4000fpm, got aural=%v audioOn=%v", out.AuralOutput, out.AudioOn)
	}
	if !out.WarningLamp {
		t.Fatal("expected WarningLamp=true")
	}

	h.adr.verticalSpeed = -5000
	h.ir.verticalSpeed = -5000
	h.tickRepeated(10*time.Millisecond, 1700*time.Millisecond)
	out = h.rt.Outputs()
	if out.AuralOutput != AuralPullUp {
		t.Fatalf("expected PullUp within 1.7s at -5000fpm, got %v", out.AuralOutput)
	}

	h.discretes.GpwsInhibit = true
	h.tick(time.Millisecond)
	h.assertNoWarning(t)

	h.discretes.GpwsInhibit = false
	h.tick(time.Millisecond)
	out = h.rt.Outputs()
	if out.AuralOutput != AuralPullUp {
		t.Fatalf("expected PullUp to return immediately, got %v", out.AuralOutput)
	}

	h.adr.verticalSpeed = -1000
	h.ir.verticalSpeed = -1000
	h.tickRepeated(10*time.Millisecond, 300*time.Millisecond)
	h.assertNoWarning(t)
}

func TestMode5SoftDeclutterEnabled(t *testing.T) {
	h := newHarness(0, false, Approach)
	h.discretes.LandingGearDownlocked = true
	h.discretes.LandingFlaps = true
	h.ra1.altitudeFt, h.ra2.altitudeFt = 400, 400
	h.ils.hasGlideslope = true
	h.ils.glideslopeDeviation = -1.5 * 0.0875

	h.tick(time.Millisecond)
	out := h.rt.Outputs()
	if out.AuralOutput != AuralGlideslopeSoft {
		t.Fatalf("expected GlideslopeSoft once armed and boundary met, got %v", out.AuralOutput)
	}

	h.tick(time.Millisecond)
	out = h.rt.Outputs()
	if out.AuralOutput == AuralGlideslopeSoft && h.rt.numberOfAuralWarningEmissions > 1 {
		t.Fatal("expected no re-emission while boundary unchanged under declutter-enabled ratcheting")
	}
}

func TestRepositionOverrideBypassesPhaseMachine(t *testing.T) {
	h := newHarness(0, true, Takeoff)
	h.discretes.SimRepositionActive = true
	h.ra1.altitudeFt, h.ra2.altitudeFt = 300, 300
	h.adr.casKt = 40

	h.tickRepeated(100*time.Millisecond, 3*time.Second)

	if h.rt.GetFlightPhase() != Approach {
		t.Fatalf("expected Approach phase during reposition with RA>=245, got %v", h.rt.GetFlightPhase())
	}
}

func TestAudioOnImpliesAuralOutputPresent(t *testing.T) {
	h := newHarness(0, false, Approach)
	h.adr.verticalSpeed, h.ir.verticalSpeed = -4500, -4500
	h.tickRepeated(50*time.Millisecond, 2*time.Second)

	out := h.rt.Outputs()
	if out.AudioOn != (out.AuralOutput != AuralNone) {
		t.Fatalf("AudioOn=%v inconsistent with AuralOutput=%v", out.AudioOn, out.AuralOutput)
	}
}

func TestGpwsInopImpliesNoLampsOrAural(t *testing.T) {
	h := newHarness(60*time.Second, false, Approach)
	h.adr.verticalSpeed, h.ir.verticalSpeed = -5000, -5000
	h.tick(time.Millisecond)

	out := h.rt.Outputs()
	if !out.GpwsInop {
		t.Fatal("expected GpwsInop=true during startup")
	}
	if out.WarningLamp || out.AlertLamp || out.AuralOutput != AuralNone {
		t.Fatal("expected all lamps/aural suppressed while GpwsInop")
	}
}

func TestEmissionCounterResetsOnAuralTransition(t *testing.T) {
	h := newHarness(0, false, Approach)
	h.adr.verticalSpeed, h.ir.verticalSpeed = -4000, -4000
	h.tickRepeated(50*time.Millisecond, 2*time.Second)
	if h.rt.GetAuralOutput() != AuralSinkRate {
		t.Skip("scenario setup did not reach SinkRate; skipping counter check")
	}

	h.adr.verticalSpeed, h.ir.verticalSpeed = 0, 0
	h.tick(300 * time.Millisecond)
	if h.rt.GetAuralOutput() == AuralSinkRate {
		return
	}
	if h.rt.numberOfAuralWarningEmissions != 0 {
		t.Fatalf("expected emission counter to reset to 0 on transition, got %d", h.rt.numberOfAuralWarningEmissions)
	}
}
