package egpwc

import (
	"math"
	"time"

	"github.com/stratux/egpwc/internal/interp"
)

var (
	mode5SoftUpperBreakpoints = []float64{-500, 0}
	mode5SoftUpperValues      = []float64{1000, 500}
	mode5SoftBreakpoints      = []float64{1.3, 2.7}
	mode5SoftValues           = []float64{150, 50}
	mode5HardBreakpoints      = []float64{2, 3.4}
	mode5HardValues           = []float64{150, 50}
)

// mode5State holds mode 5 (descent below glideslope)'s scratch state.
type mode5State struct {
	timeToNextAural            time.Duration
	declutterThresholdIncrease float64

	softVoiceActive bool
	hardVoiceActive bool
	lampActive      bool
}

func newMode5State() mode5State {
	return mode5State{}
}

// updateMode5 implements §4.9: descent below glideslope.
func (r *Runtime) updateMode5(
	dt time.Duration,
	ils InstrumentLandingSystemBus,
	ir InertialReferenceBus,
	discretes DiscreteInputs,
) {
	gs := ils.GlideslopeDeviation()
	loc := ils.LocalizerDeviation()
	track := ir.MagneticTrack()

	locDots := loc.ValueOrDefault() / 0.0775
	gsFlyUpDots := -gs.ValueOrDefault() / 0.0875

	// TODO: FLS and mixed LOC/FLS selection are external collaborators not
	// modeled by this core; both are always unselected.
	flsSelected := false
	mixLocFlsSelected := false

	headingDifference := math.Mod(track.ValueOrDefault()-ils.RunwayHeading().ValueOrDefault()+540, 360) - 180

	armed := !flsSelected &&
		!mixLocFlsSelected &&
		gs.IsNormalOperation() &&
		!discretes.GlideslopeInhibit &&
		(discretes.LandingFlaps || r.flightPhase == Approach) &&
		discretes.LandingGearDownlocked &&
		(math.Abs(headingDifference) < 50 || !track.IsNormalOperation()) &&
		(math.Abs(locDots) < 2 || r.raFt < 500)

	hardBoundaryMet := interp.Interp1(mode5HardBreakpoints, mode5HardValues, gsFlyUpDots) < r.raFt &&
		gsFlyUpDots > 2.0 &&
		r.raFt < 300 && r.raFt > 50 &&
		armed

	softUpperBoundaryFt := interp.Interp1(mode5SoftUpperBreakpoints, mode5SoftUpperValues, r.chosenVerticalSpeedFtMin)

	softLampBoundaryMet := interp.Interp1(mode5SoftBreakpoints, mode5SoftValues, gsFlyUpDots) < r.raFt &&
		gsFlyUpDots > 1.3 &&
		r.raFt < softUpperBoundaryFt && r.raFt > 50 &&
		armed

	softAuralBoundaryBiased := gsFlyUpDots / (1 + r.mode5.declutterThresholdIncrease)
	softAuralBoundaryMet := interp.Interp1(mode5SoftBreakpoints, mode5SoftValues, softAuralBoundaryBiased) < r.raFt &&
		softAuralBoundaryBiased > 1.3 &&
		r.raFt < softUpperBoundaryFt && r.raFt > 50 &&
		armed

	r.mode5.lampActive = armed && (softLampBoundaryMet || hardBoundaryMet)

	if r.pinPrograms.AudioDeclutterDisable {
		r.updateMode5CadenceDeclutterDisabled(dt, hardBoundaryMet, softAuralBoundaryMet, gsFlyUpDots)
	} else {
		r.updateMode5CadenceDeclutterEnabled(dt, hardBoundaryMet, softLampBoundaryMet, softAuralBoundaryMet)
	}
}

// updateMode5CadenceDeclutterDisabled implements the "always active with a
// pause" cadence used when audio declutter is disabled (the pin is true):
// both voices are active whenever their boundary is met and no pause is
// pending; emitting either one starts a pause scaled by RA and deviation.
func (r *Runtime) updateMode5CadenceDeclutterDisabled(
	dt time.Duration,
	hardBoundaryMet, softAuralBoundaryMet bool,
	gsFlyUpDots float64,
) {
	r.mode5.softVoiceActive = softAuralBoundaryMet && !hardBoundaryMet && r.mode5.timeToNextAural == 0
	r.mode5.hardVoiceActive = hardBoundaryMet && r.mode5.timeToNextAural == 0

	pause := time.Duration(r.raFt / math.Abs(gsFlyUpDots) * 0.0067 * float64(time.Second))

	switch {
	case !(hardBoundaryMet || softAuralBoundaryMet):
		r.mode5.timeToNextAural = 0
	case r.mode5.timeToNextAural == 0 &&
		(r.auralOutput == AuralGlideslopeHard || r.auralOutput == AuralGlideslopeSoft) &&
		r.numberOfAuralWarningEmissions > 0:
		r.mode5.timeToNextAural = pause
	default:
		r.mode5.timeToNextAural -= dt
		if r.mode5.timeToNextAural < 0 {
			r.mode5.timeToNextAural = 0
		}
	}
}

// updateMode5CadenceDeclutterEnabled implements the ratcheted cadence used
// when audio declutter is enabled (the pin is false): the soft voice
// retires until the boundary worsens by the declutter increment, the hard
// voice repeats every 3s.
func (r *Runtime) updateMode5CadenceDeclutterEnabled(
	dt time.Duration,
	hardBoundaryMet, softLampBoundaryMet, softAuralBoundaryMet bool,
) {
	r.mode5.softVoiceActive = softAuralBoundaryMet && !hardBoundaryMet
	r.mode5.hardVoiceActive = hardBoundaryMet && r.mode5.timeToNextAural == 0

	switch {
	case !softLampBoundaryMet:
		r.mode5.declutterThresholdIncrease = 0
	case r.mode5.softVoiceActive && r.auralOutput == AuralGlideslopeSoft && r.numberOfAuralWarningEmissions > 0:
		r.mode5.declutterThresholdIncrease += 0.2
	}

	switch {
	case !hardBoundaryMet:
		r.mode5.timeToNextAural = 0
	case r.mode5.timeToNextAural == 0 && r.auralOutput == AuralGlideslopeHard && r.numberOfAuralWarningEmissions > 0:
		r.mode5.timeToNextAural = 3 * time.Second
	default:
		r.mode5.timeToNextAural -= dt
		if r.mode5.timeToNextAural < 0 {
			r.mode5.timeToNextAural = 0
		}
	}
}
