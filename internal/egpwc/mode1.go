package egpwc

import (
	"time"

	"github.com/stratux/egpwc/internal/interp"
	"github.com/stratux/egpwc/internal/logic"
)

var (
	mode1AlertBreakpoints = []float64{-5007, -964}
	mode1AlertValues      = []float64{2450, 10}
	mode1WarnBreakpoints  = []float64{-7125, -1710, -1482}
	mode1WarnValues       = []float64{2450, 284, 10}
)

// mode1State holds mode 1 (excessive descent rate)'s scratch state.
type mode1State struct {
	sinkrateConfirm1 *logic.ConfirmationNode
	sinkrateConfirm2 *logic.ConfirmationNode
	pullUpConfirm1   *logic.ConfirmationNode
	pullUpConfirm2   *logic.ConfirmationNode

	sinkrateTimeToImpactMin        float64
	emittedForCurrentTimeToImpact  bool

	sinkrateLampActive  bool
	sinkrateVoiceActive bool
	pullUpActive        bool
}

func newMode1State() mode1State {
	return mode1State{
		sinkrateConfirm1: logic.NewRisingConfirmation(800 * time.Millisecond),
		sinkrateConfirm2: logic.NewFallingConfirmation(200 * time.Millisecond),
		pullUpConfirm1:   logic.NewRisingConfirmation(1600 * time.Millisecond),
		pullUpConfirm2:   logic.NewFallingConfirmation(200 * time.Millisecond),
	}
}

// updateMode1 implements §4.5: excessive descent rate.
func (r *Runtime) updateMode1(dt time.Duration, ils InstrumentLandingSystemBus) {
	// Bias applies only when audio declutter is enabled (i.e. the disable
	// pin is false); it removes unnecessary warnings while repositioning
	// onto the glideslope beam.
	biasedVerticalSpeed := r.chosenVerticalSpeedFtMin
	if !r.pinPrograms.AudioDeclutterDisable {
		gsRatio := ils.GlideslopeDeviation().ValueOrDefault()
		biasedVerticalSpeed += 300 *
			clamp(r.raFt/100, 0, 1) *
			clamp(gsRatio/0.175, 0, 1)
	}

	alertBoundaryMet := interp.Interp1(mode1AlertBreakpoints, mode1AlertValues, biasedVerticalSpeed) >= r.raFt &&
		r.raFt > 10 && r.raFt < 2450 &&
		biasedVerticalSpeed < -964

	warningBoundaryMet := interp.Interp1(mode1WarnBreakpoints, mode1WarnValues, r.chosenVerticalSpeedFtMin) >= r.raFt &&
		r.raFt > 10 && r.raFt < 2450 &&
		r.chosenVerticalSpeedFtMin < -1482

	r.mode1.sinkrateLampActive = r.mode1.sinkrateConfirm2.Update(
		r.mode1.sinkrateConfirm1.Update(alertBoundaryMet, dt), dt)

	r.mode1.pullUpActive = r.mode1.pullUpConfirm2.Update(
		r.mode1.pullUpConfirm1.Update(warningBoundaryMet, dt), dt)

	// Sink-rate ratcheting, used only with audio declutter: track the time
	// to impact at last emission, and only re-announce once it has worsened
	// by 20%.
	currentTimeToImpactMin := r.raFt / -r.chosenVerticalSpeedFtMin
	worsenedBy20Percent := currentTimeToImpactMin < r.mode1.sinkrateTimeToImpactMin*0.8

	if (r.mode1.sinkrateTimeToImpactMin == 0 || worsenedBy20Percent) && r.mode1.sinkrateLampActive {
		r.mode1.sinkrateTimeToImpactMin = currentTimeToImpactMin
	} else if !r.mode1.sinkrateLampActive {
		r.mode1.sinkrateTimeToImpactMin = 0
	}

	sinkrateVoiceEmittedTwice := r.numberOfAuralWarningEmissions >= 2 && r.auralOutput == AuralSinkRate

	if !r.mode1.emittedForCurrentTimeToImpact && sinkrateVoiceEmittedTwice && !worsenedBy20Percent {
		r.mode1.emittedForCurrentTimeToImpact = true
	} else if (r.mode1.emittedForCurrentTimeToImpact && worsenedBy20Percent) || !r.mode1.sinkrateLampActive {
		r.mode1.emittedForCurrentTimeToImpact = false
	}

	r.mode1.sinkrateVoiceActive = r.mode1.sinkrateLampActive &&
		!r.mode1.pullUpActive &&
		(r.pinPrograms.AudioDeclutterDisable || !r.mode1.emittedForCurrentTimeToImpact)
}
