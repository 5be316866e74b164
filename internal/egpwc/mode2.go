package egpwc

import (
	"math"
	"time"

	"github.com/stratux/egpwc/internal/interp"
	"github.com/stratux/egpwc/internal/logic"
)

var (
	mode2AlertBreakpoints    = []float64{2038, 3545, 9800}
	mode2AlertValues         = []float64{30, 1220, 2450}
	mode2BCutoffBreakpoints  = []float64{-1000, -400}
	mode2BCutoffValues       = []float64{600, 200}
)

// mode2State holds mode 2 (excessive closure to terrain)'s scratch state.
type mode2State struct {
	takeoffLatch          *logic.MonostableTriggerNode
	closureRateDerivative *logic.DerivativeNode
	raRateLimiter         *logic.RateLimiter
	closureRateRateLimiter *logic.RateLimiter
	raFilter              *logic.LowPassFilter

	pullUpPrefaceVoiceEmitted bool
	pullUpPrefaceActive       bool
	pullUpActive              bool
	terrainActive             bool
}

func newMode2State() mode2State {
	return mode2State{
		takeoffLatch:           logic.NewMonostableFalling(60 * time.Second),
		closureRateDerivative:  logic.NewDerivativeNode(),
		raRateLimiter:          logic.NewRateLimiter(170),  // ~10 kfpm, the boundary's rough max
		closureRateRateLimiter: logic.NewRateLimiter(2900), // ~1.5g in ft/(min*s)
		raFilter:               logic.NewLowPassFilter(1 * time.Second),
	}
}

// updateMode2 implements §4.6: excessive closure to terrain.
func (r *Runtime) updateMode2(
	dt time.Duration,
	adr AirDataReferenceBus,
	discretes DiscreteInputs,
	ils InstrumentLandingSystemBus,
) {
	r.mode2.takeoffLatch.Update(r.onGround, dt)

	raRatelim := r.mode2.raRateLimiter.Update(dt, r.raFt)
	r.mode2.closureRateDerivative.Update(raRatelim, dt)
	closureRateRaw := r.mode2.closureRateDerivative.Output() * -60 // ft/s -> ft/min

	filteredClosureRate := r.mode2.raFilter.Update(dt,
		r.mode2.closureRateRateLimiter.Update(dt, closureRateRaw))

	gs := ils.GlideslopeDeviation()
	loc := ils.LocalizerDeviation()
	mode2BActive := r.mode2.takeoffLatch.Output() ||
		discretes.LandingFlaps ||
		(gs.IsNormalOperation() && loc.IsNormalOperation() &&
			math.Abs(gs.Value) < 0.175 && math.Abs(loc.Value) < 0.155)

	var upperBoundary float64
	if mode2BActive {
		upperBoundary = 789
	} else {
		cas := adr.ComputedAirspeed().ValueOrDefault()
		upperBoundary = clamp(1650+8.9*(cas-220), 1650, 2450)
	}

	var lowerBoundary float64
	if mode2BActive && discretes.LandingFlaps {
		lowerBoundary = interp.Interp1(mode2BCutoffBreakpoints, mode2BCutoffValues, r.chosenVerticalSpeedFtMin)
	} else {
		lowerBoundary = 30
	}

	boundaryMet := interp.Interp1(mode2AlertBreakpoints, mode2AlertValues, filteredClosureRate) >= r.raFt &&
		filteredClosureRate > 2038 &&
		r.raFt > lowerBoundary && r.raFt < upperBoundary

	auralTerrainOnly := discretes.LandingFlaps && discretes.LandingGearDownlocked

	if boundaryMet && !r.mode2.pullUpPrefaceVoiceEmitted && !auralTerrainOnly {
		r.mode2.pullUpPrefaceVoiceEmitted = r.numberOfAuralWarningEmissions >= 2 && r.auralOutput == AuralTerrain
	} else if !boundaryMet || auralTerrainOnly {
		r.mode2.pullUpPrefaceVoiceEmitted = false
	}

	r.mode2.pullUpPrefaceActive = !auralTerrainOnly && boundaryMet && !r.mode2.pullUpPrefaceVoiceEmitted
	r.mode2.pullUpActive = !auralTerrainOnly && boundaryMet && r.mode2.pullUpPrefaceVoiceEmitted
	r.mode2.terrainActive = auralTerrainOnly && boundaryMet
}
