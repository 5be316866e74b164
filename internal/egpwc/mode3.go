package egpwc

import (
	"time"

	"github.com/stratux/egpwc/internal/interp"
)

var (
	mode3AlertBreakpoints = []float64{8, 143}
	mode3AlertValues      = []float64{30, 1500}
)

// mode3State holds mode 3 (altitude loss after takeoff)'s scratch state.
type mode3State struct {
	maxAchievedAltFt float64

	lampActive       bool
	dontSinkActive   bool
}

func newMode3State() mode3State {
	return mode3State{}
}

// updateMode3 implements altitude loss after takeoff.
//
// maxAchievedAltFt is never reset when the mode disarms. No concrete
// "reset on next takeoff" trigger is defined, so none is invented here
// (see DESIGN.md).
func (r *Runtime) updateMode3(dt time.Duration) {
	_ = dt
	mode3Enabled := r.flightPhase == Takeoff &&
		r.raFt < 1500 &&
		r.chosenVerticalSpeedFtMin < 0

	if mode3Enabled && r.chosenAltitudeFt > r.mode3.maxAchievedAltFt {
		r.mode3.maxAchievedAltFt = r.chosenAltitudeFt
	}

	lossFt := r.mode3.maxAchievedAltFt - r.chosenAltitudeFt

	// TODO: should track altitude above field, not barometric altitude, per
	// the source's comment (open question, §9).
	r.mode3.lampActive = interp.Interp1(mode3AlertBreakpoints, mode3AlertValues, lossFt) < r.raFt &&
		lossFt > 8 && r.raFt > 30

	// The DontSink voice flag is declared and consumed by the arbiter but
	// never driven, matching the source (open question #3, DESIGN.md).
	r.mode3.dontSinkActive = false
}
