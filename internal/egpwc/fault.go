package egpwc

import (
	"math"
	"time"
)

// updateFaultLogic performs per-tick signal validation and selection
// (§4.3): choosing RA, vertical speed, and altitude from redundant
// sources, and rolling per-channel faults up into gpwsSysFault.
func (r *Runtime) updateFaultLogic(
	dt time.Duration,
	discretes DiscreteInputs,
	ra1, ra2 RadioAltimeter,
	adr AirDataReferenceBus,
	ir InertialReferenceBus,
	ils InstrumentLandingSystemBus,
) {
	ra1Word := ra1.RadioAltitude()
	ra2Word := ra2.RadioAltitude()

	r.raFault = ra1Word.IsFailureWarning() && ra2Word.IsFailureWarning()
	switch {
	case !ra1Word.IsFailureWarning() && !ra2Word.IsFailureWarning():
		ra1Ft := ra1Word.Value
		ra2Ft := ra2Word.Value
		// Preserves the source's operator precedence literally: use channel 1
		// when it alone is below 2500ft, OR when channel 2 is below 2500ft and
		// the two channels are consistent within 500ft. Otherwise use the
		// greater of the two.
		if ra1Ft < 2500 || (ra2Ft < 2500 && math.Abs(ra1Ft-ra2Ft) < 500) {
			r.raFt = ra1Ft
		} else {
			r.raFt = math.Max(ra1Ft, ra2Ft)
		}
	case !ra1Word.IsFailureWarning():
		r.raFt = ra1Word.Value
	case !ra2Word.IsFailureWarning():
		r.raFt = ra2Word.Value
	default:
		r.raFt = 0
	}

	// V/S selection: IR inertial vertical speed, then ADR vertical speed,
	// then the ADR value regardless of validity (flagging the fault).
	r.vsFault = false
	if vs, ok := ir.InertialVerticalSpeed().NormalValue(); ok {
		r.chosenVerticalSpeedFtMin = vs
	} else if vs, ok := adr.VerticalSpeed().NormalValue(); ok {
		r.chosenVerticalSpeedFtMin = vs
	} else {
		r.vsFault = true
		r.chosenVerticalSpeedFtMin = adr.VerticalSpeed().ValueOrDefault()
	}

	// Altitude selection follows the same pattern.
	r.altitudeFault = false
	if alt, ok := ir.InertialAltitude().NormalValue(); ok {
		r.chosenAltitudeFt = alt
	} else if alt, ok := adr.StandardAltitude().NormalValue(); ok {
		r.chosenAltitudeFt = alt
	} else {
		r.altitudeFault = true
		r.chosenAltitudeFt = adr.StandardAltitude().ValueOrDefault()
	}

	casFault := adr.ComputedAirspeed().IsFailureWarning()
	r.gsFault = ils.GlideslopeDeviation().IsFailureWarning()

	r.audioInhibitConfirm.Update(discretes.AudioInhibit, dt)
	r.gpwsInhibitConfirm.Update(discretes.GpwsInhibit, dt)

	peripheralFailure := r.raFault || casFault

	r.gpwsSysFault = r.audioInhibitConfirm.Output() ||
		r.gpwsInhibitConfirm.Output() ||
		peripheralFailure

	// TODO: TERR system fault logic is not implemented; terrain/obstacle
	// database lookups are an external collaborator per spec scope.
	r.terrSysFault = false
}
