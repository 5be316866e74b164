package egpwc

import "time"

// updatePhaseLogic tracks on-ground vs airborne and takeoff vs approach
// (§4.4), with a reposition override that bypasses the normal state
// machine entirely while active.
func (r *Runtime) updatePhaseLogic(
	dt time.Duration,
	discretes DiscreteInputs,
	adr AirDataReferenceBus,
	ir InertialReferenceBus,
) {
	cas := adr.ComputedAirspeed().ValueOrDefault()

	groundToAirRaSpeedCondition := r.raFt >= 25 && cas >= 90
	r.groundToAirConfirm.Update(groundToAirRaSpeedCondition, dt)

	groundToAirPitchCondition := ir.PitchAngle().ValueOrDefault() >= 5
	airToGroundCondition := r.raFt < 25 && cas > 60

	if r.repositionConfirm.Output() {
		r.onGround = !groundToAirRaSpeedCondition
		if r.raFt >= 245 {
			r.flightPhase = Approach
		} else {
			r.flightPhase = Takeoff
		}
		return
	}

	if r.onGround && groundToAirRaSpeedCondition &&
		(groundToAirPitchCondition || r.groundToAirConfirm.Output()) {
		r.onGround = false
	} else if !r.onGround && airToGroundCondition {
		r.onGround = true
	}

	// TODO: add the missing no-mode-4B-warning condition; the source carries
	// an unresolved "&& true" placeholder here (open question, §9).
	approachToTakeoffCondition := r.raFt < 245

	if r.flightPhase == Takeoff && !r.onGround {
		r.takeoffToApproachIntegrator += clamp(r.chosenAltitudeFt, 0, 700) * dt.Seconds()
	} else {
		r.takeoffToApproachIntegrator = 0
	}

	// TODO: per the source's comment, this should integrate altitude above
	// the field rather than barometric altitude; kept as-is (open question).
	takeoffToApproachCondition := !r.pinPrograms.AudioDeclutterDisable &&
		r.takeoffToApproachIntegrator > 84_700

	if r.flightPhase == Takeoff && takeoffToApproachCondition {
		r.flightPhase = Approach
	} else if r.flightPhase == Approach && approachToTakeoffCondition {
		r.flightPhase = Takeoff
	}
}
