package egpwc

import "time"

// computeAuralOutput implements §4.11: fixed-priority first-match aural
// selection and the emission counter. The arbiter reads this tick's mode
// flags, but mode 1/2/5 logic consumed last tick's auralOutput and
// numberOfAuralWarningEmissions before this call — the one-tick-delayed
// feedback loop described in §9.
func (r *Runtime) computeAuralOutput(dt time.Duration, discretes DiscreteInputs) {
	muted := discretes.GpwsInhibit || discretes.AudioInhibit

	selected := AuralNone
	switch {
	case muted:
		selected = AuralNone
	case r.mode1.pullUpActive:
		selected = AuralPullUp
	case r.mode2.pullUpPrefaceActive:
		selected = AuralTerrain
	case r.mode2.pullUpActive:
		selected = AuralPullUp
	case r.mode2.terrainActive:
		selected = AuralTerrain
	case r.mode4.tooLowTerrainVoiceActive:
		selected = AuralTooLowTerrain
	case r.mode4.tooLowGearVoiceActive:
		selected = AuralTooLowGear
	case r.mode4.tooLowFlapsVoiceActive:
		selected = AuralTooLowFlaps
	case r.mode1.sinkrateVoiceActive:
		selected = AuralSinkRate
	case r.mode3.dontSinkActive:
		selected = AuralDontSink
	case r.mode5.softVoiceActive:
		selected = AuralGlideslopeSoft
	case r.mode5.hardVoiceActive:
		selected = AuralGlideslopeHard
	default:
		selected = AuralNone
	}

	if selected != r.auralOutput || selected == AuralNone {
		r.numberOfAuralWarningEmissions = 0
		r.timeSinceFirstEmission = 0
	} else {
		r.timeSinceFirstEmission += dt
		cycle := selected.CycleDuration()
		if cycle > 0 {
			r.numberOfAuralWarningEmissions = uint32(r.timeSinceFirstEmission / cycle)
		}
	}

	r.auralOutput = selected
}
