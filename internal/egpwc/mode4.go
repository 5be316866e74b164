package egpwc

// mode4State holds mode 4 (unsafe terrain clearance)'s voice flags. Mode 4
// is stubbed: the flags exist and are consumed by the aural arbiter at
// their specified priority slots, but nothing in this core ever sets them
// true (requires a terrain/gear/flap configuration input this core does
// not have).
type mode4State struct {
	tooLowGearVoiceActive    bool
	tooLowFlapsVoiceActive   bool
	tooLowTerrainVoiceActive bool
}

// updateMode4 is a no-op preserving the data-flow contract: mode 4's
// outputs are always false, but the aural arbiter still reads them.
func (r *Runtime) updateMode4() {}
