package egpwc

// computeLampOutput implements §4.10: lamp composition from the mode 1, 2
// and 5 voice/lamp flags, gated by the GPWS inhibit discrete. Format
// choice is a pin program read once at startup.
func (r *Runtime) computeLampOutput(discretes DiscreteInputs) {
	inhibited := discretes.GpwsInhibit

	if r.pinPrograms.AlternateLampFormat {
		r.warningLampActivated = (r.mode1.pullUpActive || r.mode2.pullUpActive) && !inhibited
		r.alertLampActivated = (r.mode1.sinkrateLampActive || r.mode2.pullUpPrefaceActive ||
			r.mode2.terrainActive || r.mode5.lampActive) && !inhibited
		return
	}

	r.warningLampActivated = (r.mode1.sinkrateLampActive || r.mode1.pullUpActive ||
		r.mode2.pullUpActive || r.mode2.pullUpPrefaceActive || r.mode2.terrainActive) && !inhibited
	r.alertLampActivated = r.mode5.lampActive && !inhibited
}
