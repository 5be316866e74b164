package egpwc

import (
	"time"

	"github.com/stratux/egpwc/internal/logic"
)

// Runtime is the singleton per-computer runtime state. All of it is owned
// exclusively by one Runtime instance; nothing here is shared between
// instances except the constant breakpoint tables, which are read-only.
type Runtime struct {
	pinPrograms      PinProgramConfig
	remainingStartup time.Duration

	repositionConfirm *logic.ConfirmationNode

	// Non-volatile: must survive a brief power bounce (§9).
	onGround    bool
	flightPhase FlightPhase

	chosenVerticalSpeedFtMin float64
	chosenAltitudeFt         float64
	raFt                     float64

	groundToAirConfirm           *logic.ConfirmationNode
	takeoffToApproachIntegrator  float64

	gpwsSysFault  bool
	terrSysFault  bool
	gsFault       bool
	vsFault       bool
	altitudeFault bool
	raFault       bool

	audioInhibitConfirm *logic.ConfirmationNode
	gpwsInhibitConfirm  *logic.ConfirmationNode

	mode1 mode1State
	mode2 mode2State
	mode3 mode3State
	mode4 mode4State
	mode5 mode5State

	numberOfAuralWarningEmissions uint32
	timeSinceFirstEmission        time.Duration

	warningLampActivated bool
	alertLampActivated   bool
	auralOutput          AuralWarning

	metrics *Metrics
}

// New constructs a Runtime with the given self-test duration and initial
// non-volatile state. Pass selfTest=0 to skip the startup gate (e.g. test
// fixtures); the falling confirmation nodes still start on their true
// output and settle only once Update has run past their delays.
// cmd/egpwcd passes its configured self-test duration and always starts
// on the ground in Takeoff.
func New(selfTest time.Duration, onGround bool, flightPhase FlightPhase, pins PinProgramConfig) *Runtime {
	return &Runtime{
		pinPrograms:      pins,
		remainingStartup: selfTest,

		repositionConfirm: logic.NewFallingConfirmation(3 * time.Second),

		onGround:    onGround,
		flightPhase: flightPhase,

		groundToAirConfirm: logic.NewRisingConfirmation(10 * time.Second),

		audioInhibitConfirm: logic.NewRisingConfirmation(60 * time.Second),
		gpwsInhibitConfirm:  logic.NewRisingConfirmation(5 * time.Second),

		mode1: newMode1State(),
		mode2: newMode2State(),
		mode3: newMode3State(),
		mode5: newMode5State(),

		auralOutput: AuralNone,
	}
}

// UseMetrics attaches a Metrics recorder; calling Update without one is
// safe, it just skips instrumentation.
func (r *Runtime) UseMetrics(m *Metrics) {
	r.metrics = m
}

// Update advances the runtime by one tick. Ordering is fixed and total:
// startup gate -> validation -> phase -> modes 1..5 -> lamps -> aural ->
// emission counter -> outputs (§2, §5).
func (r *Runtime) Update(
	dt time.Duration,
	discretes DiscreteInputs,
	ra1, ra2 RadioAltimeter,
	adr AirDataReferenceBus,
	ir InertialReferenceBus,
	ils InstrumentLandingSystemBus,
) {
	if r.remainingStartup > dt {
		r.remainingStartup -= dt
	} else {
		r.remainingStartup = 0
	}
	if r.remainingStartup > 0 {
		if r.metrics != nil {
			r.metrics.observeStartup(r.remainingStartup)
		}
		return
	}

	r.repositionConfirm.Update(discretes.SimRepositionActive, dt)

	r.updateFaultLogic(dt, discretes, ra1, ra2, adr, ir, ils)
	r.updatePhaseLogic(dt, discretes, adr, ir)

	r.updateMode1(dt, ils)
	r.updateMode2(dt, adr, discretes, ils)
	r.updateMode3(dt)
	r.updateMode4()
	r.updateMode5(dt, ils, ir, discretes)

	r.computeLampOutput(discretes)
	r.computeAuralOutput(dt, discretes)

	if r.metrics != nil {
		r.metrics.observe(r)
	}
}

// GetAuralOutput returns the currently selected aural warning.
func (r *Runtime) GetAuralOutput() AuralWarning { return r.auralOutput }

// GetOnGround returns the non-volatile on-ground state.
func (r *Runtime) GetOnGround() bool { return r.onGround }

// GetFlightPhase returns the non-volatile flight phase.
func (r *Runtime) GetFlightPhase() FlightPhase { return r.flightPhase }

// Outputs assembles the tick's output struct (§6).
func (r *Runtime) Outputs() Outputs {
	return Outputs{
		AlertLamp:                r.alertLampActivated,
		WarningLamp:              r.warningLampActivated,
		AudioOn:                  r.auralOutput != AuralNone,
		TerrainObstacleCaution:   false,
		TerrainObstacleWarning:   false,
		GpwsInop:                 r.gpwsSysFault || r.remainingStartup > 0,
		TerrainInop:              r.terrSysFault || r.remainingStartup > 0,
		TerrainNotAvailable:      false,
		RaasInop:                 false,
		CaptTerrainDisplayActive: false,
		FoTerrainDisplayActive:   false,
		TcasInhibit:              false,
		AuralOutput:              r.auralOutput,
	}
}
