// Package egpwc implements the runtime core of an Enhanced Ground
// Proximity Warning Computer: signal validation, the ground/phase state
// machine, the five classic GPWS basic modes, lamp composition, and the
// fixed-priority aural arbiter with its emission counter.
//
// Every exported entry point is driven by Update, called once per host
// tick with a non-negative Δt; nothing here blocks, suspends or returns
// an error. See SPEC_FULL.md for the full module map.
package egpwc

import (
	"time"

	"github.com/stratux/egpwc/internal/arinc"
)

// FlightPhase tracks the coarse takeoff/approach phase of flight used by
// mode 3 and mode 5 arming logic.
type FlightPhase int

const (
	Takeoff FlightPhase = iota
	Approach
)

func (p FlightPhase) String() string {
	if p == Approach {
		return "Approach"
	}
	return "Takeoff"
}

// AuralWarning is the tagged set of voice messages the aural arbiter can
// select, listed after None from highest to lowest arbiter priority;
// TerrainAhead and ObstacleAhead are never selected by the arbiter.
type AuralWarning int

const (
	AuralNone AuralWarning = iota
	AuralPullUp
	AuralTerrain
	AuralTooLowTerrain
	AuralTooLowGear
	AuralTooLowFlaps
	AuralSinkRate
	AuralDontSink
	AuralGlideslopeSoft
	AuralGlideslopeHard
	AuralTerrainAhead
	AuralObstacleAhead
)

var auralNames = [...]string{
	"None", "PullUp", "Terrain", "TooLowTerrain", "TooLowGear", "TooLowFlaps",
	"SinkRate", "DontSink", "GlideslopeSoft", "GlideslopeHard", "TerrainAhead",
	"ObstacleAhead",
}

func (a AuralWarning) String() string {
	if int(a) < 0 || int(a) >= len(auralNames) {
		return "Unknown"
	}
	return auralNames[a]
}

// CycleDuration is the full announce-plus-silence duration of one cycle of
// the aural warning, used by the emission counter (§4.11).
func (a AuralWarning) CycleDuration() time.Duration {
	switch a {
	case AuralNone:
		return 0
	case AuralPullUp, AuralTooLowTerrain, AuralTooLowGear, AuralTooLowFlaps, AuralSinkRate, AuralDontSink:
		return time.Duration(1.1 * float64(time.Second))
	case AuralTerrain, AuralTerrainAhead, AuralObstacleAhead:
		return time.Duration(2.4 * float64(time.Second))
	case AuralGlideslopeSoft, AuralGlideslopeHard:
		return time.Duration(1.6 * float64(time.Second))
	default:
		return 0
	}
}

// PinProgramConfig is read once at computer startup.
type PinProgramConfig struct {
	AudioDeclutterDisable bool
	AlternateLampFormat   bool
}

// RadioAltimeter is one of the two redundant radio altimeter channels.
type RadioAltimeter interface {
	RadioAltitude() arinc.Word[float64] // feet
}

// AirDataReferenceBus exposes the subset of the ADR the core consumes.
type AirDataReferenceBus interface {
	ComputedAirspeed() arinc.Word[float64]  // knots
	VerticalSpeed() arinc.Word[float64]     // feet per minute
	StandardAltitude() arinc.Word[float64]  // feet
}

// InertialReferenceBus exposes the subset of the IR the core consumes.
type InertialReferenceBus interface {
	InertialAltitude() arinc.Word[float64]      // feet
	InertialVerticalSpeed() arinc.Word[float64] // feet per minute
	PitchAngle() arinc.Word[float64]            // degrees
	MagneticTrack() arinc.Word[float64]         // degrees
}

// InstrumentLandingSystemBus exposes the subset of the ILS receiver the
// core consumes.
type InstrumentLandingSystemBus interface {
	GlideslopeDeviation() arinc.Word[float64] // ratio, +fly-down / -fly-up per source convention
	LocalizerDeviation() arinc.Word[float64]  // ratio
	RunwayHeading() arinc.Word[float64]       // degrees
}

// DiscreteInputs are the panel/simulator discretes read every tick.
type DiscreteInputs struct {
	SimRepositionActive   bool
	AudioInhibit          bool
	GpwsInhibit           bool
	LandingFlaps          bool
	LandingGearDownlocked bool
	GlideslopeInhibit     bool
}

// Outputs is the full set of discretes, the aural selection, and the
// status bits produced on a single tick.
type Outputs struct {
	AlertLamp                bool
	WarningLamp              bool
	AudioOn                  bool
	TerrainObstacleCaution   bool
	TerrainObstacleWarning   bool
	GpwsInop                bool
	TerrainInop              bool
	TerrainNotAvailable      bool
	RaasInop                 bool
	CaptTerrainDisplayActive bool
	FoTerrainDisplayActive   bool
	TcasInhibit              bool
	AuralOutput              AuralWarning
}
