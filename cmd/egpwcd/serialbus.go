package main

import (
	"bufio"
	"fmt"
	"sync"
	"time"

	"github.com/tarm/serial"

	"github.com/stratux/egpwc/internal/arinc"
	"github.com/stratux/egpwc/internal/egpwc"
	"github.com/stratux/egpwc/internal/egpwclog"
	"github.com/stratux/egpwc/internal/sensorframe"
)

// liveBus holds the sensor values decoded off the serial link, each group
// guarded by its own mutex the way mySituation splits GPS/baro/attitude
// locking.
type liveBus struct {
	muRA  sync.Mutex
	ra1Ft float64
	ra2Ft float64
	raOK  bool

	muAir       sync.Mutex
	casKt       float64
	vsFtMin     float64
	altitudeFt  float64
	airOK       bool

	muInertial     sync.Mutex
	inAltitudeFt   float64
	inVsFtMin      float64
	pitchDeg       float64
	trackDeg       float64
	inertialOK     bool

	muIls          sync.Mutex
	glideslopeDev  float64
	localizerDev   float64
	runwayHdgDeg   float64
	ilsOK          bool
}

// ra1View and ra2View give the two redundant radio altimeter channels
// distinct RadioAltimeter identities over the same liveBus.
type ra1View struct{ b *liveBus }
type ra2View struct{ b *liveBus }

func (v ra1View) RadioAltitude() arinc.Word[float64] {
	v.b.muRA.Lock()
	defer v.b.muRA.Unlock()
	if !v.b.raOK {
		return arinc.New(0.0, arinc.FailureWarning)
	}
	return arinc.New(v.b.ra1Ft, arinc.NormalOperation)
}

func (v ra2View) RadioAltitude() arinc.Word[float64] {
	v.b.muRA.Lock()
	defer v.b.muRA.Unlock()
	if !v.b.raOK {
		return arinc.New(0.0, arinc.FailureWarning)
	}
	return arinc.New(v.b.ra2Ft, arinc.NormalOperation)
}

func (b *liveBus) ComputedAirspeed() arinc.Word[float64] {
	b.muAir.Lock()
	defer b.muAir.Unlock()
	if !b.airOK {
		return arinc.New(0.0, arinc.FailureWarning)
	}
	return arinc.New(b.casKt, arinc.NormalOperation)
}

func (b *liveBus) VerticalSpeed() arinc.Word[float64] {
	b.muAir.Lock()
	defer b.muAir.Unlock()
	return arinc.New(b.vsFtMin, arinc.NormalOperation)
}

func (b *liveBus) StandardAltitude() arinc.Word[float64] {
	b.muAir.Lock()
	defer b.muAir.Unlock()
	return arinc.New(b.altitudeFt, arinc.NormalOperation)
}

func (b *liveBus) InertialAltitude() arinc.Word[float64] {
	b.muInertial.Lock()
	defer b.muInertial.Unlock()
	if !b.inertialOK {
		return arinc.New(0.0, arinc.NoComputedData)
	}
	return arinc.New(b.inAltitudeFt, arinc.NormalOperation)
}

func (b *liveBus) InertialVerticalSpeed() arinc.Word[float64] {
	b.muInertial.Lock()
	defer b.muInertial.Unlock()
	if !b.inertialOK {
		return arinc.New(0.0, arinc.NoComputedData)
	}
	return arinc.New(b.inVsFtMin, arinc.NormalOperation)
}

func (b *liveBus) PitchAngle() arinc.Word[float64] {
	b.muInertial.Lock()
	defer b.muInertial.Unlock()
	return arinc.New(b.pitchDeg, arinc.NormalOperation)
}

func (b *liveBus) MagneticTrack() arinc.Word[float64] {
	b.muInertial.Lock()
	defer b.muInertial.Unlock()
	return arinc.New(b.trackDeg, arinc.NormalOperation)
}

func (b *liveBus) GlideslopeDeviation() arinc.Word[float64] {
	b.muIls.Lock()
	defer b.muIls.Unlock()
	if !b.ilsOK {
		return arinc.New(0.0, arinc.NoComputedData)
	}
	return arinc.New(b.glideslopeDev, arinc.NormalOperation)
}

func (b *liveBus) LocalizerDeviation() arinc.Word[float64] {
	b.muIls.Lock()
	defer b.muIls.Unlock()
	if !b.ilsOK {
		return arinc.New(0.0, arinc.NoComputedData)
	}
	return arinc.New(b.localizerDev, arinc.NormalOperation)
}

func (b *liveBus) RunwayHeading() arinc.Word[float64] {
	b.muIls.Lock()
	defer b.muIls.Unlock()
	if !b.ilsOK {
		return arinc.New(0.0, arinc.NoComputedData)
	}
	return arinc.New(b.runwayHdgDeg, arinc.NormalOperation)
}

var _ egpwc.AirDataReferenceBus = (*liveBus)(nil)
var _ egpwc.InertialReferenceBus = (*liveBus)(nil)
var _ egpwc.InstrumentLandingSystemBus = (*liveBus)(nil)
var _ egpwc.RadioAltimeter = ra1View{}
var _ egpwc.RadioAltimeter = ra2View{}

// readSerialBus opens the configured port and decodes frames emitted by
// cmd/egpwc-bridge, one comma-separated frame per line:
// ra1,ra2,cas,vs,alt,pitch,track,gs,loc,hdg
func readSerialBus(portName string, b *liveBus) error {
	cfg := &serial.Config{Name: portName, Baud: 38400, ReadTimeout: time.Second}
	port, err := serial.OpenPort(cfg)
	if err != nil {
		return fmt.Errorf("opening %s: %w", portName, err)
	}

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		frame, err := sensorframe.Parse(scanner.Text())
		if err != nil {
			egpwclog.Dbg("dropping malformed sensor frame: %s", err)
			continue
		}
		applySensorFrame(b, frame)
	}
	return scanner.Err()
}

func applySensorFrame(b *liveBus, f sensorframe.Frame) {
	b.muRA.Lock()
	b.ra1Ft, b.ra2Ft, b.raOK = f.RA1Ft, f.RA2Ft, true
	b.muRA.Unlock()

	b.muAir.Lock()
	b.casKt, b.vsFtMin, b.altitudeFt, b.airOK = f.CasKt, f.VsFtMin, f.AltitudeFt, true
	b.muAir.Unlock()

	b.muInertial.Lock()
	b.inAltitudeFt, b.inVsFtMin = f.AltitudeFt, f.VsFtMin
	b.pitchDeg, b.trackDeg, b.inertialOK = f.PitchDeg, f.TrackDeg, true
	b.muInertial.Unlock()

	b.muIls.Lock()
	b.glideslopeDev, b.localizerDev, b.runwayHdgDeg, b.ilsOK = f.GlideslopeDev, f.LocalizerDev, f.RunwayHdgDeg, true
	b.muIls.Unlock()
}
