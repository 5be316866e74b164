// Command egpwc-bridge drives a serial link with simulated ARINC sensor
// frames, for bench-testing cmd/egpwcd against a bench rig or a loopback
// serial pair without real avionics hardware attached.
package main

import (
	"flag"
	"log"
	"math"
	"time"

	"github.com/tarm/serial"

	"github.com/stratux/egpwc/internal/sensorframe"
)

func main() {
	port := flag.String("port", "/dev/ttyUSB0", "serial port to write simulated sensor frames to")
	baud := flag.Int("baud", 38400, "serial baud rate")
	rate := flag.Duration("rate", 50*time.Millisecond, "frame emission interval")
	flag.Parse()

	cfg := &serial.Config{Name: *port, Baud: *baud}
	conn, err := serial.OpenPort(cfg)
	if err != nil {
		log.Fatalf("opening %s: %s", *port, err)
	}
	defer conn.Close()

	log.Printf("egpwc-bridge: writing simulated frames to %s at %v", *port, *rate)

	ticker := time.NewTicker(*rate)
	defer ticker.Stop()

	var elapsed time.Duration
	for range ticker.C {
		elapsed += *rate
		frame := simulatedFrame(elapsed)
		if _, err := conn.Write([]byte(frame.Encode() + "\n")); err != nil {
			log.Fatalf("writing frame: %s", err)
		}
	}
}

// simulatedFrame produces a slow descending approach profile: altitude and
// RA bleed off linearly, CAS and pitch hold steady, ILS deviations swing
// through a gentle sinusoid to exercise mode 5's envelope.
func simulatedFrame(elapsed time.Duration) sensorframe.Frame {
	t := elapsed.Seconds()
	altitude := math.Max(0, 3000-20*t)

	return sensorframe.Frame{
		RA1Ft:         altitude,
		RA2Ft:         altitude,
		CasKt:         160,
		VsFtMin:       -1200,
		AltitudeFt:    altitude,
		PitchDeg:      2.5,
		TrackDeg:      90,
		GlideslopeDev: 0.02 * math.Sin(t/10),
		LocalizerDev:  0.01 * math.Sin(t/15),
		RunwayHdgDeg:  90,
	}
}
