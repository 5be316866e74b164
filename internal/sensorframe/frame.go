// Package sensorframe defines the wire format cmd/egpwc-bridge emits and
// cmd/egpwcd consumes over a serial link: one simulated sensor sample per
// line, comma-separated, ASCII.
package sensorframe

import (
	"fmt"
	"strconv"
	"strings"
)

// Frame is a single tick's worth of simulated ARINC sensor values.
type Frame struct {
	RA1Ft         float64
	RA2Ft         float64
	CasKt         float64
	VsFtMin       float64
	AltitudeFt    float64
	PitchDeg      float64
	TrackDeg      float64
	GlideslopeDev float64
	LocalizerDev  float64
	RunwayHdgDeg  float64
}

const fieldCount = 10

// Encode renders f as the wire line (without trailing newline).
func (f Frame) Encode() string {
	values := []float64{
		f.RA1Ft, f.RA2Ft, f.CasKt, f.VsFtMin, f.AltitudeFt,
		f.PitchDeg, f.TrackDeg, f.GlideslopeDev, f.LocalizerDev, f.RunwayHdgDeg,
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', 4, 64)
	}
	return strings.Join(parts, ",")
}

// Parse decodes one wire line into a Frame.
func Parse(line string) (Frame, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != fieldCount {
		return Frame{}, fmt.Errorf("sensorframe: expected %d fields, got %d", fieldCount, len(fields))
	}

	values := make([]float64, fieldCount)
	for i, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Frame{}, fmt.Errorf("sensorframe: field %d: %w", i, err)
		}
		values[i] = v
	}

	return Frame{
		RA1Ft:         values[0],
		RA2Ft:         values[1],
		CasKt:         values[2],
		VsFtMin:       values[3],
		AltitudeFt:    values[4],
		PitchDeg:      values[5],
		TrackDeg:      values[6],
		GlideslopeDev: values[7],
		LocalizerDev:  values[8],
		RunwayHdgDeg:  values[9],
	}, nil
}
