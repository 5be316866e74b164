// Package thstrim models the trimmable horizontal stabilizer's manual trim
// collaborator: a weight/CG lookup table for reference deflection, and a
// PID-driven trim-speed bridge from a commanded position error.
package thstrim

import "github.com/stratux/egpwc/internal/interp"

var (
	weightBreakpointsTons = []float64{48, 50, 55, 60, 65, 70, 75, 79}
	cgBreakpointsPercent  = []float64{15, 17, 20, 24, 27, 30, 32, 35, 40}

	referenceDeflectionTable = mustNewTable()
)

func mustNewTable() *interp.Table2D[float64] {
	data := []float64{
		3.7, 3.2, 2.7, 2.0, 1.4, 0.9, 0.4, 0.0, -0.9,
		4.3, 3.7, 3.2, 2.5, 1.8, 1.3, 0.9, 0.4, -0.6,
		5.6, 5.1, 4.4, 3.7, 2.9, 2.1, 1.7, 1.1, -0.2,
		5.5, 5.0, 4.4, 3.4, 2.9, 2.2, 1.7, 1.1, 0.1,
		6.1, 5.5, 4.9, 3.9, 3.2, 2.4, 1.9, 1.2, 0.0,
		6.6, 5.7, 5.1, 4.1, 3.4, 2.5, 2.1, 1.5, 0.3,
		6.6, 6.1, 5.3, 4.3, 3.7, 2.9, 2.5, 1.7, 0.5,
		6.6, 6.2, 5.4, 4.4, 3.6, 2.9, 2.5, 1.8, 0.6,
	}
	return interp.NewTable2D(
		weightBreakpointsTons, cgBreakpointsPercent, data,
		interp.BinarySnap, interp.BinarySnap,
	)
}

// ReferenceDeflection returns the table's reference elevator trim
// deflection in degrees for a given gross weight (tons) and CG (percent
// MAC), snapping to the nearest breakpoint outside the table's bounds
// rather than extrapolating.
func ReferenceDeflection(weightTons, cgPercent float64) float64 {
	return referenceDeflectionTable.Lookup(weightTons, cgPercent)
}
