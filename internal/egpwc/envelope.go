package egpwc

import "github.com/stratux/egpwc/internal/interp"

// EnvelopeCurve is one named mode boundary, sampled for diagnostic
// plotting by cmd/egpwc-envelope-plot.
type EnvelopeCurve struct {
	Name string
	X    []float64 // rate/deviation axis
	Y    []float64 // RA feet
}

// EnvelopeCurves samples the mode 1, 2 and 5 alert/warning boundaries at
// 12 evenly spaced points per breakpoint span plus the last breakpoint,
// for rendering with gonum/plot. It reads
// nothing from any Runtime instance; the boundaries are pure functions of
// the package-level breakpoint tables.
func EnvelopeCurves() []EnvelopeCurve {
	return []EnvelopeCurve{
		sampledCurve("mode1 alert", mode1AlertBreakpoints, mode1AlertValues),
		sampledCurve("mode1 warning", mode1WarnBreakpoints, mode1WarnValues),
		sampledCurve("mode2 alert", mode2AlertBreakpoints, mode2AlertValues),
		sampledCurve("mode5 soft", mode5SoftBreakpoints, mode5SoftValues),
		sampledCurve("mode5 hard", mode5HardBreakpoints, mode5HardValues),
	}
}

func sampledCurve(name string, breakpoints, values []float64) EnvelopeCurve {
	const samplesPerSpan = 12
	var xs, ys []float64

	for i := 0; i < len(breakpoints)-1; i++ {
		lo, hi := breakpoints[i], breakpoints[i+1]
		for s := 0; s < samplesPerSpan; s++ {
			x := lo + (hi-lo)*float64(s)/float64(samplesPerSpan)
			xs = append(xs, x)
			ys = append(ys, interp.Interp1(breakpoints, values, x))
		}
	}
	xs = append(xs, breakpoints[len(breakpoints)-1])
	ys = append(ys, values[len(values)-1])

	return EnvelopeCurve{Name: name, X: xs, Y: ys}
}
