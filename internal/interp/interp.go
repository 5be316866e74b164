// Package interp implements the 1-D and 2-D piecewise-linear interpolation
// primitives reused by every envelope evaluator in internal/egpwc and by
// the THS trim table in internal/thstrim.
package interp

import "golang.org/x/exp/constraints"

// EdgePolicy controls how a 2-D table behaves outside its breakpoint range.
type EdgePolicy int

const (
	// Clamp saturates at the nearest edge value, interpolating normally
	// once inside the breakpoint range.
	Clamp EdgePolicy = iota
	// BinarySnap uses the nearest endpoint value with no interpolation
	// at all beyond the edge, snapping straight to it.
	BinarySnap
)

// Interp1 performs 1-D piecewise-linear interpolation of ys over xs at x.
// xs and ys must have equal length >= 2 and xs must be sorted ascending;
// violating either is a programmer error that this function does not
// check: it produces meaningless results, or an index panic for empty xs
// or a ys shorter than xs, by design of §4.1 — callers are expected to
// construct tables once and validate them there (see NewTable2D for the
// 2-D case).
func Interp1[F constraints.Float](xs, ys []F, x F) F {
	n := len(xs)
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	for i := 0; i < n-1; i++ {
		if x >= xs[i] && x <= xs[i+1] {
			span := xs[i+1] - xs[i]
			frac := (x - xs[i]) / span
			return ys[i] + frac*(ys[i+1]-ys[i])
		}
	}
	return ys[n-1]
}

// Table2D is a 2-D piecewise-linear table: x and y breakpoint axes, each
// with its own edge policy, and a row-major data matrix len(X)*len(Y).
type Table2D[F constraints.Float] struct {
	X       []F
	Y       []F
	Data    []F // row-major: Data[i*len(Y)+j] corresponds to (X[i], Y[j])
	XPolicy EdgePolicy
	YPolicy EdgePolicy
}

// NewTable2D validates and constructs a Table2D. It panics on a malformed
// table (unsorted breakpoints, too few breakpoints, or a data length
// mismatch) — a programmer error caught at construction, not at use,
// per §7 class 3.
func NewTable2D[F constraints.Float](x, y, data []F, xPolicy, yPolicy EdgePolicy) *Table2D[F] {
	t := &Table2D[F]{X: x, Y: y, Data: data, XPolicy: xPolicy, YPolicy: yPolicy}
	t.mustValidate()
	return t
}

func (t *Table2D[F]) mustValidate() {
	if len(t.X) < 2 || len(t.Y) < 2 {
		panic("interp: 2-D table axes must each have at least 2 breakpoints")
	}
	if len(t.Data) != len(t.X)*len(t.Y) {
		panic("interp: 2-D table data length must equal len(X)*len(Y)")
	}
	if !strictlyIncreasing(t.X) || !strictlyIncreasing(t.Y) {
		panic("interp: 2-D table breakpoints must be strictly increasing")
	}
}

func strictlyIncreasing[F constraints.Float](xs []F) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}
	return true
}

func (t *Table2D[F]) at(i, j int) F {
	return t.Data[i*len(t.Y)+j]
}

// snapIndex applies an axis's edge policy, returning the two bracketing
// indices and interpolation fraction to use. Under BinarySnap, a query
// outside the breakpoint range collapses both indices onto the nearest
// endpoint (fraction 0), so no interpolation happens past the edge.
func snapIndex[F constraints.Float](xs []F, policy EdgePolicy, x F) (lo, hi int, frac F) {
	n := len(xs)
	if x <= xs[0] {
		if policy == BinarySnap {
			return 0, 0, 0
		}
		return 0, 1, 0
	}
	if x >= xs[n-1] {
		if policy == BinarySnap {
			return n - 1, n - 1, 0
		}
		return n - 2, n - 1, 1
	}
	for i := 0; i < n-1; i++ {
		if x >= xs[i] && x <= xs[i+1] {
			span := xs[i+1] - xs[i]
			return i, i + 1, (x - xs[i]) / span
		}
	}
	return n - 2, n - 1, 1
}

// Lookup performs 2-D bilinear interpolation, applying each axis's edge
// policy before interpolating the interior.
func (t *Table2D[F]) Lookup(x, y F) F {
	xlo, xhi, xfrac := snapIndex(t.X, t.XPolicy, x)
	ylo, yhi, yfrac := snapIndex(t.Y, t.YPolicy, y)

	v00 := t.at(xlo, ylo)
	v01 := t.at(xlo, yhi)
	v10 := t.at(xhi, ylo)
	v11 := t.at(xhi, yhi)

	v0 := v00 + yfrac*(v01-v00)
	v1 := v10 + yfrac*(v11-v10)
	return v0 + xfrac*(v1-v0)
}
