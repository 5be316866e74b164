package logic

import "time"

// DerivativeNode computes a backward-difference derivative, guarding
// against a zero Δt and returning 0 for its first sample (there being no
// prior value to difference against).
type DerivativeNode struct {
	prev   float64
	primed bool
	out    float64
}

// NewDerivativeNode builds an empty DerivativeNode.
func NewDerivativeNode() *DerivativeNode {
	return &DerivativeNode{}
}

// Update advances the node by dt with the given input and returns the new
// output.
func (d *DerivativeNode) Update(input float64, dt time.Duration) float64 {
	if !d.primed || dt <= 0 {
		d.out = 0
	} else {
		d.out = (input - d.prev) / dt.Seconds()
	}
	d.prev = input
	d.primed = true
	return d.out
}

// Output returns the node's current output without advancing it.
func (d *DerivativeNode) Output() float64 {
	return d.out
}
