package logic

import "time"

// MonostableTriggerNode latches its output true for exactly T on the
// detected edge of its input, then drops back to false. Re-triggering
// during the hold restarts the timer rather than extending it additively.
type MonostableTriggerNode struct {
	edge      Direction
	t         time.Duration
	remaining time.Duration
	prev      bool
	primed    bool
}

// NewMonostableRising triggers on a false->true transition of the input.
func NewMonostableRising(t time.Duration) *MonostableTriggerNode {
	return &MonostableTriggerNode{edge: Rising, t: t}
}

// NewMonostableFalling triggers on a true->false transition of the input.
func NewMonostableFalling(t time.Duration) *MonostableTriggerNode {
	return &MonostableTriggerNode{edge: Falling, t: t}
}

// Update advances the node by dt with the given input and returns whether
// the hold is currently active.
func (m *MonostableTriggerNode) Update(input bool, dt time.Duration) bool {
	triggered := false
	if m.primed {
		switch m.edge {
		case Rising:
			triggered = !m.prev && input
		case Falling:
			triggered = m.prev && !input
		}
	}
	m.prev = input
	m.primed = true

	if triggered {
		m.remaining = m.t
	} else if m.remaining > 0 {
		m.remaining -= dt
		if m.remaining < 0 {
			m.remaining = 0
		}
	}
	return m.remaining > 0
}

// Output returns the node's current hold state without advancing it.
func (m *MonostableTriggerNode) Output() bool {
	return m.remaining > 0
}
