package thstrim

import (
	"github.com/felixge/pidctrl"
)

// manualSpeedLimit mirrors the source's clamp(1000*error, -45, 45): a
// 1000 deg/sec gain per unit of position error, capped at the stabilizer's
// mechanical trim-speed limit.
const manualSpeedLimit = 45.0

// SpeedController drives a commanded trim speed from the error between a
// requested stabilizer position and its last-reported hydraulic percent,
// using a PID loop tuned to behave like the source's direct proportional
// clamp at the default gains.
type SpeedController struct {
	pid *pidctrl.PIDController
}

// NewSpeedController builds a controller defaulting to a pure-proportional
// response (no integral or derivative term), matching the direct
// `clamp(1000 * error, -45, 45)` behaviour it replaces; callers needing a
// smoother approach can re-tune via the embedded controller through Tune.
func NewSpeedController() *SpeedController {
	pid := pidctrl.NewPIDController(1000, 0, 0)
	pid.SetOutputLimits(-manualSpeedLimit, manualSpeedLimit)
	pid.Set(0)
	return &SpeedController{pid: pid}
}

// Tune adjusts the PID gains in place.
func (c *SpeedController) Tune(p, i, d float64) {
	c.pid.SetPID(p, i, d)
}

// Speed computes the commanded trim speed (degrees/sec, clamped to
// ±45) for a requested position fraction and the stabilizer's currently
// reported hydraulic wheel percent (both in the same [0,1]-ish units the
// source compares directly).
func (c *SpeedController) Speed(requestedPosition, currentPercent float64) float64 {
	c.pid.Set(requestedPosition)
	return c.pid.Update(currentPercent)
}
