package egpwc

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics instruments a Runtime for cmd/egpwcd's /metrics endpoint. It is
// optional: a Runtime with no Metrics attached runs identically, just
// without instrumentation.
type Metrics struct {
	startupRemaining prometheus.Gauge
	onGround         prometheus.Gauge
	flightPhase      prometheus.Gauge

	gpwsSysFault prometheus.Gauge
	terrSysFault prometheus.Gauge
	raFault      prometheus.Gauge

	warningLamp prometheus.Gauge
	alertLamp   prometheus.Gauge

	auralSelections *prometheus.CounterVec
	emissionCount   prometheus.Gauge
}

// NewMetrics registers the EGPWC collector set against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		startupRemaining: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "egpwc",
			Name:      "startup_remaining_seconds",
			Help:      "Seconds remaining in the self-test startup gate, 0 once cleared.",
		}),
		onGround: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "egpwc",
			Name:      "on_ground",
			Help:      "1 when the non-volatile on-ground state is true.",
		}),
		flightPhase: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "egpwc",
			Name:      "flight_phase",
			Help:      "0=Takeoff, 1=Approach.",
		}),
		gpwsSysFault: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "egpwc",
			Name:      "gpws_sys_fault",
			Help:      "1 when the GPWS system fault rollup is active.",
		}),
		terrSysFault: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "egpwc",
			Name:      "terr_sys_fault",
			Help:      "1 when the terrain system fault rollup is active.",
		}),
		raFault: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "egpwc",
			Name:      "ra_fault",
			Help:      "1 when both radio altimeter channels report failure warning.",
		}),
		warningLamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "egpwc",
			Name:      "warning_lamp",
			Help:      "1 when the warning lamp is activated this tick.",
		}),
		alertLamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "egpwc",
			Name:      "alert_lamp",
			Help:      "1 when the alert lamp is activated this tick.",
		}),
		auralSelections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "egpwc",
			Name:      "aural_selections_total",
			Help:      "Count of ticks where the aural arbiter selected each warning.",
		}, []string{"warning"}),
		emissionCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "egpwc",
			Name:      "aural_emission_count",
			Help:      "Current value of number_of_aural_warning_emissions.",
		}),
	}

	reg.MustRegister(
		m.startupRemaining, m.onGround, m.flightPhase,
		m.gpwsSysFault, m.terrSysFault, m.raFault,
		m.warningLamp, m.alertLamp,
		m.auralSelections, m.emissionCount,
	)
	return m
}

func (m *Metrics) observeStartup(remaining time.Duration) {
	m.startupRemaining.Set(remaining.Seconds())
}

func (m *Metrics) observe(r *Runtime) {
	m.startupRemaining.Set(0)
	m.onGround.Set(boolToFloat(r.onGround))
	m.flightPhase.Set(float64(r.flightPhase))

	m.gpwsSysFault.Set(boolToFloat(r.gpwsSysFault))
	m.terrSysFault.Set(boolToFloat(r.terrSysFault))
	m.raFault.Set(boolToFloat(r.raFault))

	m.warningLamp.Set(boolToFloat(r.warningLampActivated))
	m.alertLamp.Set(boolToFloat(r.alertLampActivated))

	m.auralSelections.WithLabelValues(r.auralOutput.String()).Inc()
	m.emissionCount.Set(float64(r.numberOfAuralWarningEmissions))
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
