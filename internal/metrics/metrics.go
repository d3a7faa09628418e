// Package metrics exposes Prometheus counters for the checker API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vaultpass/passcheck-go/internal/strength"
)

// Recorder counts checks and generated passwords on its own registry.
type Recorder struct {
	registry  *prometheus.Registry
	checks    *prometheus.CounterVec
	generated prometheus.Counter
}

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "passcheck",
			Name:      "checks_total",
			Help:      "Password checks by resulting strength.",
		}, []string{"strength"}),
		generated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "passcheck",
			Name:      "generated_passwords_total",
			Help:      "Suggested passwords generated.",
		}),
	}
	r.registry.MustRegister(r.checks, r.generated)
	return r
}

// ObserveCheck counts one classification.
func (r *Recorder) ObserveCheck(s strength.Strength) {
	r.checks.WithLabelValues(string(s)).Inc()
}

// ObserveGenerated counts one generated password.
func (r *Recorder) ObserveGenerated() {
	r.generated.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
