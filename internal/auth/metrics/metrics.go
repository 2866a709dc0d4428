package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	LoginSuccesses prometheus.Counter
	LoginFailures  *prometheus.CounterVec
}

// New registers the login counters on the default registry. Call once per
// process; pass nil to the service to run without metrics.
func New() *Metrics {
	return &Metrics{
		LoginSuccesses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payguard_auth_login_successes_total",
			Help: "Total successful logins",
		}),
		LoginFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "payguard_auth_login_failures_total",
			Help: "Total failed logins by reason",
		}, []string{"reason"}),
	}
}

func (m *Metrics) IncrementSuccess() {
	m.LoginSuccesses.Inc()
}

func (m *Metrics) IncrementFailure(reason string) {
	m.LoginFailures.WithLabelValues(reason).Inc()
}
