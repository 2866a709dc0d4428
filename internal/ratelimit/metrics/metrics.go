package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RequestsAllowed prometheus.Counter
	RequestsDenied  prometheus.Counter
}

// New registers the rate-limit counters on the default registry. Call once per
// process; components that run without metrics pass nil instead.
func New() *Metrics {
	return &Metrics{
		RequestsAllowed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payguard_ratelimit_requests_allowed_total",
			Help: "Total requests admitted by the rate limiter",
		}),
		RequestsDenied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payguard_ratelimit_requests_denied_total",
			Help: "Total requests denied by the rate limiter",
		}),
	}
}

func (m *Metrics) IncrementAllowed() {
	m.RequestsAllowed.Inc()
}

func (m *Metrics) IncrementDenied() {
	m.RequestsDenied.Inc()
}
