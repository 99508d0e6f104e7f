package downstream

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records downstream call counts and latency.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the downstream collectors and registers them with reg.
// A nil reg leaves the collectors unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dreams_gateway",
			Subsystem: "downstream",
			Name:      "requests_total",
			Help:      "Downstream API requests by collection, method and status.",
		}, []string{"collection", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dreams_gateway",
			Subsystem: "downstream",
			Name:      "request_duration_seconds",
			Help:      "Downstream API request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"collection", "method"}),
	}

	if reg != nil {
		reg.MustRegister(m.requests, m.duration)
	}
	return m
}

func (m *Metrics) observe(collection, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if status != 0 {
		label = strconv.Itoa(status)
	}
	m.requests.WithLabelValues(collection, method, label).Inc()
	m.duration.WithLabelValues(collection, method).Observe(elapsed.Seconds())
}
