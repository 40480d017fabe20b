package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "event_form",
		Name:      "http_requests_total",
		Help:      "HTTP requests served by method and status code",
	}, []string{"method", "status"})

	analyzeOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "event_form",
		Name:      "analyze_outcomes_total",
		Help:      "Submitted queries by rendered outcome",
	}, []string{"outcome"})

	exports = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "event_form",
		Name:      "exports_total",
		Help:      "Export attempts by format and result",
	}, []string{"format", "result"})

	upstreamDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "event_form",
		Name:      "upstream_request_duration_seconds",
		Help:      "Latency of calls to the analysis backend",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"endpoint"})
)

func init() {
	prometheus.MustRegister(httpRequests, analyzeOutcomes, exports, upstreamDuration)
}

// Handler serves the default registry
func Handler() http.Handler { return promhttp.Handler() }

// ObserveRequest counts one served HTTP request
func ObserveRequest(method string, status int) {
	httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// ObserveOutcome counts one rendered submit outcome
func ObserveOutcome(outcome string) {
	analyzeOutcomes.WithLabelValues(outcome).Inc()
}

// ObserveExport counts one export attempt
func ObserveExport(format, result string) {
	exports.WithLabelValues(format, result).Inc()
}

// ObserveUpstream records how long a backend call took
func ObserveUpstream(endpoint string, d time.Duration) {
	upstreamDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}
