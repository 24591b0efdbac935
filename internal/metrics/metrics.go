package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tcr/pretty-cron/internal/health"
)

var (
	// Describer metrics

	DescriptionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "prettycron",
		Name:      "descriptions_total",
		Help:      "Total cron expressions described, by outcome.",
	}, []string{"outcome"})

	DescriptionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "prettycron",
		Name:      "description_duration_seconds",
		Help:      "Time taken to parse and describe one expression.",
		Buckets:   []float64{.00001, .0001, .00025, .0005, .001, .0025, .005, .01, .05},
	})

	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "prettycron",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "prettycron",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Outcome labels for DescriptionsTotal.
const (
	OutcomeOK          = "ok"
	OutcomeInvalid     = "invalid"
	OutcomeUnsupported = "unsupported"
	OutcomeError       = "error"
)

func Register() {
	prometheus.MustRegister(
		DescriptionsTotal,
		DescriptionDuration,
		HTTPRequestDuration,
		HTTPRequestsTotal,
	)
}

// NewServer serves /metrics alongside the liveness and readiness probes.
func NewServer(addr string, checker *health.Checker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", checker.LivenessHandler)
	mux.HandleFunc("/readyz", checker.ReadinessHandler)
	return &http.Server{Addr: addr, Handler: mux}
}
