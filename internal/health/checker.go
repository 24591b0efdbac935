package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prober is satisfied by *usecase.DescribeUsecase.
type Prober interface {
	Probe(ctx context.Context) error
}

// CheckResult represents the health of a single dependency.
type CheckResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResult is the top-level health response.
type HealthResult struct {
	Status string                 `json:"status"`
	Checks map[string]CheckResult `json:"checks,omitempty"`
}

// Checker verifies that the describer produces the sentences it should.
type Checker struct {
	describer Prober
	logger    *slog.Logger
	gauge     *prometheus.GaugeVec
}

// NewChecker creates a health checker and registers its Prometheus gauge.
func NewChecker(describer Prober, logger *slog.Logger, reg prometheus.Registerer) *Checker {
	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "prettycron",
		Name:      "health_check_up",
		Help:      "Whether a dependency is working. 1 = up, 0 = down.",
	}, []string{"dependency"})
	reg.MustRegister(gauge)

	return &Checker{
		describer: describer,
		logger:    logger.With("component", "health"),
		gauge:     gauge,
	}
}

// Liveness returns a simple "up" response if the process is running.
func (c *Checker) Liveness(_ context.Context) HealthResult {
	return HealthResult{Status: "up"}
}

// Readiness probes the describer and reports per-check status.
func (c *Checker) Readiness(ctx context.Context) HealthResult {
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	result := HealthResult{
		Status: "up",
		Checks: make(map[string]CheckResult),
	}

	if err := c.describer.Probe(checkCtx); err != nil {
		c.logger.Warn("describer health check failed", "error", err)
		result.Status = "down"
		result.Checks["describer"] = CheckResult{Status: "down", Error: err.Error()}
		c.gauge.WithLabelValues("describer").Set(0)
	} else {
		result.Checks["describer"] = CheckResult{Status: "up"}
		c.gauge.WithLabelValues("describer").Set(1)
	}

	return result
}

func (c *Checker) LivenessHandler(w http.ResponseWriter, r *http.Request) {
	c.write(w, c.Liveness(r.Context()))
}

func (c *Checker) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	c.write(w, c.Readiness(r.Context()))
}

func (c *Checker) write(w http.ResponseWriter, result HealthResult) {
	status := http.StatusOK
	if result.Status != "up" {
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		c.logger.Error("write health response", "error", err)
	}
}
