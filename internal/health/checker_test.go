package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tcr/pretty-cron/internal/health"
)

type mockProber struct {
	err error
}

func (m *mockProber) Probe(_ context.Context) error { return m.err }

func newTestChecker(p health.Prober) (*health.Checker, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	logger := slog.Default()
	return health.NewChecker(p, logger, reg), reg
}

func TestLiveness_AlwaysUp(t *testing.T) {
	c, _ := newTestChecker(&mockProber{err: errors.New("describer broken")})

	result := c.Liveness(context.Background())
	if result.Status != "up" {
		t.Fatalf("expected status up, got %s", result.Status)
	}
	if result.Checks != nil {
		t.Fatalf("expected no checks, got %v", result.Checks)
	}
}

func TestReadiness_DescriberUp(t *testing.T) {
	c, reg := newTestChecker(&mockProber{})

	result := c.Readiness(context.Background())
	if result.Status != "up" {
		t.Fatalf("expected status up, got %s", result.Status)
	}
	d, ok := result.Checks["describer"]
	if !ok {
		t.Fatal("missing describer check")
	}
	if d.Status != "up" {
		t.Fatalf("expected describer up, got %s", d.Status)
	}

	if got := testGauge(t, reg, "prettycron_health_check_up", "describer"); got != 1 {
		t.Fatalf("expected gauge 1, got %f", got)
	}
}

func TestReadiness_DescriberDown(t *testing.T) {
	c, reg := newTestChecker(&mockProber{err: errors.New("canary mismatch")})

	result := c.Readiness(context.Background())
	if result.Status != "down" {
		t.Fatalf("expected status down, got %s", result.Status)
	}
	d := result.Checks["describer"]
	if d.Status != "down" {
		t.Fatalf("expected describer down, got %s", d.Status)
	}
	if d.Error == "" {
		t.Fatal("expected error message")
	}

	if got := testGauge(t, reg, "prettycron_health_check_up", "describer"); got != 0 {
		t.Fatalf("expected gauge 0, got %f", got)
	}
}

func TestReadinessHandler_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		want string
	}{
		{"up", nil, http.StatusOK, "up"},
		{"down", errors.New("canary mismatch"), http.StatusServiceUnavailable, "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestChecker(&mockProber{err: tt.err})
			w := httptest.NewRecorder()
			c.ReadinessHandler(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			if w.Code != tt.code {
				t.Errorf("status = %d, want %d", w.Code, tt.code)
			}
			var body health.HealthResult
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Status != tt.want {
				t.Errorf("body status = %q, want %q", body.Status, tt.want)
			}
		})
	}
}

func TestLivenessHandler_OK(t *testing.T) {
	c, _ := newTestChecker(&mockProber{err: errors.New("ignored")})
	w := httptest.NewRecorder()
	c.LivenessHandler(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func testGauge(t *testing.T, reg *prometheus.Registry, name, depLabel string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "dependency" && lp.GetValue() == depLabel {
					return m.GetGauge().GetValue()
				}
			}
		}
	}
	t.Fatalf("metric %s{dependency=%q} not found", name, depLabel)
	return 0
}
