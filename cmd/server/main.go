package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tcr/pretty-cron/config"
	"github.com/tcr/pretty-cron/internal/cronspec"
	"github.com/tcr/pretty-cron/internal/describe"
	"github.com/tcr/pretty-cron/internal/health"
	ctxlog "github.com/tcr/pretty-cron/internal/log"
	"github.com/tcr/pretty-cron/internal/metrics"
	httptransport "github.com/tcr/pretty-cron/internal/transport/http"
	"github.com/tcr/pretty-cron/internal/transport/http/handler"
	"github.com/tcr/pretty-cron/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := ctxlog.NewLogger(os.Stdout, cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	describeUsecase := usecase.NewDescribeUsecase(
		cronspec.NewParser(),
		describe.New(cfg.DescriberOptions()...),
		logger,
		cfg.PreviewRuns,
	)
	describeHandler := handler.NewDescribeHandler(describeUsecase, logger)

	metrics.Register()
	checker := health.NewChecker(describeUsecase, logger, prometheus.DefaultRegisterer)

	srv := http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httptransport.NewRouter(logger, describeHandler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port, "step_detection", cfg.StepDetection, "clock_times", cfg.ClockTimes)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}
