package httptransport

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
	"github.com/tcr/pretty-cron/internal/metrics"
	"github.com/tcr/pretty-cron/internal/transport/http/handler"
	"github.com/tcr/pretty-cron/internal/transport/http/middleware"
)

func NewRouter(logger *slog.Logger, describeHandler *handler.DescribeHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics(metrics.HTTPRequestDuration, metrics.HTTPRequestsTotal))

	r.GET("/describe", describeHandler.Get)
	r.POST("/describe", describeHandler.Post)

	return r
}
