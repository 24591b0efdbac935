package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tcr/pretty-cron/internal/domain"
	ctxlog "github.com/tcr/pretty-cron/internal/log"
	"github.com/tcr/pretty-cron/internal/usecase"
)

// describer is satisfied by *usecase.DescribeUsecase.
type describer interface {
	Describe(ctx context.Context, input usecase.DescribeInput) (*domain.Description, error)
}

type DescribeHandler struct {
	uc     describer
	logger *slog.Logger
}

func NewDescribeHandler(uc describer, logger *slog.Logger) *DescribeHandler {
	return &DescribeHandler{uc: uc, logger: logger.With("component", "describe_handler")}
}

type describeRequest struct {
	Expr    string    `json:"expr"    form:"expr"    binding:"required,max=256"`
	Preview *int      `json:"preview" form:"preview" binding:"omitempty,min=0,max=20"`
	After   time.Time `json:"after"   form:"after"   time_format:"2006-01-02T15:04:05Z07:00"`
}

type describeResponse struct {
	Expr        string      `json:"expr"`
	Description string      `json:"description"`
	NextRuns    []time.Time `json:"next_runs"`
}

// Get handles GET /describe?expr=...
func (h *DescribeHandler) Get(ctx *gin.Context) {
	var req describeRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.describe(ctx, req)
}

// Post handles POST /describe with a JSON body.
func (h *DescribeHandler) Post(ctx *gin.Context) {
	var req describeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.describe(ctx, req)
}

func (h *DescribeHandler) describe(ctx *gin.Context, req describeRequest) {
	reqCtx := ctxlog.With(ctx.Request.Context(), slog.String("expr", req.Expr))

	desc, err := h.uc.Describe(reqCtx, usecase.DescribeInput{
		Expr:    req.Expr,
		Preview: req.Preview,
		After:   req.After,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCronExpr):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": errInvalidCronExpr, "detail": err.Error()})
		case errors.Is(err, domain.ErrUnsupportedSchedule):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": errUnsupportedSchedule})
		default:
			h.logger.ErrorContext(reqCtx, "describe", "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	runs := desc.NextRuns
	if runs == nil {
		runs = []time.Time{}
	}
	ctx.JSON(http.StatusOK, describeResponse{
		Expr:        desc.Expr,
		Description: desc.Text,
		NextRuns:    runs,
	})
}
