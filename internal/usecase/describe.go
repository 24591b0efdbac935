package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tcr/pretty-cron/internal/cronspec"
	"github.com/tcr/pretty-cron/internal/describe"
	"github.com/tcr/pretty-cron/internal/domain"
	"github.com/tcr/pretty-cron/internal/metrics"
)

// MaxPreviewRuns caps the number of upcoming fire times returned per request.
const MaxPreviewRuns = 20

const (
	canaryExpr = "* * * * * *"
	canaryText = "Every second"
)

type DescribeUsecase struct {
	parser    *cronspec.Parser
	describer *describe.Describer
	logger    *slog.Logger
	preview   int
	now       func() time.Time
}

func NewDescribeUsecase(parser *cronspec.Parser, describer *describe.Describer, logger *slog.Logger, preview int) *DescribeUsecase {
	return &DescribeUsecase{
		parser:    parser,
		describer: describer,
		logger:    logger.With("component", "describe_usecase"),
		preview:   clampPreview(preview),
		now:       time.Now,
	}
}

type DescribeInput struct {
	Expr string
	// Preview is the number of upcoming fire times to compute. Nil selects
	// the configured default and zero disables the preview.
	Preview *int
	// After anchors the preview. Zero means now.
	After time.Time
}

func (u *DescribeUsecase) Describe(ctx context.Context, input DescribeInput) (*domain.Description, error) {
	start := time.Now()
	desc, err := u.describe(input)
	metrics.DescriptionDuration.Observe(time.Since(start).Seconds())
	metrics.DescriptionsTotal.WithLabelValues(outcome(err)).Inc()

	if err != nil {
		u.logger.DebugContext(ctx, "describe failed", "error", err)
		return nil, err
	}
	u.logger.DebugContext(ctx, "described", "text", desc.Text)
	return desc, nil
}

func (u *DescribeUsecase) describe(input DescribeInput) (*domain.Description, error) {
	expr, err := u.parser.Parse(input.Expr)
	if err != nil {
		return nil, fmt.Errorf("describe %q: %w", input.Expr, err)
	}

	text, err := u.describer.Describe(expr.Schedule)
	if err != nil {
		return nil, fmt.Errorf("describe %q: %w", input.Expr, err)
	}

	preview := u.preview
	if input.Preview != nil {
		preview = clampPreview(*input.Preview)
	}
	after := input.After
	if after.IsZero() {
		after = u.now()
	}

	return &domain.Description{
		Expr:     input.Expr,
		Text:     text,
		NextRuns: expr.Next(after, preview),
	}, nil
}

// Probe describes a fixed expression and checks the result.
func (u *DescribeUsecase) Probe(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	expr, err := u.parser.Parse(canaryExpr)
	if err != nil {
		return fmt.Errorf("probe: %w", err)
	}
	text, err := u.describer.Describe(expr.Schedule)
	if err != nil {
		return fmt.Errorf("probe: %w", err)
	}
	if text != canaryText {
		return fmt.Errorf("probe: %q described as %q, want %q", canaryExpr, text, canaryText)
	}
	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, domain.ErrInvalidCronExpr):
		return metrics.OutcomeInvalid
	case errors.Is(err, domain.ErrUnsupportedSchedule):
		return metrics.OutcomeUnsupported
	default:
		return metrics.OutcomeError
	}
}

func clampPreview(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxPreviewRuns {
		return MaxPreviewRuns
	}
	return n
}
