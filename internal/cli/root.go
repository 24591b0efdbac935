// Package cli implements the prettycron command line.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/tcr/pretty-cron/internal/cronspec"
	"github.com/tcr/pretty-cron/internal/describe"
	ctxlog "github.com/tcr/pretty-cron/internal/log"
	"github.com/tcr/pretty-cron/internal/usecase"
)

type options struct {
	steps   bool
	clock   bool
	next    int
	format  string
	verbose bool
}

// NewRootCmd returns the top-level command. Each positional argument is one
// cron expression; quote expressions that contain spaces.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "prettycron <expr>...",
		Short: "Describe cron expressions in plain English",
		Long: "Prints one English sentence per cron expression. Accepts five-field, six-field " +
			"(leading seconds) and seven-field (trailing year) expressions and @descriptors.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, args, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.steps, "steps", "s", false, "Describe evenly spaced values as steps (\"Every 5 minutes\")")
	pf.BoolVarP(&opts.clock, "clock", "c", false, "Describe one or two fixed times as clock times (\"09:30 every day\")")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")
	cmd.Flags().IntVarP(&opts.next, "next", "n", 0, fmt.Sprintf("Also print the next N fire times (max %d)", usecase.MaxPreviewRuns))
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text or json")

	cmd.AddCommand(newFieldsCmd(opts))
	return cmd
}

func (o *options) describerOptions() []describe.Option {
	var out []describe.Option
	if o.steps {
		out = append(out, describe.WithStepDetection())
	}
	if o.clock {
		out = append(out, describe.WithClockTimes())
	}
	return out
}

func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return ctxlog.NewLogger(w, "local", level)
}

type describeOutput struct {
	Expr        string      `json:"expr"`
	Description string      `json:"description"`
	NextRuns    []time.Time `json:"next_runs,omitempty"`
}

func runDescribe(cmd *cobra.Command, args []string, opts *options) error {
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("unknown format %q", opts.format)
	}

	logger := opts.logger(cmd.ErrOrStderr())
	uc := usecase.NewDescribeUsecase(cronspec.NewParser(), describe.New(opts.describerOptions()...), logger, opts.next)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]describeOutput, 0, len(args))
	for _, expr := range args {
		desc, err := uc.Describe(ctxlog.With(ctx, slog.String("expr", expr)), usecase.DescribeInput{Expr: expr})
		if err != nil {
			return err
		}
		results = append(results, describeOutput{Expr: desc.Expr, Description: desc.Text, NextRuns: desc.NextRuns})
	}

	out := cmd.OutOrStdout()
	if opts.format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		if len(args) > 1 {
			fmt.Fprintf(out, "%s: %s\n", r.Expr, r.Description)
		} else {
			fmt.Fprintln(out, r.Description)
		}
		for _, t := range r.NextRuns {
			fmt.Fprintf(out, "  %s\n", t.Format(time.RFC3339))
		}
	}
	return nil
}
