package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tcr/pretty-cron/internal/cronspec"
	"github.com/tcr/pretty-cron/internal/describe"
	"github.com/tcr/pretty-cron/internal/domain"
)

func newFieldsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fields <expr>",
		Short: "Show how each field of an expression is classified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := cronspec.NewParser().Parse(args[0])
			if err != nil {
				return err
			}
			d := describe.New(opts.describerOptions()...)
			s := expr.Schedule

			rows := []struct {
				name    string
				f       domain.Field
				modulus int
			}{
				{"seconds", s.Seconds, domain.SecondsModulus},
				{"minutes", s.Minutes, domain.MinutesModulus},
				{"hours", s.Hours, domain.HoursModulus},
				{"day of month", s.DaysOfMonth, domain.DaysOfMonthModulus},
				{"month", s.Months, domain.MonthsModulus},
				{"day of week", s.DaysOfWeek, domain.DaysOfWeekModulus},
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FIELD\tWILDCARD\tSHAPE\tSTEP\tVALUES")
			for _, r := range rows {
				c := d.Classify(r.f.Values, r.modulus)
				fmt.Fprintf(tw, "%s\t%t\t%s\t%d\t%s\n", r.name, r.f.Wildcard, c.Kind, c.Step, formatValues(r.f.Values))
			}
			return tw.Flush()
		},
	}
}

func formatValues(set domain.OrdinalSet) string {
	parts := make([]string, len(set))
	for i, v := range set {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
