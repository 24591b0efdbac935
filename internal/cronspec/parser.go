// Package cronspec turns cron expressions into the per-field ordinal sets
// the describer works on.
package cronspec

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/tcr/pretty-cron/internal/domain"
)

// robfig/cron marks fields written as * or ? with the top bit.
const starBit = 1 << 63

type Parser struct {
	standard    cron.Parser
	withSeconds cron.Parser
}

func NewParser() *Parser {
	return &Parser{
		standard:    cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
		withSeconds: cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
	}
}

// Expression is a parsed cron expression.
type Expression struct {
	Source   string
	Schedule domain.Schedule
	spec     *cron.SpecSchedule
}

// Parse accepts five-field expressions, six-field expressions with a leading
// seconds field, seven-field expressions with a trailing year (ignored), and
// descriptors such as @daily. A TZ= or CRON_TZ= prefix sets the location used
// by Next; without one, UTC is used.
func (p *Parser) Parse(expression string) (*Expression, error) {
	tz, fields := splitTimezone(strings.Fields(expression))
	if len(fields) == 0 {
		return nil, fmt.Errorf("parse cron: empty expression: %w", domain.ErrInvalidCronExpr)
	}

	parser := p.standard
	hasSeconds := false
	switch {
	case strings.HasPrefix(fields[0], "@"):
	case len(fields) == 5:
	case len(fields) == 6:
		parser, hasSeconds = p.withSeconds, true
	case len(fields) == 7:
		parser, hasSeconds = p.withSeconds, true
		fields = fields[:6]
	default:
		return nil, fmt.Errorf("parse cron: expected 5 to 7 fields, found %d: %w", len(fields), domain.ErrInvalidCronExpr)
	}

	spec := strings.Join(fields, " ")
	if tz != "" {
		spec = tz + " " + spec
	}

	sched, err := parser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("parse cron: %v: %w", err, domain.ErrInvalidCronExpr)
	}

	ss, ok := sched.(*cron.SpecSchedule)
	if !ok {
		return nil, fmt.Errorf("parse cron: %q has no calendar fields: %w", expression, domain.ErrUnsupportedSchedule)
	}
	if tz == "" {
		ss.Location = time.UTC
	}

	return &Expression{
		Source:   expression,
		Schedule: toSchedule(ss, hasSeconds),
		spec:     ss,
	}, nil
}

// Next returns the next n fire times strictly after after.
func (e *Expression) Next(after time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	runs := make([]time.Time, 0, n)
	t := after
	for range n {
		t = e.spec.Next(t)
		if t.IsZero() {
			break
		}
		runs = append(runs, t)
	}
	return runs
}

func splitTimezone(fields []string) (string, []string) {
	if len(fields) > 0 && (strings.HasPrefix(fields[0], "TZ=") || strings.HasPrefix(fields[0], "CRON_TZ=")) {
		return fields[0], fields[1:]
	}
	return "", fields
}

func toSchedule(ss *cron.SpecSchedule, hasSeconds bool) domain.Schedule {
	return domain.Schedule{
		Seconds:     toField(ss.Second, 0, 59, 0),
		Minutes:     toField(ss.Minute, 0, 59, 0),
		Hours:       toField(ss.Hour, 0, 23, 0),
		DaysOfMonth: toField(ss.Dom, 1, 31, 0),
		Months:      toField(ss.Month, 1, 12, 0),
		// Sunday is 0 in cron syntax and 1 in the schedule.
		DaysOfWeek: toField(ss.Dow, 0, 6, 1),
		HasSeconds: hasSeconds,
	}
}

func toField(bits uint64, lo, hi, shift int) domain.Field {
	f := domain.Field{Wildcard: bits&starBit != 0}
	for v := lo; v <= hi; v++ {
		if bits&(1<<uint(v)) != 0 {
			f.Values = append(f.Values, v+shift)
		}
	}
	return f
}
