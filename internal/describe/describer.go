// Package describe renders parsed cron schedules as English sentences, such
// as "Every 15th minute past every hour on Mon and Wed".
package describe

import (
	"fmt"

	"github.com/tcr/pretty-cron/internal/domain"
)

// Describer turns schedules into sentences. It holds no mutable state and is
// safe for concurrent use.
type Describer struct {
	detectSteps bool
	clockTimes  bool
}

type Option func(*Describer)

// WithStepDetection treats sets of three or more evenly spaced values as a
// step sequence ("Every 5 minutes") instead of listing every value.
func WithStepDetection() Option {
	return func(d *Describer) { d.detectSteps = true }
}

// WithClockTimes renders schedules that fire at one or two specific hours,
// minutes and seconds as clock times ("09:30 every day"). Without it such
// schedules produce only their day and month clauses.
func WithClockTimes() Option {
	return func(d *Describer) { d.clockTimes = true }
}

func New(opts ...Option) *Describer {
	d := &Describer{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var defaultDescriber = New()

// Describe renders s with the default options.
func Describe(s domain.Schedule) (string, error) {
	return defaultDescriber.Describe(s)
}

// Describe returns the sentence for s. It fails only when a field matches
// no values.
func (d *Describer) Describe(s domain.Schedule) (string, error) {
	if err := s.Validate(); err != nil {
		return "", fmt.Errorf("describe: %w", err)
	}
	return render(d.clauses(s)), nil
}

// MustDescribe is like Describe but panics on an invalid schedule.
func (d *Describer) MustDescribe(s domain.Schedule) string {
	text, err := d.Describe(s)
	if err != nil {
		panic(err)
	}
	return text
}
