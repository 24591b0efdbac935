package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidCronExpr     = errors.New("invalid cron expression")
	ErrUnsupportedSchedule = errors.New("schedule cannot be described")
	ErrEmptyOrdinalSet     = errors.New("field matches no values")
)

// Number of representable values per field.
const (
	SecondsModulus     = 60
	MinutesModulus     = 60
	HoursModulus       = 24
	DaysOfMonthModulus = 31
	MonthsModulus      = 12
	DaysOfWeekModulus  = 7
)

// OrdinalSet is the strictly increasing set of values a cron field matches.
type OrdinalSet []int

// Field pairs the values a field matches with whether its source token was
// the wildcard symbol. A field written as 0-59 matches the same values as *
// but is not a wildcard.
type Field struct {
	Values   OrdinalSet
	Wildcard bool
}

// Len returns the number of matching values.
func (f Field) Len() int {
	return len(f.Values)
}

// Schedule is a parsed cron expression. Days of week are 1-based with
// Sunday = 1; months are 1-based with January = 1.
type Schedule struct {
	Seconds     Field
	Minutes     Field
	Hours       Field
	DaysOfMonth Field
	Months      Field
	DaysOfWeek  Field

	// HasSeconds reports whether the expression carried its own seconds
	// field. Five-field expressions fire on second 0.
	HasSeconds bool
}

// Validate checks that every field matches at least one value.
func (s Schedule) Validate() error {
	fields := []struct {
		name string
		f    Field
	}{
		{"seconds", s.Seconds},
		{"minutes", s.Minutes},
		{"hours", s.Hours},
		{"day of month", s.DaysOfMonth},
		{"month", s.Months},
		{"day of week", s.DaysOfWeek},
	}
	for _, fd := range fields {
		if fd.f.Len() == 0 {
			return fmt.Errorf("%s: %w", fd.name, ErrEmptyOrdinalSet)
		}
	}
	return nil
}

// Description is the English rendering of a cron expression.
type Description struct {
	Expr     string
	Text     string
	NextRuns []time.Time
}
