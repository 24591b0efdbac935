package describe

import (
	"fmt"
	"strings"

	"github.com/tcr/pretty-cron/internal/domain"
)

// clauses builds the ordered sentence fragments for s. Fragments may be empty.
func (d *Describer) clauses(s domain.Schedule) []string {
	everySecond := s.Seconds.Wildcard
	everyMinute := s.Minutes.Wildcard
	everyHour := s.Hours.Wildcard
	everyDayInMonth := s.DaysOfMonth.Wildcard
	everyWeekday := s.DaysOfWeek.Wildcard
	everyMonth := s.Months.Wildcard

	oneOrTwoSecondsPerMinute := !everySecond && s.Seconds.Len() <= 2
	oneOrTwoMinutesPerHour := !everyMinute && s.Minutes.Len() <= 2
	oneOrTwoHoursPerDay := !everyHour && s.Hours.Len() <= 2
	onlySpecificDaysOfMonth := !everyDayInMonth && s.DaysOfMonth.Len() != domain.DaysOfMonthModulus

	var parts []string
	if oneOrTwoHoursPerDay && oneOrTwoMinutesPerHour && oneOrTwoSecondsPerMinute {
		if d.clockTimes {
			parts = append(parts, clockTimes(s))
			if everyWeekday && everyDayInMonth {
				parts = append(parts, "every day")
			}
		}
	} else {
		parts = d.timeOfDay(s, onlySpecificDaysOfMonth)
	}

	if onlySpecificDaysOfMonth {
		parts = append(parts, "on the "+NumberList(s.DaysOfMonth.Values))
		if everyMonth {
			parts = append(parts, "of every month")
		}
	}

	if !everyWeekday {
		// When both day fields are restricted cron fires on either.
		if !everyDayInMonth {
			parts = append(parts, "and every")
		} else {
			parts = append(parts, "on")
		}
		parts = append(parts, DateList(s.DaysOfWeek.Values, DayOfWeek))
	}

	if !everyMonth {
		if s.Months.Len() == domain.MonthsModulus {
			parts = append(parts, "day of every month")
		} else {
			parts = append(parts, "in "+DateList(s.Months.Values, Month))
		}
	}

	return parts
}

// timeOfDay describes the seconds, minutes and hours fields.
func (d *Describer) timeOfDay(s domain.Schedule, onlySpecificDaysOfMonth bool) []string {
	parts := []string{"Every"}

	seconds := d.secondsPhrase(s.Seconds)
	minutes := d.minutesPhrase(s.Minutes)
	minutesOnTheHour := isOnTheHour(s.Minutes.Values)

	n := s.Seconds.Len()
	hasSpecificSeconds := !s.Seconds.Wildcard &&
		((n > 1 && n < domain.SecondsModulus) || (n == 1 && s.Seconds.Values[0] != 0))

	var beginning, end string
	if hasSpecificSeconds {
		beginning, end = seconds.Prefix, seconds.Suffix
	}

	switch {
	case !s.Hours.Wildcard:
		if hasSpecificSeconds {
			end += " on the "
		}
		hours := NumberList(s.Hours.Values) + " hour"
		if !s.Minutes.Wildcard {
			if !hasSpecificSeconds && minutesOnTheHour {
				parts = []string{"On the"}
				end += hours
			} else {
				beginning = minutes.Prefix
				if minutes.Suffix == "" {
					// "other minute" carries no suffix to anchor "on the".
					end = strings.TrimSuffix(end, " on the ")
				}
				end += minutes.Suffix + " past the " + hours
			}
		} else {
			end += "minute of " + hours
		}
	case !s.Minutes.Wildcard:
		beginning = minutes.Prefix
		end += minutes.Suffix
		if !minutesOnTheHour && (onlySpecificDaysOfMonth || !s.DaysOfWeek.Wildcard || !s.Months.Wildcard) {
			end += " past every hour"
		}
	case s.Seconds.Wildcard:
		beginning = seconds.Prefix
	case !hasSpecificSeconds:
		beginning += minutes.Prefix
	}

	return append(parts, beginning, end)
}

// clockTimes lists every hour, minute and second combination as HH:MM, or
// HH:MM:SS when the expression has a seconds field.
func clockTimes(s domain.Schedule) string {
	var times []string
	for _, h := range s.Hours.Values {
		for _, m := range s.Minutes.Values {
			for _, sec := range s.Seconds.Values {
				if s.HasSeconds {
					times = append(times, fmt.Sprintf("%02d:%02d:%02d", h, m, sec))
				} else {
					times = append(times, fmt.Sprintf("%02d:%02d", h, m))
				}
			}
		}
	}
	if len(times) == 1 {
		return times[0]
	}
	return joinList(times[:len(times)-1], times[len(times)-1])
}

// render joins the non-empty clauses with single spaces. Clauses are trimmed
// first, since a fragment may open with a separator its neighbour left out.
func render(parts []string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
