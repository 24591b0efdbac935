package describe

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/tcr/pretty-cron/internal/domain"
)

// DateKind selects the name table used by DateList.
type DateKind int

const (
	DayOfWeek DateKind = iota
	Month
)

var (
	dayNames   = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	monthNames = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

// NumberList renders values as "3, 7 and 12th". Only the last value gets an
// ordinal suffix.
func NumberList(set domain.OrdinalSet) string {
	if len(set) == 0 {
		return ""
	}
	last := humanize.Ordinal(set[len(set)-1])
	if len(set) == 1 {
		return last
	}

	head := make([]string, len(set)-1)
	for i, v := range set[:len(set)-1] {
		head[i] = strconv.Itoa(v)
	}
	return joinList(head, last)
}

// DateList renders 1-based day-of-week or month values by name, e.g.
// "Mon, Wed and Fri".
func DateList(set domain.OrdinalSet, kind DateKind) string {
	if len(set) == 0 {
		return ""
	}
	names := make([]string, len(set))
	for i, v := range set {
		names[i] = DateName(v, kind)
	}
	if len(names) == 1 {
		return names[0]
	}
	return joinList(names[:len(names)-1], names[len(names)-1])
}

// DateName maps a 1-based value to its short English name. Values outside
// the table fall back to the number itself.
func DateName(value int, kind DateKind) string {
	table := dayNames[:]
	if kind == Month {
		table = monthNames[:]
	}
	i := value - 1
	if i < 0 || i >= len(table) {
		return strconv.Itoa(value)
	}
	return table[i]
}

func joinList(head []string, last string) string {
	return strings.Join(head, ", ") + " and " + last
}
