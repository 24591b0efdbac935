package describe

import (
	"fmt"

	"github.com/tcr/pretty-cron/internal/domain"
)

// Phrase is a partial clause. Prefix goes before the "minute"/"second"
// noun, Suffix after it.
type Phrase struct {
	Prefix string
	Suffix string
}

func (d *Describer) secondsPhrase(f domain.Field) Phrase {
	if f.Wildcard {
		return Phrase{Prefix: "second"}
	}

	c := classify(f.Values, domain.SecondsModulus, d.detectSteps)
	switch c.Kind {
	case KindEveryOther:
		return Phrase{Suffix: "other second"}
	case KindStep:
		return Phrase{Suffix: fmt.Sprintf("%d seconds", c.Step)}
	case KindTwicePerHour:
		return Phrase{Prefix: "minute", Suffix: "starting on the first and 30th second"}
	default:
		return Phrase{Prefix: "minute", Suffix: "starting on the " + NumberList(f.Values) + " second"}
	}
}

func (d *Describer) minutesPhrase(f domain.Field) Phrase {
	if f.Wildcard {
		return Phrase{Prefix: "minute"}
	}

	c := classify(f.Values, domain.MinutesModulus, d.detectSteps)
	switch {
	case c.Kind == KindWildcard && d.detectSteps:
		// An explicit 0-59 range is every minute.
		return Phrase{Prefix: "minute"}
	case c.Kind == KindOnTheHour:
		return Phrase{Suffix: "hour, on the hour"}
	case c.Kind == KindEveryOther:
		return Phrase{Prefix: "other minute"}
	case c.Kind == KindStep:
		return Phrase{Suffix: fmt.Sprintf("%d minutes", c.Step)}
	case c.Kind == KindTwicePerHour:
		return Phrase{Suffix: "first and 30th minute"}
	default:
		return Phrase{Suffix: NumberList(f.Values) + " minute"}
	}
}
