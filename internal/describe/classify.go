package describe

import "github.com/tcr/pretty-cron/internal/domain"

// Kind is the shape of an ordinal set.
type Kind int

const (
	KindList Kind = iota
	KindWildcard
	KindSingleton
	KindOnTheHour
	KindStep
	KindEveryOther
	KindTwicePerHour
)

var kindNames = [...]string{
	KindList:         "list",
	KindWildcard:     "wildcard",
	KindSingleton:    "singleton",
	KindOnTheHour:    "on_the_hour",
	KindStep:         "step",
	KindEveryOther:   "every_other",
	KindTwicePerHour: "twice_per_hour",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Classification is the verdict for one ordinal set. Step is the distance
// between consecutive values, or 0 when the set is not known to be evenly
// spaced.
type Classification struct {
	Kind Kind
	Step int
}

// Classify inspects a set occupying modulus values. Only two-value sets get a
// step; longer sets are never treated as step sequences.
func Classify(set domain.OrdinalSet, modulus int) Classification {
	return classify(set, modulus, false)
}

// Classify is like the package-level Classify but honours WithStepDetection.
func (d *Describer) Classify(set domain.OrdinalSet, modulus int) Classification {
	return classify(set, modulus, d.detectSteps)
}

func classify(set domain.OrdinalSet, modulus int, detectSteps bool) Classification {
	step := stepSize(set, detectSteps)
	n := len(set)

	switch {
	case n == modulus:
		return Classification{Kind: KindWildcard, Step: step}
	case isOnTheHour(set):
		return Classification{Kind: KindOnTheHour}
	case n == 30 && step == 2:
		return Classification{Kind: KindEveryOther, Step: step}
	case n > 2 && step > 0:
		return Classification{Kind: KindStep, Step: step}
	case n == 2 && step == 30:
		return Classification{Kind: KindTwicePerHour, Step: step}
	case n == 1:
		return Classification{Kind: KindSingleton}
	default:
		return Classification{Kind: KindList, Step: step}
	}
}

func stepSize(set domain.OrdinalSet, detectSteps bool) int {
	if len(set) <= 1 {
		return 0
	}

	step := set[1] - set[0]
	if len(set) == 2 {
		return step
	}
	if !detectSteps {
		return 0
	}

	for i := 2; i < len(set); i++ {
		if set[i]-set[i-1] != step {
			return 0
		}
	}
	return step
}

func isOnTheHour(set domain.OrdinalSet) bool {
	return len(set) == 1 && set[0] == 0
}
