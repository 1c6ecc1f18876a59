package loot

import (
	"fmt"
	"strings"

	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

// Predicate is a named gating condition over a situational context.
type Predicate struct {
	Name string
	Test func(c *situation.Context) bool
}

// Holds evaluates the predicate. A predicate without a test always holds.
func (p Predicate) Holds(c *situation.Context) bool {
	if p.Test == nil {
		return true
	}
	return p.Test(c)
}

func (p Predicate) String() string { return p.Name }

// AllHold returns true if every predicate holds for c.
func AllHold(preds []Predicate, c *situation.Context) bool {
	for _, p := range preds {
		if !p.Holds(c) {
			return false
		}
	}
	return true
}

// Func wraps an arbitrary test as a predicate
func Func(name string, test func(c *situation.Context) bool) Predicate {
	return Predicate{Name: name, Test: test}
}

// RankIs holds when the context rank exactly matches one of ranks (case-insensitive).
func RankIs(ranks ...string) Predicate {
	set := lowerSet(ranks)
	return Predicate{
		Name: fmt.Sprintf("%s(%s)", GateRankIs, strings.Join(ranks, ",")),
		Test: func(c *situation.Context) bool { return set[strings.ToLower(c.Rank())] },
	}
}

// MinRank holds when the context rank is at or above floor on the ladder.
func MinRank(l situation.Ladder, floor string) Predicate {
	return Predicate{
		Name: fmt.Sprintf("%s(%s)", GateMinRank, floor),
		Test: func(c *situation.Context) bool { return l.AtLeast(c.Rank(), floor) },
	}
}

// Region holds when the context location tag is one of names (case-insensitive).
func Region(names ...string) Predicate {
	set := lowerSet(names)
	return Predicate{
		Name: fmt.Sprintf("%s(%s)", GateRegion, strings.Join(names, ",")),
		Test: func(c *situation.Context) bool { return set[strings.ToLower(c.Location())] },
	}
}

// CauseIs holds when the triggering cause is one of causes.
func CauseIs(causes ...domain.Cause) Predicate {
	set := make(map[domain.Cause]bool, len(causes))
	names := make([]string, len(causes))
	for i, cause := range causes {
		set[cause] = true
		names[i] = string(cause)
	}
	return Predicate{
		Name: fmt.Sprintf("%s(%s)", GateCause, strings.Join(names, ",")),
		Test: func(c *situation.Context) bool { return set[c.Cause()] },
	}
}

// MinActivityMinutes holds when elapsed activity is at least minutes.
func MinActivityMinutes(minutes int) Predicate {
	return Predicate{
		Name: fmt.Sprintf("%s(%d)", GateMinActivity, minutes),
		Test: func(c *situation.Context) bool { return c.ElapsedMinutes() >= minutes },
	}
}

// SpecialEventOnly holds only while a special event is running.
func SpecialEventOnly() Predicate {
	return Predicate{
		Name: GateSpecialEvent,
		Test: func(c *situation.Context) bool { return c.SpecialEvent() },
	}
}

// FlagHolds holds when the named flag is true.
func FlagHolds(r situation.Resolver, f situation.Flag) Predicate {
	return Predicate{
		Name: fmt.Sprintf("%s(%s)", GateFlag, f),
		Test: func(c *situation.Context) bool { return r.Holds(c, f) },
	}
}

// FlagNot holds when the named flag is false.
func FlagNot(r situation.Resolver, f situation.Flag) Predicate {
	return Predicate{
		Name: fmt.Sprintf("%s(%s)", GateNotFlag, f),
		Test: func(c *situation.Context) bool { return !r.Holds(c, f) },
	}
}

func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return set
}

// All combines predicates into one that holds when every predicate holds.
func All(preds ...Predicate) Predicate {
	names := make([]string, len(preds))
	for i, p := range preds {
		names[i] = p.Name
	}
	return Predicate{
		Name: fmt.Sprintf("%s(%s)", GateAll, strings.Join(names, ",")),
		Test: func(c *situation.Context) bool { return AllHold(preds, c) },
	}
}
