package quality

import (
	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

// Selector picks a quality tier for one reward item.
type Selector struct {
	set        *Set
	dist       *Distribution
	escalation Escalation
}

// NewSelector creates a tier selector
func NewSelector(set *Set, dist *Distribution, esc Escalation) *Selector {
	return &Selector{set: set, dist: dist, escalation: esc}
}

// Set returns the tier set the selector draws from
func (s *Selector) Set() *Set { return s.set }

// Weights returns rank's distribution after escalation for c.
func (s *Selector) Weights(rank string, c *situation.Context) []Weighted {
	return Shift(s.dist.For(rank), s.escalation.Modifier(c))
}

// Select draws a tier for rank under c. It never returns nil: a distribution
// with no positive weight yields the baseline tier.
func (s *Selector) Select(rank string, c *situation.Context, rng Rand) *Tier {
	ws := s.Weights(rank, c)
	total := Total(ws)
	if total <= 0 {
		return s.set.Baseline()
	}

	u := rng.Float64() * total
	acc := 0.0
	var last *Tier
	for _, w := range ws {
		if w.Weight <= 0 {
			continue
		}
		acc += w.Weight
		last = w.Tier
		if acc > u {
			return w.Tier
		}
	}
	// Float accumulation can leave u a hair above the final sum.
	return last
}

// Probabilities returns the normalized selection probability per tier for rank under c.
func (s *Selector) Probabilities(rank string, c *situation.Context) map[domain.TierID]float64 {
	ws := s.Weights(rank, c)
	total := Total(ws)
	out := make(map[domain.TierID]float64, len(ws))
	if total <= 0 {
		out[s.set.Baseline().ID] = 1
		return out
	}
	for _, w := range ws {
		if w.Weight > 0 {
			out[w.Tier.ID] += w.Weight / total
		}
	}
	return out
}
