package quality

import (
	"fmt"
	"strings"

	"github.com/osse101/BrandishRewards_Go/internal/domain"
)

// Weighted pairs a tier with a selection weight.
type Weighted struct {
	Tier   *Tier
	Weight float64
}

// Distribution holds the base per-rank tier weights.
type Distribution struct {
	set    *Set
	byRank map[string][]Weighted
}

// NewDistribution validates per-rank weights against set. Rank names are
// matched case-insensitively.
func NewDistribution(set *Set, weights map[string]map[domain.TierID]int) (*Distribution, error) {
	d := &Distribution{
		set:    set,
		byRank: make(map[string][]Weighted, len(weights)),
	}
	for rank, tw := range weights {
		row := make([]Weighted, 0, len(tw))
		// Walk in tier order so selection order is stable.
		for _, t := range set.Tiers() {
			w, ok := tw[t.ID]
			if !ok {
				continue
			}
			if w < 0 {
				return nil, fmt.Errorf("rank %q tier %q: %s", rank, t.ID, ErrContextNegativeWeight)
			}
			row = append(row, Weighted{Tier: t, Weight: float64(w)})
		}
		for id := range tw {
			if _, ok := set.ByID(id); !ok {
				return nil, fmt.Errorf("rank %q: %w: %q", rank, domain.ErrUnknownTier, id)
			}
		}
		d.byRank[strings.ToLower(rank)] = row
	}
	return d, nil
}

// For returns a fresh copy of rank's weights in ascending tier order. Ranks
// without an explicit entry get a single-tier distribution on the lowest
// ordinary tier.
func (d *Distribution) For(rank string) []Weighted {
	row, ok := d.byRank[strings.ToLower(rank)]
	if !ok {
		return []Weighted{{Tier: d.set.Lowest(), Weight: 1}}
	}
	out := make([]Weighted, len(row))
	copy(out, row)
	return out
}

// Has returns true if rank has an explicit distribution
func (d *Distribution) Has(rank string) bool {
	_, ok := d.byRank[strings.ToLower(rank)]
	return ok
}

// Degenerate returns the ranks whose weights sum to zero.
func (d *Distribution) Degenerate() []string {
	var out []string
	for rank, row := range d.byRank {
		if Total(row) <= 0 {
			out = append(out, rank)
		}
	}
	return out
}

// Total sums the weights
func Total(ws []Weighted) float64 {
	total := 0.0
	for _, w := range ws {
		if w.Weight > 0 {
			total += w.Weight
		}
	}
	return total
}
