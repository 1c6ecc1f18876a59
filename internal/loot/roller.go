package loot

import (
	"math"

	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/quality"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

// StackLimiter supplies the maximum stack size for an item kind.
// A value <= 0 means unlimited.
type StackLimiter interface {
	MaxStack(kind string) int
}

// Roller carries the collaborators needed to turn pool rolls into reward items.
// It holds the random source for one generation call and must not be shared
// across goroutines.
type Roller struct {
	Rand      quality.Rand
	Flags     situation.Resolver
	Quality   *quality.Selector
	Augmenter *quality.Augmenter
	Stacks    StackLimiter
}

// Item rolls quantity, tier, augmentations and special effect for one selected entry.
func (r *Roller) Item(e *Entry, c *situation.Context, multiplier float64) domain.RewardItem {
	qty := e.Min
	if e.Max > e.Min {
		qty += r.Rand.Intn(e.Max - e.Min + 1)
	}

	item := domain.RewardItem{
		Kind:     e.Kind,
		Quantity: r.scale(e.Kind, qty, multiplier),
	}
	if r.Quality == nil {
		return item
	}

	tier := r.Quality.Select(c.Rank(), c, r.Rand)
	item.Tier = tier.ID
	item.TierName = tier.Name
	item.TierColor = tier.Color
	item.Broadcast = tier.Broadcast
	item.Augmentations = r.Augmenter.Apply(tier, e.Kind, r.Rand)
	item.SpecialEffect = tier.RollSpecialEffect(r.Rand)
	return item
}

// scale applies multiplier to qty, rounding to at least 1 and capping at the
// kind's max stack. The product is bounded before conversion so huge
// multipliers cannot overflow int.
func (r *Roller) scale(kind string, qty int, multiplier float64) int {
	limit := math.MaxInt32
	if r.Stacks != nil {
		if s := r.Stacks.MaxStack(kind); s > 0 {
			limit = s
		}
	}

	scaled := math.Round(float64(qty) * multiplier)
	switch {
	case math.IsNaN(scaled) || scaled < 1:
		return 1
	case scaled >= float64(limit):
		return limit
	}
	return int(scaled)
}
