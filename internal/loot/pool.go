package loot

import (
	"fmt"

	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

// Pool is a group of weighted entries rolled a context-dependent number of times.
type Pool struct {
	Name         string
	BaseRolls    int
	BonusRolls   int
	Entries      []*Entry
	Gates        []Predicate
	QuantityMods []Modifier
}

// Validate checks the pool and every entry in it.
func (p *Pool) Validate() error {
	if p.BaseRolls < 0 || p.BonusRolls < 0 {
		return fmt.Errorf("%w: %s: pool %q", domain.ErrInvalidRules, ErrContextNegativeRolls, p.Name)
	}
	for _, e := range p.Entries {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("pool %q: %w", p.Name, err)
		}
	}
	return validateModifiers(p.QuantityMods)
}

// Rolls returns the number of draws for c. The result is always within
// [BaseRolls, BaseRolls+LongActivityBonusRolls+PerformerBonusRolls+BonusRolls].
func (p *Pool) Rolls(c *situation.Context, r situation.Resolver) int {
	rolls := p.BaseRolls
	if r.Holds(c, situation.FlagLongActivity) {
		rolls += LongActivityBonusRolls
	}
	if c.SuccessCount() >= PerformerBonusRollSuccesses {
		rolls += PerformerBonusRolls
	}
	if c.SpecialEvent() {
		rolls += p.BonusRolls
	}
	return rolls
}

// QuantityMultiplier folds the pool's quantity modifiers whose flag holds,
// then applies the context's global multiplier.
func (p *Pool) QuantityMultiplier(c *situation.Context, r situation.Resolver) float64 {
	m := 1.0
	for _, mod := range p.QuantityMods {
		if r.Holds(c, mod.Flag) {
			m *= mod.Factor
		}
	}
	return m * c.Multiplier()
}

// Weights returns each entry's effective weight under c, in entry order.
func (p *Pool) Weights(c *situation.Context, r situation.Resolver) ([]float64, float64) {
	ws := make([]float64, len(p.Entries))
	total := 0.0
	for i, e := range p.Entries {
		ws[i] = e.EffectiveWeight(c, r)
		total += ws[i]
	}
	return ws, total
}

// Generate rolls the pool against c. A gated-out pool, a pool with no rolls,
// or a pool whose entries all weigh 0 produces nothing.
func (p *Pool) Generate(c *situation.Context, roller *Roller) []domain.RewardItem {
	if !AllHold(p.Gates, c) {
		return nil
	}
	rolls := p.Rolls(c, roller.Flags)
	if rolls == 0 {
		return nil
	}

	// Context is immutable, so effective weights are the same for every roll.
	ws, total := p.Weights(c, roller.Flags)
	if total <= 0 {
		return nil
	}
	multiplier := p.QuantityMultiplier(c, roller.Flags)

	items := make([]domain.RewardItem, 0, rolls)
	for range rolls {
		e := p.pick(ws, total, roller.Rand.Float64())
		if e == nil {
			continue
		}
		items = append(items, roller.Item(e, c, multiplier))
	}
	return items
}

// pick walks the cumulative weights with u drawn from [0,1).
func (p *Pool) pick(ws []float64, total, u float64) *Entry {
	target := u * total
	acc := 0.0
	var last *Entry
	for i, w := range ws {
		if w <= 0 {
			continue
		}
		acc += w
		last = p.Entries[i]
		if acc > target {
			return p.Entries[i]
		}
	}
	return last
}
