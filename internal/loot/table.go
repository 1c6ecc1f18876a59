package loot

import (
	"fmt"

	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

// Table is a named, gated collection of pools. A table without pools is legal
// and yields nothing.
type Table struct {
	ID    string
	Name  string
	Pools []*Pool
	Gates []Predicate
}

// Validate checks the table and every pool in it.
func (t *Table) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidRules, ErrContextEmptyTableID)
	}
	for _, p := range t.Pools {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("table %q: %w", t.ID, err)
		}
	}
	return nil
}

// CanUse returns true if every table gate holds for c.
func (t *Table) CanUse(c *situation.Context) bool {
	return AllHold(t.Gates, c)
}

// GenerateLoot concatenates the output of every pool in registration order.
// It returns an empty, non-nil list when the table is gated out.
func (t *Table) GenerateLoot(c *situation.Context, roller *Roller) []domain.RewardItem {
	items := make([]domain.RewardItem, 0)
	if !t.CanUse(c) {
		return items
	}
	for _, p := range t.Pools {
		items = append(items, p.Generate(c, roller)...)
	}
	return items
}
