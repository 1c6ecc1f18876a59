package catalog

import (
	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/loot"
	"github.com/osse101/BrandishRewards_Go/internal/quality"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

// Options override values from the rules file
type Options struct {
	// DefaultMaxStack replaces the file's default_max_stack when > 0
	DefaultMaxStack int
	// EscalationCap replaces the file's escalation cap when > 0
	EscalationCap float64
	// ProgramCacheSize bounds the CEL program cache
	ProgramCacheSize int
}

// Selection is the configured table-selection policy
type Selection struct {
	Mode    string
	Default string
	ByCause map[domain.Cause]string
	ByRank  map[string]string
}

// RuleCatalog is the immutable rule data the engine generates from. It is
// built once at startup and shared by every generation.
type RuleCatalog struct {
	Version       string
	Ladder        situation.Ladder
	Flags         situation.Resolver
	Tiers         *quality.Set
	Distribution  *quality.Distribution
	Escalation    quality.Escalation
	Items         *ItemCatalog
	Augmentations *AugmentationCatalog
	Selection     Selection

	tables    []*loot.Table
	byID      map[string]*loot.Table
	selector  *quality.Selector
	augmenter *quality.Augmenter
}

// Tables returns every table in registration order. The slice must not be modified.
func (c *RuleCatalog) Tables() []*loot.Table { return c.tables }

// Table looks up a table by id
func (c *RuleCatalog) Table(id string) (*loot.Table, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// QualitySelector returns the tier selector for the catalog's tiers and distribution
func (c *RuleCatalog) QualitySelector() *quality.Selector { return c.selector }

// Augmenter returns the augmenter backed by the item and augmentation catalogs
func (c *RuleCatalog) Augmenter() *quality.Augmenter { return c.augmenter }

// Roller creates a roller over rng for one generation call.
func (c *RuleCatalog) Roller(rng quality.Rand) *loot.Roller {
	return &loot.Roller{
		Rand:      rng,
		Flags:     c.Flags,
		Quality:   c.selector,
		Augmenter: c.augmenter,
		Stacks:    c.Items,
	}
}
