package engine

import (
	"context"
	"strings"

	"github.com/osse101/BrandishRewards_Go/internal/catalog"
	"github.com/osse101/BrandishRewards_Go/internal/logger"
	"github.com/osse101/BrandishRewards_Go/internal/loot"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

// TableSelector decides which tables a context draws from. Returned tables
// are invoked in order; their own gates still apply.
type TableSelector interface {
	Select(ctx context.Context, rules *catalog.RuleCatalog, sc *situation.Context) []*loot.Table
}

// KeyedSelector picks a single table: the one mapped to the context's cause,
// else the one mapped to its rank, else the catalog default.
type KeyedSelector struct{}

// Key returns the table id the context maps to
func (KeyedSelector) Key(rules *catalog.RuleCatalog, sc *situation.Context) string {
	if id, ok := rules.Selection.ByCause[sc.Cause()]; ok {
		return id
	}
	if id, ok := rules.Selection.ByRank[strings.ToLower(sc.Rank())]; ok {
		return id
	}
	return rules.Selection.Default
}

// Select implements TableSelector
func (k KeyedSelector) Select(ctx context.Context, rules *catalog.RuleCatalog, sc *situation.Context) []*loot.Table {
	id := k.Key(rules, sc)
	t, ok := rules.Table(id)
	if !ok {
		logger.FromContext(ctx).Warn(LogMsgUnknownTable, LogFieldTable, id)
		return nil
	}
	return []*loot.Table{t}
}

// AllUsableSelector draws from every registered table whose gates hold.
type AllUsableSelector struct{}

// Select implements TableSelector
func (AllUsableSelector) Select(_ context.Context, rules *catalog.RuleCatalog, sc *situation.Context) []*loot.Table {
	var out []*loot.Table
	for _, t := range rules.Tables() {
		if t.CanUse(sc) {
			out = append(out, t)
		}
	}
	return out
}

// SelectorFor returns the selector matching the catalog's selection mode.
func SelectorFor(rules *catalog.RuleCatalog) TableSelector {
	if rules.Selection.Mode == catalog.SelectionAll {
		return AllUsableSelector{}
	}
	return KeyedSelector{}
}
