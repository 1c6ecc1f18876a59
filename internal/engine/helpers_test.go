package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishRewards_Go/internal/catalog"
	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/quality"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

const defaultRulesPath = "../../configs/rules.json"

// testRules has one guaranteed coin in "standard", an arrest table and a
// chief-only vault.
const testRules = `{
	"version": "engine-test",
	"ranks": {"ladder": ["trainee", "guard", "chief"], "high_rank": "chief"},
	"distributions": {
		"trainee": {"standard": 1},
		"guard": {"standard": 1},
		"chief": {"legendary": 1}
	},
	"items": [{"kind": "baton", "classes": ["weapon"], "max_stack": 1}],
	"augmentations": {"weapon": [{"name": "sharpness", "max_level": 5}]},
	"tables": [
		{"id": "standard", "pools": [{"name": "main", "base_rolls": 1,
			"entries": [{"kind": "coin", "min": 1, "max": 1, "weight": 1}]}]},
		{"id": "arrest", "gates": [{"type": "cause", "values": ["arrest"]}],
			"pools": [{"name": "bounty", "base_rolls": 2,
			"entries": [{"kind": "handcuffs", "min": 1, "max": 1, "weight": 1}]}]},
		{"id": "vault", "gates": [{"type": "min_rank", "value": "chief"}],
			"pools": [{"name": "vault", "base_rolls": 1,
			"entries": [{"kind": "baton", "min": 1, "max": 3, "weight": 1}]}]}
	],
	"selection": {%s}
}`

func parseRules(t *testing.T, selection string) *catalog.RuleCatalog {
	t.Helper()
	l, err := catalog.NewLoader(catalog.Options{})
	require.NoError(t, err)
	rules, err := l.Parse([]byte(fmt.Sprintf(testRules, selection)), catalog.FormatJSON)
	require.NoError(t, err)
	return rules
}

func keyedRules(t *testing.T) *catalog.RuleCatalog {
	return parseRules(t, `"by_cause": {"arrest": "arrest"}, "by_rank": {"chief": "vault"}`)
}

func defaultRules(t *testing.T) *catalog.RuleCatalog {
	t.Helper()
	rules, err := catalog.Load(defaultRulesPath, catalog.Options{})
	require.NoError(t, err)
	return rules
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic test randomness
}

func buildContext(t *testing.T, opts ...func(*situation.Builder)) *situation.Context {
	t.Helper()
	b := situation.NewBuilder().Subject("p1").Location("yard").Rank("guard")
	for _, o := range opts {
		o(b)
	}
	c, err := b.Build()
	require.NoError(t, err)
	return c
}

type presented struct {
	item domain.RewardItem
	tier *quality.Tier
}

// recordingPresenter captures what the engine hands to presentation
type recordingPresenter struct {
	mu    sync.Mutex
	calls []presented
	fail  string
}

func (p *recordingPresenter) Present(_ context.Context, _ *situation.Context, item domain.RewardItem, tier *quality.Tier) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, presented{item: item, tier: tier})
	if item.Kind == p.fail {
		return errors.New("speaker offline")
	}
	return nil
}
