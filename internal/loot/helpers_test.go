package loot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/quality"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

var testLadder = situation.NewLadder([]string{"trainee", "guard", "warden", "chief"}, "warden")

var testFlags = situation.NewResolver(testLadder)

type fixedStacks map[string]int

func (s fixedStacks) MaxStack(kind string) int { return s[kind] }

type fakeKinds map[string][]domain.KindClass

func (k fakeKinds) Classes(kind string) []domain.KindClass { return k[kind] }

type fakeAugs map[domain.KindClass][]quality.Augmentation

func (a fakeAugs) For(class domain.KindClass) []quality.Augmentation { return a[class] }

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic test randomness
}

// plainRoller rolls quantities only; items carry no tier.
func plainRoller(seed int64) *Roller {
	return &Roller{Rand: newRand(seed), Flags: testFlags}
}

func fullRoller(t *testing.T, seed int64) *Roller {
	t.Helper()
	set, err := quality.NewSet(quality.DefaultTiers())
	require.NoError(t, err)
	dist, err := quality.NewDistribution(set, map[string]map[domain.TierID]int{
		"warden": {
			quality.TierStandard:  30,
			quality.TierEnhanced:  30,
			quality.TierSuperior:  20,
			quality.TierElite:     12,
			quality.TierLegendary: 6,
			quality.TierMythic:    2,
		},
	})
	require.NoError(t, err)

	kinds := fakeKinds{"baton": {domain.KindWeapon}, "vest": {domain.KindArmor}}
	augs := fakeAugs{
		domain.KindWeapon: {{Name: "sharpness", MaxLevel: 5}, {Name: "knockback", MaxLevel: 2}},
		domain.KindArmor:  {{Name: "protection", MaxLevel: 4}},
	}
	return &Roller{
		Rand:      newRand(seed),
		Flags:     testFlags,
		Quality:   quality.NewSelector(set, dist, quality.NewEscalation(quality.DefaultBonuses(), quality.DefaultEscalationCap)),
		Augmenter: quality.NewAugmenter(kinds, augs),
		Stacks:    fixedStacks{"baton": 1, "vest": 1},
	}
}

type ctxOpt func(b *situation.Builder)

func testContext(t *testing.T, opts ...ctxOpt) *situation.Context {
	t.Helper()
	b := situation.NewBuilder().Subject("p1").Location("yard").Rank("guard").Allies(2)
	for _, o := range opts {
		o(b)
	}
	c, err := b.Build()
	require.NoError(t, err)
	return c
}

func mustEntry(t *testing.T, kind string, minQty, maxQty int, weight float64, gates []Predicate, mods []Modifier) *Entry {
	t.Helper()
	e, err := NewEntry(kind, minQty, maxQty, weight, gates, mods)
	require.NoError(t, err)
	return e
}
