package loot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

func TestPoolRolls(t *testing.T) {
	p := &Pool{Name: "supplies", BaseRolls: 2, BonusRolls: 3}

	tests := []struct {
		name string
		opts []ctxOpt
		want int
	}{
		{"base only", nil, 2},
		{"long activity", []ctxOpt{func(b *situation.Builder) { b.ElapsedMinutes(60) }}, 3},
		{"short activity", []ctxOpt{func(b *situation.Builder) { b.ElapsedMinutes(59) }}, 2},
		{"five successes", []ctxOpt{func(b *situation.Builder) { b.SuccessCount(5) }}, 3},
		{"four successes", []ctxOpt{func(b *situation.Builder) { b.SuccessCount(4) }}, 2},
		{"special event", []ctxOpt{func(b *situation.Builder) { b.SpecialEvent(true) }}, 5},
		{"everything", []ctxOpt{func(b *situation.Builder) { b.ElapsedMinutes(90).SuccessCount(7).SpecialEvent(true) }}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Rolls(testContext(t, tt.opts...), testFlags))
		})
	}
}

func TestPoolQuantityMultiplier(t *testing.T) {
	p := &Pool{QuantityMods: []Modifier{
		{Flag: situation.FlagSpecialEvent, Factor: 2},
		{Flag: situation.FlagIsolation, Factor: 1.5},
	}}

	assert.InDelta(t, 1.0, p.QuantityMultiplier(testContext(t), testFlags), 1e-9)

	c := testContext(t, func(b *situation.Builder) { b.SpecialEvent(true).Allies(0).Multiplier(0.5) })
	assert.InDelta(t, 1.5, p.QuantityMultiplier(c, testFlags), 1e-9)
}

func TestPoolGatedEntryNeverSelected(t *testing.T) {
	cuffs := mustEntry(t, "cuffs", 1, 1, 1000, []Predicate{FlagHolds(testFlags, situation.FlagRestrained)}, nil)
	bread := mustEntry(t, "bread", 1, 1, 1, nil, nil)
	p := &Pool{Name: "mixed", BaseRolls: 1, Entries: []*Entry{cuffs, bread}}

	c := testContext(t, func(b *situation.Builder) { b.Restrained(false) })
	assert.Zero(t, cuffs.EffectiveWeight(c, testFlags))

	roller := plainRoller(7)
	for i := 0; i < 1000; i++ {
		items := p.Generate(c, roller)
		require.Len(t, items, 1)
		assert.Equal(t, "bread", items[0].Kind)
	}
}

func TestPoolWithoutRollsIsEmpty(t *testing.T) {
	p := &Pool{
		Name:       "bonus",
		BaseRolls:  0,
		BonusRolls: 4,
		Entries:    []*Entry{mustEntry(t, "bread", 1, 5, 10, nil, nil)},
	}
	c := testContext(t)
	roller := plainRoller(3)
	for i := 0; i < 100; i++ {
		assert.Empty(t, p.Generate(c, roller))
	}
}

func TestPoolGenerateEmptyCases(t *testing.T) {
	bread := mustEntry(t, "bread", 1, 1, 10, nil, nil)
	zero := mustEntry(t, "dust", 1, 1, 0, nil, nil)

	tests := []struct {
		name string
		pool *Pool
	}{
		{"gated pool", &Pool{BaseRolls: 3, Entries: []*Entry{bread}, Gates: []Predicate{SpecialEventOnly()}}},
		{"no entries", &Pool{BaseRolls: 3}},
		{"all zero weight", &Pool{BaseRolls: 3, Entries: []*Entry{zero}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, tt.pool.Generate(testContext(t), plainRoller(1)))
		})
	}
}

func TestPoolPick(t *testing.T) {
	a := mustEntry(t, "a", 1, 1, 1, nil, nil)
	b := mustEntry(t, "b", 1, 1, 1, nil, nil)
	c := mustEntry(t, "c", 1, 1, 1, nil, nil)
	d := mustEntry(t, "d", 1, 1, 1, nil, nil)
	p := &Pool{Entries: []*Entry{a, b, c, d}}
	ws := []float64{0, 2, 0, 2}

	assert.Same(t, b, p.pick(ws, 4, 0))
	assert.Same(t, b, p.pick(ws, 4, 0.49))
	assert.Same(t, d, p.pick(ws, 4, 0.5))
	assert.Same(t, d, p.pick(ws, 4, 0.999))
}

func TestPoolQuantityScaling(t *testing.T) {
	tests := []struct {
		name       string
		qty        int
		multiplier float64
		stacks     fixedStacks
		want       int
	}{
		{"unchanged", 3, 1, nil, 3},
		{"doubled", 3, 2, nil, 6},
		{"rounded half up", 3, 1.5, nil, 5},
		{"never below one", 1, 0.1, nil, 1},
		{"capped at stack", 3, 4, fixedStacks{"bread": 5}, 5},
		{"zero stack is unlimited", 3, 4, fixedStacks{"bread": 0}, 12},
		{"huge multiplier capped at stack", 2, 1e6, fixedStacks{"bread": 64}, 64},
		{"overflowing product capped at stack", 2, 1e19, fixedStacks{"bread": 64}, 64},
		{"far overflowing product capped at stack", 2, 1e30, fixedStacks{"bread": 64}, 64},
		{"overflowing product without stack", 2, 1e30, nil, math.MaxInt32},
		{"infinite multiplier capped at stack", 2, math.Inf(1), fixedStacks{"bread": 64}, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t, func(b *situation.Builder) { b.Multiplier(tt.multiplier) })
			p := &Pool{BaseRolls: 1, Entries: []*Entry{mustEntry(t, "bread", tt.qty, tt.qty, 1, nil, nil)}}
			roller := plainRoller(1)
			if tt.stacks != nil {
				roller.Stacks = tt.stacks
			}
			items := p.Generate(ctx, roller)
			require.Len(t, items, 1)
			assert.Equal(t, tt.want, items[0].Quantity)
		})
	}
}

func TestPoolQuantityWithinRange(t *testing.T) {
	p := &Pool{BaseRolls: 1, Entries: []*Entry{mustEntry(t, "bread", 2, 4, 1, nil, nil)}}
	c := testContext(t)
	roller := plainRoller(11)
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		items := p.Generate(c, roller)
		require.Len(t, items, 1)
		q := items[0].Quantity
		assert.GreaterOrEqual(t, q, 2)
		assert.LessOrEqual(t, q, 4)
		seen[q] = true
	}
	assert.Len(t, seen, 3, "every quantity in range is reachable")
}

func TestPoolGenerateWithQuality(t *testing.T) {
	p := &Pool{BaseRolls: 50, Entries: []*Entry{
		mustEntry(t, "baton", 1, 3, 1, nil, nil),
		mustEntry(t, "vest", 1, 1, 1, nil, nil),
	}}
	c := testContext(t, func(b *situation.Builder) { b.Rank("warden") })

	items := p.Generate(c, fullRoller(t, 99))
	require.Len(t, items, 50)
	for _, item := range items {
		assert.NotEmpty(t, item.Tier)
		assert.NotEmpty(t, item.TierName)
		assert.Equal(t, 1, item.Quantity, "stack limit of one applies")
		for _, aug := range item.Augmentations {
			assert.GreaterOrEqual(t, aug.Level, 1)
		}
	}
}

func TestPoolGenerateDeterministic(t *testing.T) {
	p := &Pool{BaseRolls: 20, BonusRolls: 5, Entries: []*Entry{
		mustEntry(t, "baton", 1, 3, 2, nil, nil),
		mustEntry(t, "vest", 1, 1, 1, nil, nil),
		mustEntry(t, "bread", 1, 8, 3, nil, nil),
	}}
	c := testContext(t, func(b *situation.Builder) { b.Rank("warden").SpecialEvent(true).ElapsedMinutes(90) })

	first := p.Generate(c, fullRoller(t, 2024))
	second := p.Generate(c, fullRoller(t, 2024))
	assert.Equal(t, first, second)

	var kinds []string
	for _, item := range first {
		kinds = append(kinds, item.Kind)
	}
	assert.Subset(t, []string{"baton", "vest", "bread"}, kinds)
	assert.IsType(t, []domain.RewardItem{}, first)
}
