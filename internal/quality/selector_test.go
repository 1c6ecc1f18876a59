package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

func testSelector(t *testing.T) *Selector {
	t.Helper()
	s := testSet(t)
	return NewSelector(s, testDistribution(t, s), NewEscalation(DefaultBonuses(), DefaultEscalationCap))
}

func sample(sel *Selector, rank string, c *situation.Context, n int, seed int64) map[domain.TierID]int {
	rng := newRand(seed)
	counts := make(map[domain.TierID]int)
	for i := 0; i < n; i++ {
		counts[sel.Select(rank, c, rng).ID]++
	}
	return counts
}

func TestSelectTraineeWithoutBonuses(t *testing.T) {
	sel := testSelector(t)
	c := quietContext(t, "trainee")

	const draws = 10000
	counts := sample(sel, "trainee", c, draws, 42)

	enhanced := float64(counts[TierEnhanced]) / draws
	assert.InDelta(t, 0.10, enhanced, 0.015)
	assert.Equal(t, draws, counts[TierDamaged]+counts[TierStandard]+counts[TierEnhanced],
		"only tiers in the distribution are drawn")
}

func TestSelectWardenEscalatesTopTiers(t *testing.T) {
	sel := testSelector(t)
	plain := quietContext(t, "warden")
	boosted, err := situation.NewBuilder().
		Subject("p1").
		Location("yard").
		Rank("warden").
		Allies(2).
		SpecialEvent(true).
		ElapsedMinutes(90).
		Build()
	require.NoError(t, err)

	const draws = 100000
	base := sample(sel, "warden", plain, draws, 7)
	hot := sample(sel, "warden", boosted, draws, 7)

	baseTop := base[TierLegendary] + base[TierMythic]
	hotTop := hot[TierLegendary] + hot[TierMythic]
	assert.Greater(t, hotTop, baseTop)

	pBase := sel.Probabilities("warden", plain)
	pHot := sel.Probabilities("warden", boosted)
	assert.Greater(t, pHot[TierLegendary]+pHot[TierMythic], pBase[TierLegendary]+pBase[TierMythic])
}

func TestSelectMonotonicAboveMode(t *testing.T) {
	sel := testSelector(t)
	ladder := []*situation.Builder{
		situation.NewBuilder().Allies(2),
		situation.NewBuilder().Allies(2).ContestedZone(true),
		situation.NewBuilder().Allies(2).ContestedZone(true).SpecialEvent(true),
		situation.NewBuilder().ContestedZone(true).SpecialEvent(true).ElapsedMinutes(80),
	}

	const draws = 100000
	// Mode of the unboosted trainee distribution is "standard".
	atOrAbove := func(counts map[domain.TierID]int) float64 {
		return float64(counts[TierStandard]+counts[TierEnhanced]) / draws
	}

	prev := -1.0
	for i, b := range ladder {
		c, err := b.Subject("p1").Location("yard").Rank("trainee").Build()
		require.NoError(t, err)
		share := atOrAbove(sample(sel, "trainee", c, draws, int64(100+i)))
		assert.GreaterOrEqual(t, share, prev-0.02, "step %d", i)
		prev = share
	}
}

func TestSelectFallbacks(t *testing.T) {
	sel := testSelector(t)

	t.Run("degenerate distribution returns baseline", func(t *testing.T) {
		c := quietContext(t, "broken")
		for i := 0; i < 100; i++ {
			got := sel.Select("broken", c, newRand(int64(i)))
			require.NotNil(t, got)
			assert.Equal(t, domain.TierID(TierStandard), got.ID)
		}
		assert.Equal(t, map[domain.TierID]float64{TierStandard: 1}, sel.Probabilities("broken", c))
	})

	t.Run("unknown rank returns lowest ordinary tier", func(t *testing.T) {
		c := quietContext(t, "janitor")
		got := sel.Select("janitor", c, newRand(1))
		assert.Equal(t, domain.TierID(TierDamaged), got.ID)
	})

	t.Run("draw at the upper edge still returns a tier", func(t *testing.T) {
		c := quietContext(t, "trainee")
		got := sel.Select("trainee", c, &scriptedRand{floats: []float64{0.9999999999999999}})
		assert.Equal(t, domain.TierID(TierEnhanced), got.ID)
	})

	t.Run("zero draw skips zero-weight tiers", func(t *testing.T) {
		s := testSet(t)
		d, err := NewDistribution(s, map[string]map[domain.TierID]int{"guard": {TierDamaged: 0, TierStandard: 5}})
		require.NoError(t, err)
		sel := NewSelector(s, d, NewEscalation(DefaultBonuses(), 1))
		got := sel.Select("guard", quietContext(t, "guard"), &scriptedRand{floats: []float64{0}})
		assert.Equal(t, domain.TierID(TierStandard), got.ID)
	})
}

func TestProbabilitiesSumToOne(t *testing.T) {
	sel := testSelector(t)
	c := quietContext(t, "warden")
	total := 0.0
	for _, p := range sel.Probabilities("warden", c) {
		total += p
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}
