package quality

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

// scriptedRand replays fixed values; it panics when a script runs out so tests
// notice unexpected draws.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic test randomness
}

func testSet(t *testing.T) *Set {
	t.Helper()
	s, err := NewSet(DefaultTiers())
	require.NoError(t, err)
	return s
}

func testDistribution(t *testing.T, s *Set) *Distribution {
	t.Helper()
	d, err := NewDistribution(s, map[string]map[domain.TierID]int{
		"trainee": {TierDamaged: 40, TierStandard: 50, TierEnhanced: 10},
		"warden": {
			TierStandard:  30,
			TierEnhanced:  30,
			TierSuperior:  20,
			TierElite:     12,
			TierLegendary: 6,
			TierMythic:    2,
		},
		"broken": {TierStandard: 0, TierEnhanced: 0},
	})
	require.NoError(t, err)
	return d
}

// quietContext has no escalation bonus at all: two allies avoid the isolation bonus.
func quietContext(t *testing.T, rank string) *situation.Context {
	t.Helper()
	c, err := situation.NewBuilder().Subject("p1").Location("yard").Rank(rank).Allies(2).Build()
	require.NoError(t, err)
	return c
}
