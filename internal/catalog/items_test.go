package catalog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/quality"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //nolint:gosec
}

func TestItemCatalog(t *testing.T) {
	items := NewItemCatalog(8)
	items.Add("sword", []domain.KindClass{domain.KindWeapon}, 1)
	items.Add("arrow", nil, 0)

	assert.True(t, items.Has("sword"))
	assert.False(t, items.Has("shield"))
	assert.Equal(t, []domain.KindClass{domain.KindWeapon}, items.Classes("sword"))
	assert.Empty(t, items.Classes("arrow"))
	assert.Empty(t, items.Classes("shield"))

	assert.Equal(t, 1, items.MaxStack("sword"))
	assert.Equal(t, 8, items.MaxStack("arrow"))
	assert.Equal(t, 8, items.MaxStack("shield"))
	assert.Equal(t, []string{"arrow", "sword"}, items.Kinds())
}

func TestItemCatalogCopiesClasses(t *testing.T) {
	classes := []domain.KindClass{domain.KindTool}
	items := NewItemCatalog(0)
	items.Add("pick", classes, 0)
	classes[0] = domain.KindArmor

	assert.Equal(t, []domain.KindClass{domain.KindTool}, items.Classes("pick"))
	assert.Equal(t, 0, items.MaxStack("pick"))
}

func TestAugmentationCatalog(t *testing.T) {
	augs := NewAugmentationCatalog()
	augs.Add(domain.KindWeapon, quality.Augmentation{Name: "sharpness", MaxLevel: 5})
	augs.Add(domain.KindWeapon, quality.Augmentation{Name: "fire", MaxLevel: 2})

	assert.Equal(t, []quality.Augmentation{{Name: "sharpness", MaxLevel: 5}, {Name: "fire", MaxLevel: 2}}, augs.For(domain.KindWeapon))
	assert.Empty(t, augs.For(domain.KindArmor))
}

func TestExprCompilerCachesPrograms(t *testing.T) {
	ladder := situation.NewLadder([]string{"trainee", "guard", "warden"}, "warden")
	x, err := NewExprCompiler(situation.NewResolver(ladder), 2)
	require.NoError(t, err)

	_, err = x.Program("ctx.allies > 1")
	require.NoError(t, err)
	_, err = x.Program("ctx.allies > 1")
	require.NoError(t, err)
	assert.Equal(t, 1, x.Len())

	_, err = x.Program("ctx.opponents > 1")
	require.NoError(t, err)
	_, err = x.Program("ctx.rank == 'guard'")
	require.NoError(t, err)
	assert.Equal(t, 2, x.Len())
}

func TestExprPredicate(t *testing.T) {
	ladder := situation.NewLadder([]string{"trainee", "guard", "warden"}, "warden")
	x, err := NewExprCompiler(situation.NewResolver(ladder), 0)
	require.NoError(t, err)

	tests := []struct {
		name string
		expr string
		want bool
	}{
		{"rank match", "ctx.rank == 'guard'", true},
		{"location mismatch", "ctx.location == 'east_block'", false},
		{"numeric comparison", "ctx.elapsed_minutes >= 60 && ctx.success_count == 2", true},
		{"flag lookup", "ctx.flags.long_activity && !ctx.flags.high_rank", true},
		{"extension value", "ctx.ext.weather == 'storm'", true},
		{"missing extension errors to false", "ctx.ext.moon == 'full'", false},
		{"non bool result is false", "ctx.allies", false},
		{"multiplier", "ctx.multiplier > 1.0", true},
	}

	c := buildContext(t, func(b *situation.Builder) {
		b.ElapsedMinutes(90).SuccessCount(2).Allies(2).Multiplier(1.5).With("weather", "storm")
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := x.Predicate(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, "expr("+tt.expr+")", p.String())
			assert.Equal(t, tt.want, p.Holds(c))
		})
	}
}
