package quality

import (
	"github.com/osse101/BrandishRewards_Go/internal/domain"
)

// Augmentation is one enchant-like modifier candidate.
type Augmentation struct {
	Name     string
	MaxLevel int
}

// KindClassifier answers which kind classes an item kind belongs to.
// An unknown kind has no classes.
type KindClassifier interface {
	Classes(kind string) []domain.KindClass
}

// AugmentationSource lists the augmentations valid for a kind class.
type AugmentationSource interface {
	For(class domain.KindClass) []Augmentation
}

// Augmenter attaches augmentations to generated items based on their tier.
type Augmenter struct {
	kinds  KindClassifier
	source AugmentationSource
}

// NewAugmenter creates an augmenter. Either collaborator may be nil, in which
// case no item is ever augmented.
func NewAugmenter(kinds KindClassifier, source AugmentationSource) *Augmenter {
	return &Augmenter{kinds: kinds, source: source}
}

// Candidates returns the distinct augmentations applicable to kind, in class order.
func (a *Augmenter) Candidates(kind string) []Augmentation {
	if a == nil || a.kinds == nil || a.source == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []Augmentation
	for _, class := range a.kinds.Classes(kind) {
		for _, aug := range a.source.For(class) {
			if seen[aug.Name] {
				continue
			}
			seen[aug.Name] = true
			out = append(out, aug)
		}
	}
	return out
}

// Apply rolls augmentations for an item of kind at tier t. The first roll
// against AugmentChance decides whether there is any augmentation; a second
// independent roll against MultiAugmentChance adds up to MaxExtraAugmentations
// more, drawn without replacement.
func (a *Augmenter) Apply(t *Tier, kind string, rng Rand) []domain.AppliedAugmentation {
	if t.AugmentChance <= 0 || rng.Float64() >= t.AugmentChance {
		return nil
	}
	pool := a.Candidates(kind)
	if len(pool) == 0 {
		return nil
	}

	out := make([]domain.AppliedAugmentation, 0, 1)
	pick := func() {
		i := rng.Intn(len(pool))
		aug := pool[i]
		out = append(out, domain.AppliedAugmentation{Name: aug.Name, Level: Level(aug, t.Ordinal, rng)})
		pool = append(pool[:i], pool[i+1:]...)
	}
	pick()

	if t.MultiAugmentChance > 0 && len(pool) > 0 && rng.Float64() < t.MultiAugmentChance {
		extra := 1 + rng.Intn(ExtraSpread(t.Ordinal))
		for n := 0; n < extra && len(pool) > 0; n++ {
			pick()
		}
	}
	return out
}

// ExtraSpread is the number of possible extra-augmentation counts for a tier
// ordinal: higher tiers can roll more extras, between one and MaxExtraAugmentations.
func ExtraSpread(ordinal int) int {
	return max(1, min(MaxExtraAugmentations, ordinal-1))
}

// Level draws a level for aug at the given tier ordinal, uniformly within
// [max(1, ordinal-1), min(MaxLevel, ordinal+1)]. An empty range yields level 1.
func Level(aug Augmentation, ordinal int, rng Rand) int {
	hi := min(aug.MaxLevel, ordinal+1)
	lo := max(1, ordinal-1)
	if hi < lo {
		return 1
	}
	return lo + rng.Intn(hi-lo+1)
}
