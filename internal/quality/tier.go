package quality

import (
	"fmt"
	"sort"

	"github.com/osse101/BrandishRewards_Go/internal/domain"
)

// Rand is the random source used by tier selection and augmentation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Effects holds presentation tokens for a tier. The engine never interprets
// them; they are handed to the presenter as-is.
type Effects struct {
	Sound        string `json:"sound,omitempty"`
	Visual       string `json:"visual,omitempty"`
	Announcement string `json:"announcement,omitempty"`
}

// IsZero returns true if no effect token is set
func (e Effects) IsZero() bool {
	return e.Sound == "" && e.Visual == "" && e.Announcement == ""
}

// Tier is one immutable reward grade.
type Tier struct {
	ID      domain.TierID
	Name    string
	Color   string
	Ordinal int

	AugmentChance       float64
	MultiAugmentChance  float64
	SpecialEffectChance float64
	Broadcast           bool

	// Special tiers are only reachable through explicit distribution weight;
	// they are never used as a fallback.
	Special  bool
	Baseline bool

	Effects Effects
}

// RollSpecialEffect draws against the tier's special-effect chance
func (t *Tier) RollSpecialEffect(rng Rand) bool {
	if t.SpecialEffectChance <= 0 {
		return false
	}
	return rng.Float64() < t.SpecialEffectChance
}

// Set is the totally ordered collection of tiers, worst first.
type Set struct {
	tiers    []*Tier
	byID     map[domain.TierID]*Tier
	lowest   *Tier
	baseline *Tier
}

// NewSet validates and orders tiers by ordinal
func NewSet(tiers []Tier) (*Set, error) {
	s := &Set{
		tiers: make([]*Tier, 0, len(tiers)),
		byID:  make(map[domain.TierID]*Tier, len(tiers)),
	}
	ordinals := make(map[int]domain.TierID, len(tiers))

	for i := range tiers {
		t := tiers[i]
		if _, dup := s.byID[t.ID]; dup {
			return nil, fmt.Errorf("%s: %q", ErrContextDuplicateTier, t.ID)
		}
		if other, dup := ordinals[t.Ordinal]; dup {
			return nil, fmt.Errorf("%s: %q and %q share %d", ErrContextDuplicateOrdinal, other, t.ID, t.Ordinal)
		}
		for _, p := range []float64{t.AugmentChance, t.MultiAugmentChance, t.SpecialEffectChance} {
			if p < 0 || p > 1 {
				return nil, fmt.Errorf("tier %q: %s", t.ID, ErrContextBadChance)
			}
		}
		ordinals[t.Ordinal] = t.ID
		s.byID[t.ID] = &t
		s.tiers = append(s.tiers, &t)
	}

	sort.Slice(s.tiers, func(i, j int) bool { return s.tiers[i].Ordinal < s.tiers[j].Ordinal })

	for _, t := range s.tiers {
		if !t.Special && s.lowest == nil {
			s.lowest = t
		}
		if t.Baseline && s.baseline == nil {
			s.baseline = t
		}
	}
	if s.lowest == nil {
		return nil, fmt.Errorf("%s", ErrContextNoOrdinaryTier)
	}
	if s.baseline == nil {
		s.baseline = s.lowest
	}
	return s, nil
}

// Tiers returns the tiers worst first. The slice must not be modified.
func (s *Set) Tiers() []*Tier { return s.tiers }

// ByID looks up a tier by id
func (s *Set) ByID(id domain.TierID) (*Tier, bool) {
	t, ok := s.byID[id]
	return t, ok
}

// Lowest returns the lowest non-special tier.
func (s *Set) Lowest() *Tier { return s.lowest }

// Baseline returns the fallback tier for degenerate distributions.
func (s *Set) Baseline() *Tier { return s.baseline }

// DefaultTiers returns the built-in seven-grade tier table.
func DefaultTiers() []Tier {
	return []Tier{
		{ID: TierDamaged, Name: "Damaged", Color: "gray", Ordinal: 0, AugmentChance: 0.0},
		{ID: TierStandard, Name: "Standard", Color: "white", Ordinal: 1, AugmentChance: 0.05, Baseline: true},
		{ID: TierEnhanced, Name: "Enhanced", Color: "green", Ordinal: 2, AugmentChance: 0.20, MultiAugmentChance: 0.02},
		{ID: TierSuperior, Name: "Superior", Color: "blue", Ordinal: 3, AugmentChance: 0.40, MultiAugmentChance: 0.08, SpecialEffectChance: 0.05,
			Effects: Effects{Sound: "block.note_block.chime"}},
		{ID: TierElite, Name: "Elite", Color: "purple", Ordinal: 4, AugmentChance: 0.60, MultiAugmentChance: 0.15, SpecialEffectChance: 0.15,
			Effects: Effects{Sound: "entity.player.levelup", Visual: "enchant"}},
		{ID: TierLegendary, Name: "Legendary", Color: "gold", Ordinal: 5, AugmentChance: 0.85, MultiAugmentChance: 0.35, SpecialEffectChance: 0.40, Broadcast: true,
			Effects: Effects{Sound: "ui.toast.challenge_complete", Visual: "totem", Announcement: "legendary_drop"}},
		{ID: TierMythic, Name: "Mythic", Color: "red", Ordinal: 6, AugmentChance: 1.0, MultiAugmentChance: 0.60, SpecialEffectChance: 0.75, Broadcast: true,
			Effects: Effects{Sound: "entity.ender_dragon.growl", Visual: "dragon_breath", Announcement: "mythic_drop"}},
	}
}
