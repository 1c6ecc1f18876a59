package loot

import (
	"fmt"

	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

// Modifier multiplies a weight or quantity when its flag holds.
type Modifier struct {
	Flag   situation.Flag
	Factor float64
}

// Entry is one weighted candidate inside a pool.
type Entry struct {
	Kind      string
	Min       int
	Max       int
	Weight    float64
	Gates     []Predicate
	Modifiers []Modifier
}

// NewEntry creates a validated entry.
func NewEntry(kind string, minQty, maxQty int, weight float64, gates []Predicate, mods []Modifier) (*Entry, error) {
	e := &Entry{
		Kind:      kind,
		Min:       minQty,
		Max:       maxQty,
		Weight:    weight,
		Gates:     gates,
		Modifiers: mods,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks the entry's structural invariants.
func (e *Entry) Validate() error {
	if e.Kind == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidRules, ErrContextEmptyKind)
	}
	if e.Min < 1 || e.Min > e.Max {
		return fmt.Errorf("%w: %s: %s [%d,%d]", domain.ErrInvalidRules, ErrContextQuantityRange, e.Kind, e.Min, e.Max)
	}
	if e.Weight < 0 {
		return fmt.Errorf("%w: %s: %s", domain.ErrInvalidRules, ErrContextNegativeWeight, e.Kind)
	}
	return validateModifiers(e.Modifiers)
}

// EffectiveWeight returns the entry's weight under c. Gated-out entries weigh 0.
func (e *Entry) EffectiveWeight(c *situation.Context, r situation.Resolver) float64 {
	if !AllHold(e.Gates, c) {
		return 0
	}
	w := e.Weight
	for _, m := range e.Modifiers {
		if r.Holds(c, m.Flag) {
			w *= m.Factor
		}
	}
	if w < 0 {
		return 0
	}
	return w
}

func validateModifiers(mods []Modifier) error {
	for _, m := range mods {
		if _, err := situation.ParseFlag(string(m.Flag)); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrInvalidRules, err)
		}
		if m.Factor < 0 {
			return fmt.Errorf("%w: %s: %s", domain.ErrInvalidRules, ErrContextNegativeFactor, m.Flag)
		}
	}
	return nil
}
