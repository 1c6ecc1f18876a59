package quality

import (
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

// Bonuses are the additive escalation contributions, one per context heuristic.
type Bonuses struct {
	LongActivity    float64
	ActivePerformer float64
	ContestQuality  float64
	ContestedZone   float64
	SpecialEvent    float64
	Isolation       float64
	Cooldown        float64
}

// DefaultBonuses returns the standard bonus values
func DefaultBonuses() Bonuses {
	return Bonuses{
		LongActivity:    BonusLongActivity,
		ActivePerformer: BonusActivePerformer,
		ContestQuality:  BonusContestQuality,
		ContestedZone:   BonusContestedZone,
		SpecialEvent:    BonusSpecialEvent,
		Isolation:       BonusIsolation,
		Cooldown:        BonusCooldown,
	}
}

// Escalation turns a context into a modifier >= 1.0 that drifts tier mass upward.
type Escalation struct {
	Bonuses Bonuses
	Cap     float64
}

// NewEscalation creates an escalation model. A cap <= 0 means DefaultEscalationCap.
func NewEscalation(b Bonuses, limit float64) Escalation {
	if limit <= 0 {
		limit = DefaultEscalationCap
	}
	if limit < 1 {
		limit = 1
	}
	return Escalation{Bonuses: b, Cap: limit}
}

// Raw returns 1.0 plus every applicable bonus, without the cap.
func (e Escalation) Raw(c *situation.Context) float64 {
	m := 1.0
	if c.ElapsedMinutes() >= situation.LongActivityMinutes {
		m += e.Bonuses.LongActivity
	}
	if c.SuccessCount() >= situation.ActivePerformerSuccesses {
		m += e.Bonuses.ActivePerformer
	}
	if c.ContestSeconds() >= situation.ContestQualitySeconds {
		m += e.Bonuses.ContestQuality
	}
	if c.ContestedZone() {
		m += e.Bonuses.ContestedZone
	}
	if c.SpecialEvent() {
		m += e.Bonuses.SpecialEvent
	}
	if c.Allies() <= situation.IsolationMaxAllies {
		m += e.Bonuses.Isolation
	}
	if c.SecondsSinceNegative() >= situation.NegativeCooldownSeconds {
		m += e.Bonuses.Cooldown
	}
	return m
}

// Modifier returns the capped escalation modifier in [1.0, Cap].
func (e Escalation) Modifier(c *situation.Context) float64 {
	m := e.Raw(c)
	if m < 1 {
		return 1
	}
	if m > e.Cap {
		return e.Cap
	}
	return m
}

// Shift moves probability mass toward higher tiers. For each adjacent pair of
// supported tiers in ascending order, weight(current) × (modifier−1) × ShiftFraction
// moves from current to next, measured on the pre-shift weights. Only tiers with
// positive weight take part, so tiers outside the distribution's support stay
// unreachable.
func Shift(ws []Weighted, modifier float64) []Weighted {
	out := make([]Weighted, len(ws))
	copy(out, ws)

	k := (modifier - 1.0) * ShiftFraction
	if k <= 0 {
		return out
	}

	prev := -1
	for i := range ws {
		if ws[i].Weight <= 0 {
			continue
		}
		if prev >= 0 {
			move := ws[prev].Weight * k
			out[prev].Weight -= move
			out[i].Weight += move
		}
		prev = i
	}
	return out
}
