package quality

// ============================================================================
// Escalation bonuses (additive on top of 1.0)
// ============================================================================

// BonusLongActivity applies when elapsed activity is at least an hour.
const BonusLongActivity = 0.20

// BonusActivePerformer applies when the subject has 3+ successes this session.
const BonusActivePerformer = 0.15

// BonusContestQuality applies when the contest lasted at least 30 seconds.
const BonusContestQuality = 0.10

// BonusContestedZone applies inside a contested zone.
const BonusContestedZone = 0.15

// BonusSpecialEvent applies while a special event is running.
const BonusSpecialEvent = 0.25

// BonusIsolation applies when the subject had at most one ally nearby.
const BonusIsolation = 0.20

// BonusCooldown applies when the last negative event was 30+ minutes ago.
const BonusCooldown = 0.10

// ============================================================================
// Escalation shape
// ============================================================================

// ShiftFraction is the share of (modifier-1) of a tier's weight that moves to the
// next tier up in one pass.
const ShiftFraction = 0.3

// DefaultEscalationCap is the largest escalation modifier honored. With the
// shift fraction this moves at most 30% of any tier's own weight upward.
const DefaultEscalationCap = 2.0

// ============================================================================
// Augmentation
// ============================================================================

// MaxExtraAugmentations bounds the additional augmentations from a multi roll.
const MaxExtraAugmentations = 3

// ============================================================================
// Built-in tier ids
// ============================================================================

const (
	TierDamaged   = "damaged"
	TierStandard  = "standard"
	TierEnhanced  = "enhanced"
	TierSuperior  = "superior"
	TierElite     = "elite"
	TierLegendary = "legendary"
	TierMythic    = "mythic"
)

// Error context messages for tier set construction
const (
	ErrContextDuplicateTier    = "duplicate tier id"
	ErrContextDuplicateOrdinal = "duplicate tier ordinal"
	ErrContextNoOrdinaryTier   = "tier set needs at least one non-special tier"
	ErrContextBadChance        = "chance must be within [0, 1]"
	ErrContextNegativeWeight   = "distribution weight must be >= 0"
)
