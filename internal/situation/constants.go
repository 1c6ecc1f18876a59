package situation

// ============================================================================
// Context fact thresholds
// ============================================================================

// LongActivityMinutes is the elapsed-activity threshold for the long_activity flag.
const LongActivityMinutes = 60

// ActivePerformerSuccesses is the success-count threshold for the active_performer flag.
const ActivePerformerSuccesses = 3

// ContestQualitySeconds is the contest duration that counts as a quality contest.
const ContestQualitySeconds = 30

// IsolationMaxAllies is the largest nearby-ally count that still counts as isolated.
const IsolationMaxAllies = 1

// NegativeCooldownSeconds is the time since the last negative event after which
// the cooldown bonus applies.
const NegativeCooldownSeconds = 1800

// DefaultMultiplier is the global multiplier applied when none is supplied.
const DefaultMultiplier = 1.0

// ============================================================================
// Mandatory field names (reported in ValidationError.Missing)
// ============================================================================

const (
	FieldSubject  = "subject"
	FieldLocation = "location"
)

// ============================================================================
// Log attribute keys
// ============================================================================

const (
	LogFieldSubject  = "subject"
	LogFieldRank     = "rank"
	LogFieldLocation = "location"
	LogFieldCause    = "cause"
)
