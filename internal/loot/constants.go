package loot

// Contextual roll bonuses
const (
	// PerformerBonusRollSuccesses is the success count that earns one extra pool roll.
	PerformerBonusRollSuccesses = 5
	LongActivityBonusRolls      = 1
	PerformerBonusRolls         = 1
)

// Predicate names used by the built-in constructors
const (
	GateAll          = "all"
	GateRankIs       = "rank_is"
	GateMinRank      = "min_rank"
	GateRegion       = "region"
	GateCause        = "cause"
	GateMinActivity  = "min_activity_minutes"
	GateSpecialEvent = "special_event_only"
	GateFlag         = "flag"
	GateNotFlag      = "not_flag"
	GateExpr         = "expr"
)

// Error context messages for rule validation
const (
	ErrContextEmptyKind      = "entry kind must not be empty"
	ErrContextQuantityRange  = "entry quantity must satisfy 1 <= min <= max"
	ErrContextNegativeWeight = "entry weight must be >= 0"
	ErrContextNegativeFactor = "modifier factor must be >= 0"
	ErrContextNegativeRolls  = "pool rolls must be >= 0"
	ErrContextEmptyTableID   = "table id must not be empty"
)
