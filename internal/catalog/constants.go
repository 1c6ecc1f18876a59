package catalog

// Rule file formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// RuleSchemaID is the id the embedded rules schema is registered under
const RuleSchemaID = "rules.schema.json"

// Selection modes
const (
	SelectionKeyed = "keyed"
	SelectionAll   = "all"
)

// DefaultTableID is the table used when no selection key matches
const DefaultTableID = "standard"

// Defaults applied when the rules file and options leave a value unset
const (
	DefaultMaxStack     = 64
	DefaultProgramCache = 256
)

// CEL evaluation limits
const (
	ExprCostLimit               = 10000
	ExprInterruptCheckFrequency = 100
)

// CEL activation
const (
	ExprVariable = "ctx"

	ExprFieldSubject        = "subject"
	ExprFieldCounterpart    = "counterpart"
	ExprFieldRank           = "rank"
	ExprFieldLocation       = "location"
	ExprFieldCause          = "cause"
	ExprFieldElapsedMinutes = "elapsed_minutes"
	ExprFieldSuccessCount   = "success_count"
	ExprFieldSinceNegative  = "seconds_since_negative"
	ExprFieldContestSeconds = "contest_seconds"
	ExprFieldAllies         = "allies"
	ExprFieldOpponents      = "opponents"
	ExprFieldControlledTask = "controlled_task"
	ExprFieldRestrained     = "restrained"
	ExprFieldContestedZone  = "contested_zone"
	ExprFieldSpecialEvent   = "special_event"
	ExprFieldMultiplier     = "multiplier"
	ExprFieldFlags          = "flags"
	ExprFieldExt            = "ext"
)

// Escalation bonus keys in the rules file
const (
	BonusKeyLongActivity    = "long_activity"
	BonusKeyActivePerformer = "active_performer"
	BonusKeyContestQuality  = "contest_quality"
	BonusKeyContestedZone   = "contested_zone"
	BonusKeySpecialEvent    = "special_event"
	BonusKeyIsolation       = "isolation"
	BonusKeyCooldown        = "cooldown"
)

// Error messages
const (
	ErrMsgReadRulesFailed   = "failed to read rules file %s: %w"
	ErrMsgParseRulesFailed  = "failed to parse rules: %w"
	ErrMsgSchemaFailed      = "schema validation failed: %w"
	ErrMsgDefinitionFailed  = "rule definition invalid: %s"
	ErrMsgUnknownFormat     = "unknown rules format %q"
	ErrMsgCompileGateFailed = "gate %s: %w"
	ErrMsgGateNeedsValue    = "needs a value"
	ErrMsgGateNeedsValues   = "needs at least one value"
	ErrMsgUnknownRank       = "rank %q is not on the ladder"
	ErrMsgUnknownCause      = "unknown cause %q"
	ErrMsgDuplicateTable    = "duplicate table id %q"
	ErrMsgDuplicateItem     = "duplicate item kind %q"
	ErrMsgSelectionTable    = "selection %s references table %q"
	ErrMsgExprCompileFailed = "CEL compile error: %w"
	ErrMsgExprProgramFailed = "CEL program error: %w"
	ErrMsgExprCacheFailed   = "CEL program cache: %w"
	ErrMsgExprEnvFailed     = "failed to create CEL env: %w"
)

// Log messages
const (
	LogMsgRulesLoaded    = "Reward rules loaded"
	LogMsgDegenerateRank = "Rank distribution has no positive weight, baseline tier will be used"
	LogMsgZeroWeightPool = "Pool entries all have zero base weight"
	LogMsgExprEvalFailed = "CEL gate evaluation failed, treating as false"
	LogMsgUnusedAugClass = "Augmentations defined for a class with no items"
)
