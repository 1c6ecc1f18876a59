package engine

// Log messages
const (
	LogMsgGenerated       = "Rewards generated"
	LogMsgNilContext      = "Generate called without a situational context"
	LogMsgUnknownTable    = "Selection references an unknown table, generating nothing"
	LogMsgSeedFailed      = "Seed source failed, falling back to clock seed"
	LogMsgNoTierForItem   = "Generated item references a tier outside the catalog"
	LogMsgTablesSelected  = "Reward tables selected"
	LogMsgPresenterFailed = "Presenter failed for reward item"
)

// Log field keys
const (
	LogFieldSubject = "subject"
	LogFieldCause   = "cause"
	LogFieldRank    = "rank"
	LogFieldTables  = "tables"
	LogFieldTable   = "table"
	LogFieldItems   = "items"
	LogFieldElapsed = "elapsed"
	LogFieldKind    = "kind"
	LogFieldTier    = "tier"
	LogFieldError   = "error"
)
