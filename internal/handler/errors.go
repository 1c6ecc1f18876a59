package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidContext        = "Invalid situational context"
	ErrMsgTableNotFound         = "Reward table not found"
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgRulesNotLoaded        = "reward rules not loaded"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgContextRejected   = "Situational context rejected"
	LogMsgGenerateCompleted = "Generate request completed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgReadinessFailed   = "Readiness check failed"
)

// Health statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// Query parameters
const (
	QueryParamRank   = "rank"
	QueryParamPrefix = "prefix"
)
