package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert messages
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRequestID      = "X-Request-ID"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Rate limiting and alerting
const (
	DefaultRateLimit         = 1000
	DefaultRateWindow        = 5 * time.Minute
	FailedAuthAlertThreshold = 5
	HighRateLogEvery         = 100
)

// Request limits
const (
	MaxRequestBodyBytes = 1 << 20
	ReadHeaderTimeout   = 5 * time.Second
)

// Route paths
const (
	PathHealthz   = "/healthz"
	PathReadyz    = "/readyz"
	PathVersion   = "/version"
	PathMetrics   = "/metrics"
	PathAPIPrefix = "/api/v1"
)

// PublicPaths are path prefixes that bypass authentication
var PublicPaths = []string{
	PathHealthz,
	PathReadyz,
	PathVersion,
	PathMetrics,
}

// quietPaths are not logged per request
var quietPaths = []string{
	PathHealthz,
	PathReadyz,
	PathMetrics,
}

// RedactedValue replaces secret header values in logs
const RedactedValue = "[REDACTED]"
