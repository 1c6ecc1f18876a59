package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Reward metric names
const (
	MetricNameGenerationsTotal    = "reward_generations_total"
	MetricNameGenerationDuration  = "reward_generation_duration_seconds"
	MetricNameItemsGenerated      = "reward_items_generated_total"
	MetricNameAugmentationsTotal  = "reward_augmentations_total"
	MetricNameBroadcastItemsTotal = "reward_broadcast_items_total"
	MetricNameTableInvocations    = "reward_table_invocations_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Reward metric help text
const (
	HelpTextGenerationsTotal    = "Total number of reward generations by outcome"
	HelpTextGenerationDuration  = "Reward generation latency in seconds"
	HelpTextItemsGenerated      = "Total number of reward items generated by tier"
	HelpTextAugmentationsTotal  = "Total number of augmentations applied by name"
	HelpTextBroadcastItemsTotal = "Total number of broadcast-worthy items generated"
	HelpTextTableInvocations    = "Total number of reward table invocations"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod       = "method"
	LabelPath         = "path"
	LabelStatus       = "status"
	LabelOutcome      = "outcome"
	LabelTier         = "tier"
	LabelTable        = "table"
	LabelAugmentation = "augmentation"
)

// Generation outcomes
const (
	OutcomeRewarded = "rewarded"
	OutcomeEmpty    = "empty"
)

// ============================================================================
// Counter Operation Names
// ============================================================================

// Operation keys recorded in Counters
const (
	OpGenerate     = "engine.generate"
	OpSelectTables = "engine.select"
	OpTablePrefix  = "table."
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// GenerationLatencyBuckets covers in-process generation, from 1µs to 10ms.
var GenerationLatencyBuckets = []float64{.000001, .000005, .00001, .000025, .00005, .0001, .00025, .0005, .001, .0025, .005, .01}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgGenerationRecorded = "Reward generation recorded"
)
