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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Loyalty metric names
const (
	MetricNameTierResolutions  = "loyalty_tier_resolutions_total"
	MetricNameRedemptionChecks = "loyalty_redemption_checks_total"
	MetricNameOffersGenerated  = "loyalty_offers_generated_total"
	MetricNameBadgesUnlocked   = "loyalty_badges_unlocked_total"
	MetricNameReferralCache    = "loyalty_referral_cache_total"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Loyalty metric help text
const (
	HelpTextTierResolutions  = "Total number of tier resolutions by resulting tier"
	HelpTextRedemptionChecks = "Total number of redemption checks by outcome"
	HelpTextOffersGenerated  = "Total number of offers generated by offer type"
	HelpTextBadgesUnlocked   = "Total number of newly unlocked badges"
	HelpTextReferralCache    = "Referral code cache lookups by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelTier    = "tier"
	LabelOutcome = "outcome"
	LabelBadge   = "badge"
	LabelResult  = "result"
)

// Label values
const (
	OutcomeAllowed = "allowed"
	ResultHit      = "hit"
	ResultMiss     = "miss"

	// PathUnmatched labels requests that no route matched
	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
