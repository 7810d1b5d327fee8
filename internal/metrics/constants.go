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

// Business metric names
const (
	MetricNameItemsDrawn        = "items_drawn_total"
	MetricNameItemsSold         = "items_sold_total"
	MetricNameGoldSpent         = "gold_spent_total"
	MetricNameGoldEarned        = "gold_earned_total"
	MetricNameAccountsCreated   = "accounts_created_total"
	MetricNameCharactersCreated = "characters_created_total"
	MetricNameCatalogChanges    = "catalog_changes_total"
	MetricNameLoginAttempts     = "login_attempts_total"
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

// Business metric help text
const (
	HelpTextItemsDrawn        = "Total number of items obtained from random draws"
	HelpTextItemsSold         = "Total number of items sold"
	HelpTextGoldSpent         = "Total gold spent on random draws"
	HelpTextGoldEarned        = "Total gold earned from selling items"
	HelpTextAccountsCreated   = "Total number of accounts created"
	HelpTextCharactersCreated = "Total number of characters created"
	HelpTextCatalogChanges    = "Total number of item catalog changes"
	HelpTextLoginAttempts     = "Total number of login attempts"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelRarity = "rarity"
	LabelAction = "action"
	LabelResult = "result"
)

// Label values
const (
	ActionCreated = "created"
	ActionDeleted = "deleted"

	ResultSuccess   = "success"
	ResultFailure   = "failure"
	ResultThrottled = "throttled"

	// UnmatchedRoute labels requests that no route matched
	UnmatchedRoute = "unmatched"
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
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
