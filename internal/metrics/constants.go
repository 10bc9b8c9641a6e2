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

// Stream metric names
const (
	MetricNameSSEClients       = "sse_clients_connected"
	MetricNameSSEEventsDropped = "sse_events_dropped_total"
)

// Business metric names
const (
	MetricNamePacksOpened     = "packs_opened_total"
	MetricNameItemsRevealed   = "items_revealed_total"
	MetricNameItemsDuplicated = "items_duplicated_total"
	MetricNameItemsSold       = "items_sold_total"
	MetricNameRevealFailures  = "reveal_failures_total"
	MetricNameCoinsEarned     = "coins_earned_total"
	MetricNameCoinsSpent      = "coins_spent_total"
	MetricNamePackSize        = "pack_revealed_items"
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

// Stream metric help text
const (
	HelpTextSSEClients       = "Current number of connected event stream clients"
	HelpTextSSEEventsDropped = "Events not delivered to stream clients, by where they were dropped"
)

// Business metric help text
const (
	HelpTextPacksOpened     = "Total number of packs purchased and revealed"
	HelpTextItemsRevealed   = "Total number of items revealed, by rarity"
	HelpTextItemsDuplicated = "Total number of reveals merged into an existing entry"
	HelpTextItemsSold       = "Total number of item copies sold"
	HelpTextRevealFailures  = "Total number of pack units dropped because the creature source failed"
	HelpTextCoinsEarned     = "Total coins earned from selling items"
	HelpTextCoinsSpent      = "Total coins spent on packs"
	HelpTextPackSize        = "Number of items actually revealed per pack"
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
	LabelReason = "reason"
)

// Label values
const (
	RarityShiny   = "shiny"
	RarityUnrated = "none"
	PathUnmatched = "unmatched"

	DropReasonHubFull    = "hub_full"
	DropReasonClientSlow = "client_slow"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// PackSizeBuckets covers every allowed pack size.
var PackSizeBuckets = []float64{0, 1, 2, 3, 5, 8, 10, 15, 20}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
