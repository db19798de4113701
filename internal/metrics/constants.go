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

// Farm metric names
const (
	MetricNameFarmActions    = "farm_actions_total"
	MetricNameCropsPlanted   = "farm_crops_planted_total"
	MetricNameCropsHarvested = "farm_crops_harvested_total"
	MetricNameProduceSold    = "farm_produce_sold_total"
	MetricNameCoins          = "farm_coins"
	MetricNameCrypto         = "farm_crypto"
	MetricNameRevision       = "farm_state_revision"
	MetricNameSaves          = "farm_saves_total"
	MetricNameSaveDuration   = "farm_save_duration_seconds"
	MetricNameCacheHits      = "farm_store_cache_hits"
	MetricNameCacheMisses    = "farm_store_cache_misses"
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

// Farm metric help text
const (
	HelpTextFarmActions    = "Total number of successful farm actions by action and source"
	HelpTextCropsPlanted   = "Total number of seeds planted"
	HelpTextCropsHarvested = "Total number of crops harvested into the barn"
	HelpTextProduceSold    = "Total number of produce units sold from the barn"
	HelpTextCoins          = "Current coin balance"
	HelpTextCrypto         = "Current CRX balance"
	HelpTextRevision       = "Revision of the latest committed farm state"
	HelpTextSaves          = "Total number of save attempts by result"
	HelpTextSaveDuration   = "Save latency in seconds"
	HelpTextCacheHits      = "Save store cache hits since start"
	HelpTextCacheMisses    = "Save store cache misses since start"
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
	LabelAction = "action"
	LabelSource = "source"
	LabelSeed   = "seed"
	LabelResult = "result"
)

// Save results
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SaveLatencyBuckets covers in-memory stores up to a slow remote database.
var SaveLatencyBuckets = []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)

// UnmatchedRoute labels requests that matched no route.
const UnmatchedRoute = "unmatched"
