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

// Wager metric names
const (
	MetricNamePlaysSettled      = "wager_plays_settled_total"
	MetricNameWagersRejected    = "wager_rejected_total"
	MetricNameWagerFailures     = "wager_transaction_failures_total"
	MetricNameCoinsWagered      = "wager_coins_wagered_total"
	MetricNameCoinsPaid         = "wager_coins_paid_total"
	MetricNameWagerTxDuration   = "wager_transaction_duration_seconds"
	MetricNameAuditVerification = "wager_audit_verifications_total"
	MetricNameDepositsApplied   = "ledger_deposits_total"
	MetricNameCountersPruned    = "limiter_counters_pruned_total"
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

// Wager metric help text
const (
	HelpTextPlaysSettled      = "Total number of committed plays by payout class"
	HelpTextWagersRejected    = "Total number of wagers rejected by error code"
	HelpTextWagerFailures     = "Total number of rolled back wager transactions by failing state"
	HelpTextCoinsWagered      = "Total coins debited as bets"
	HelpTextCoinsPaid         = "Total coins credited as payouts"
	HelpTextWagerTxDuration   = "Wager transaction latency in seconds"
	HelpTextAuditVerification = "Total number of play audits by result"
	HelpTextDepositsApplied   = "Total number of deposits applied to player ledgers"
	HelpTextCountersPruned    = "Total number of expired daily play counters deleted"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelClass  = "payout_class"
	LabelCode   = "error_code"
	LabelState  = "state"
	LabelMode   = "game_mode"
	LabelResult = "result"
)

// Audit result label values
const (
	AuditResultVerified = "verified"
	AuditResultFailed   = "failed"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets ranges from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TxLatencyBuckets covers the wager transaction up to its timeout
var TxLatencyBuckets = []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// UnmatchedRoute labels requests that matched no route
const UnmatchedRoute = "unmatched"
