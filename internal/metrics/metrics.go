package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Wager Metrics
var (
	PlaysSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlaysSettled,
			Help: HelpTextPlaysSettled,
		},
		[]string{LabelMode, LabelClass},
	)

	WagersRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWagersRejected,
			Help: HelpTextWagersRejected,
		},
		[]string{LabelCode},
	)

	WagerFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWagerFailures,
			Help: HelpTextWagerFailures,
		},
		[]string{LabelState},
	)

	CoinsWagered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsWagered,
			Help: HelpTextCoinsWagered,
		},
	)

	CoinsPaid = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsPaid,
			Help: HelpTextCoinsPaid,
		},
	)

	WagerTxDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameWagerTxDuration,
			Help:    HelpTextWagerTxDuration,
			Buckets: TxLatencyBuckets,
		},
	)

	AuditVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAuditVerification,
			Help: HelpTextAuditVerification,
		},
		[]string{LabelResult},
	)

	DepositsApplied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDepositsApplied,
			Help: HelpTextDepositsApplied,
		},
	)

	CountersPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCountersPruned,
			Help: HelpTextCountersPruned,
		},
	)
)
