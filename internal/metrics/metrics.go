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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Loyalty Metrics
var (
	TierResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTierResolutions,
			Help: HelpTextTierResolutions,
		},
		[]string{LabelTier},
	)

	RedemptionChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRedemptionChecks,
			Help: HelpTextRedemptionChecks,
		},
		[]string{LabelOutcome},
	)

	OffersGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOffersGenerated,
			Help: HelpTextOffersGenerated,
		},
		[]string{LabelType},
	)

	BadgesUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBadgesUnlocked,
			Help: HelpTextBadgesUnlocked,
		},
		[]string{LabelBadge},
	)

	ReferralCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReferralCache,
			Help: HelpTextReferralCache,
		},
		[]string{LabelResult},
	)
)
