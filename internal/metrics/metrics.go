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

// Crafting Metrics
var (
	CraftsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCraftsTotal,
			Help: HelpTextCraftsTotal,
		},
		[]string{LabelPanel, LabelOutcome},
	)

	ItemsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsConsumed,
			Help: HelpTextItemsConsumed,
		},
		[]string{LabelItem},
	)

	ItemsProduced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsProduced,
			Help: HelpTextItemsProduced,
		},
		[]string{LabelItem},
	)

	RecipesUnlocked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecipesUnlocked,
			Help: HelpTextRecipesUnlocked,
		},
	)

	NoticesRaised = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNoticesRaised,
			Help: HelpTextNoticesRaised,
		},
		[]string{LabelLevel},
	)

	ModifierRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameModifierRejections,
			Help: HelpTextModifierRejections,
		},
		[]string{LabelReason},
	)

	ScriptErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameScriptErrors,
			Help: HelpTextScriptErrors,
		},
		[]string{LabelSite},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)
)
