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

// Reward Metrics
var (
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGenerationsTotal,
			Help: HelpTextGenerationsTotal,
		},
		[]string{LabelOutcome},
	)

	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameGenerationDuration,
			Help:    HelpTextGenerationDuration,
			Buckets: GenerationLatencyBuckets,
		},
	)

	ItemsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsGenerated,
			Help: HelpTextItemsGenerated,
		},
		[]string{LabelTier},
	)

	AugmentationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAugmentationsTotal,
			Help: HelpTextAugmentationsTotal,
		},
		[]string{LabelAugmentation},
	)

	BroadcastItemsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBroadcastItemsTotal,
			Help: HelpTextBroadcastItemsTotal,
		},
	)

	TableInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTableInvocations,
			Help: HelpTextTableInvocations,
		},
		[]string{LabelTable},
	)
)
