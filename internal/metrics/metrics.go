package metrics

import (
	"sync"

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

// Farm Metrics
var (
	FarmActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFarmActions,
			Help: HelpTextFarmActions,
		},
		[]string{LabelAction, LabelSource},
	)

	CropsPlanted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsPlanted,
			Help: HelpTextCropsPlanted,
		},
		[]string{LabelSeed},
	)

	CropsHarvested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsHarvested,
			Help: HelpTextCropsHarvested,
		},
		[]string{LabelSeed},
	)

	ProduceSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProduceSold,
			Help: HelpTextProduceSold,
		},
		[]string{LabelSeed},
	)

	Coins = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCoins,
			Help: HelpTextCoins,
		},
	)

	Crypto = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCrypto,
			Help: HelpTextCrypto,
		},
	)

	Revision = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameRevision,
			Help: HelpTextRevision,
		},
	)

	Saves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSaves,
			Help: HelpTextSaves,
		},
		[]string{LabelResult},
	)

	SaveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSaveDuration,
			Help:    HelpTextSaveDuration,
			Buckets: SaveLatencyBuckets,
		},
	)
)

var cacheOnce sync.Once

// RegisterCacheStats exposes cache counters read on every scrape. It is a
// no-op after the first call.
func RegisterCacheStats(hits, misses func() float64) {
	cacheOnce.Do(func() {
		promauto.NewCounterFunc(prometheus.CounterOpts{Name: MetricNameCacheHits, Help: HelpTextCacheHits}, hits)
		promauto.NewCounterFunc(prometheus.CounterOpts{Name: MetricNameCacheMisses, Help: HelpTextCacheMisses}, misses)
	})
}
