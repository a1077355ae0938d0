package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	UpstreamRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "insight_upstream_requests_total",
		Help: "Total store registry API requests",
	})
	UpstreamFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "insight_upstream_failures_total",
		Help: "Total store registry API failures by kind",
	}, []string{"kind"})
	UpstreamDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "insight_upstream_duration_ms",
		Help:    "Store registry API call duration in milliseconds",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
	})
	RecordsDiscardedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "insight_records_discarded_total",
		Help: "Upstream records dropped for missing id, name or coordinates",
	})
	StoresSyncedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "insight_stores_synced_total",
		Help: "Store records upserted by the synchronizer",
	})
	StoresFailedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "insight_stores_failed_total",
		Help: "Store records that failed to persist",
	})
	RegionsFailedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "insight_regions_failed_total",
		Help: "Regions skipped because of upstream or parse failures",
	})
	RecommendationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "insight_recommendations_total",
		Help: "Recommendations served by kind and data source",
	}, []string{"kind", "source"})
	CacheResultsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "insight_cache_results_total",
		Help: "Statistics cache lookups by result",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(UpstreamRequestsTotal)
	prometheus.MustRegister(UpstreamFailuresTotal)
	prometheus.MustRegister(UpstreamDurationMs)
	prometheus.MustRegister(RecordsDiscardedTotal)
	prometheus.MustRegister(StoresSyncedTotal)
	prometheus.MustRegister(StoresFailedTotal)
	prometheus.MustRegister(RegionsFailedTotal)
	prometheus.MustRegister(RecommendationsTotal)
	prometheus.MustRegister(CacheResultsTotal)
}

// Handler exposes the registered collectors for scraping.
func Handler() http.Handler { return promhttp.Handler() }
