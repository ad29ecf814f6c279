package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's prometheus instruments.
type Metrics struct {
	FeedFetches   prometheus.Counter
	FeedErrors    *prometheus.CounterVec
	FetchDuration prometheus.Histogram
	CacheHits     prometheus.Counter
}

func New(namespace string) *Metrics {
	return &Metrics{
		FeedFetches: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_fetches_total",
			Help:      "The total number of roster feed fetches",
		}),
		FeedErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_errors_total",
			Help:      "The total number of failed roster feed fetches",
		}, []string{"reason"}),
		FetchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_fetch_duration_seconds",
			Help:      "Time taken to fetch and map a roster from the feed",
			Buckets:   prometheus.DefBuckets,
		}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "roster_cache_hits_total",
			Help:      "The total number of roster cache hits",
		}),
	}
}
