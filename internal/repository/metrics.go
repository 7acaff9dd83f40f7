package repository

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// queryLatency records store operation latency by operation and collection.
var queryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "social_api_store_query_latency_seconds",
	Help:    "Store query latency in seconds",
	Buckets: prometheus.DefBuckets,
}, []string{"operation", "collection"})

// observe returns a closure that records the elapsed time for a store
// operation when deferred.
func observe(operation, collection string) func() {
	start := time.Now()
	return func() {
		queryLatency.WithLabelValues(operation, collection).Observe(time.Since(start).Seconds())
	}
}
