package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EnrichRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scout_enrich_requests_total",
			Help: "Total number of enrichment requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	AdapterDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scout_adapter_duration_seconds",
			Help:    "Duration of individual source adapter runs",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"source"},
	)

	AdapterResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scout_adapter_results_total",
			Help: "Adapter completions partitioned by whether data was found",
		},
		[]string{"source", "found"},
	)

	SearchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scout_search_requests_total",
			Help: "Outbound search API calls by status",
		},
		[]string{"status"},
	)

	CacheEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scout_cache_events_total",
			Help: "SERP cache hits and misses",
		},
		[]string{"event"},
	)
)

// RecordAdapter updates adapter metrics after one enrich call settles.
func RecordAdapter(source string, found bool, d time.Duration) {
	foundStr := "false"
	if found {
		foundStr = "true"
	}
	AdapterResultsTotal.WithLabelValues(source, foundStr).Inc()
	AdapterDuration.WithLabelValues(source).Observe(d.Seconds())
}

// RecordSearch counts one outbound search API call.
func RecordSearch(status string) {
	SearchRequestsTotal.WithLabelValues(status).Inc()
}

// RecordCache counts a cache hit or miss.
func RecordCache(hit bool) {
	event := "miss"
	if hit {
		event = "hit"
	}
	CacheEventsTotal.WithLabelValues(event).Inc()
}

// Server encapsulates an HTTP server for Prometheus metrics.
type Server struct {
	srv *http.Server
}

// Start begins listening on the specified port and exposes /metrics.
func Start(port int) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	go func() {
		// Suppress the error from intentional shutdown
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("metrics server failed: %v\n", err)
		}
	}()

	return &Server{srv: srv}
}

// Stop gracefully shuts down the metrics server.
func (s *Server) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
