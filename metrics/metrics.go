// Package metrics provides Prometheus metrics for the retrieval pipeline.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"dhootha/types"
)

var (
	// RetrievalsTotal counts finished retrievals by terminal state.
	RetrievalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dhootha",
			Name:      "retrievals_total",
			Help:      "Total number of retrievals by final state",
		},
		[]string{"state"},
	)

	// RetrievalDuration measures end-to-end retrieval duration.
	RetrievalDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dhootha",
			Name:      "retrieval_duration_seconds",
			Help:      "Duration of retrievals in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"state"},
	)

	// ResultSize observes how many items a retrieval returned.
	ResultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "dhootha",
			Name:      "result_items",
			Help:      "Distribution of items per retrieval",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100},
		},
	)

	// FallbacksTotal counts RSS fallback attempts by outcome.
	FallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dhootha",
			Name:      "rss_fallbacks_total",
			Help:      "Total number of RSS fallback attempts",
		},
		[]string{"outcome"},
	)

	// ErrorsTotal counts errors by operation.
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dhootha",
			Name:      "errors_total",
			Help:      "Total number of errors",
		},
		[]string{"operation"},
	)
)

// RecordRetrieval records a finished retrieval.
func RecordRetrieval(res *types.Result) {
	state := string(res.State)
	RetrievalsTotal.WithLabelValues(state).Inc()
	RetrievalDuration.WithLabelValues(state).Observe(res.Duration().Seconds())
	ResultSize.Observe(float64(res.Count))

	if res.FallbackAttempted {
		outcome := "empty"
		switch {
		case res.FallbackError != "":
			outcome = "failed"
		case res.State == types.StateSuccessRSS:
			outcome = "hit"
		}
		FallbacksTotal.WithLabelValues(outcome).Inc()
	}
}

// RecordError records an error for an operation such as "archive" or "publish".
func RecordError(operation string) {
	ErrorsTotal.WithLabelValues(operation).Inc()
}

// Observer records every retrieval it sees. It satisfies orchestrator.Observer.
type Observer struct{}

func (Observer) Observe(_ context.Context, res *types.Result) {
	RecordRetrieval(res)
}
