package sortsearch

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting search metrics.
// Implement this interface to integrate with monitoring systems; the bench
// package ships a Prometheus implementation.
type MetricsCollector interface {
	// RecordSearch is called after each Searcher.Search call.
	// n and m are the reference and batch sizes, duration is the time taken
	// by the strategy, err is nil if successful.
	RecordSearch(kind StrategyKind, n, m int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(StrategyKind, int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and tests without external dependencies.
type BasicMetricsCollector struct {
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64
	QueriesSearched  atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(_ StrategyKind, _, m int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	if err != nil {
		b.SearchErrors.Add(1)
		return
	}
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	b.QueriesSearched.Add(int64(m))
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	SearchCount     int64
	SearchErrors    int64
	SearchAvgNanos  int64
	QueriesSearched int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	count := b.SearchCount.Load()
	errs := b.SearchErrors.Load()

	var avg int64
	if ok := count - errs; ok > 0 {
		avg = b.SearchTotalNanos.Load() / ok
	}

	return BasicMetricsStats{
		SearchCount:     count,
		SearchErrors:    errs,
		SearchAvgNanos:  avg,
		QueriesSearched: b.QueriesSearched.Load(),
	}
}
