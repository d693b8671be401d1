package sortsearch

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/sortsearch/resource"
)

// Searcher runs one strategy with input validation, scratch-memory
// accounting, logging and metrics around it.
type Searcher[T Scalar] struct {
	strategy   Strategy[T]
	logger     *Logger
	metrics    MetricsCollector
	controller *resource.Controller
}

// NewSearcher creates a Searcher for the given strategy kind.
func NewSearcher[T Scalar](kind StrategyKind, optFns ...Option) (*Searcher[T], error) {
	o := applyOptions(optFns)

	strategy, err := NewStrategy[T](kind, optFns...)
	if err != nil {
		return nil, err
	}

	return &Searcher[T]{
		strategy:   strategy,
		logger:     o.logger.WithStrategy(kind),
		metrics:    o.metricsCollector,
		controller: o.controller,
	}, nil
}

// Kind returns the strategy kind.
func (s *Searcher[T]) Kind() StrategyKind { return s.strategy.Kind() }

// Strategy returns the underlying strategy.
func (s *Searcher[T]) Strategy() Strategy[T] { return s.strategy }

// Search returns the insertion index of every query.
//
// All validation (side, context, memory reservation) happens before the
// strategy runs; on error no indices are returned.
func (s *Searcher[T]) Search(ctx context.Context, seq SortedSequence[T], queries QueryBatch[T], side Side) (IndexBatch, error) {
	out, _, err := s.SearchTimed(ctx, seq, queries, side)
	return out, err
}

// SearchTimed is Search that also returns the time spent inside the
// strategy alone. Validation, memory accounting, logging and metrics are
// outside the measured span.
func (s *Searcher[T]) SearchTimed(ctx context.Context, seq SortedSequence[T], queries QueryBatch[T], side Side) (IndexBatch, time.Duration, error) {
	kind := s.strategy.Kind()
	n, m := seq.Len(), queries.Len()

	fail := func(err error) (IndexBatch, time.Duration, error) {
		err = fmt.Errorf("search %s: %w", kind, err)
		s.logger.LogSearch(ctx, side, n, m, 0, err)
		s.metrics.RecordSearch(kind, n, m, 0, err)
		return nil, 0, err
	}

	if !side.Valid() {
		return fail(fmt.Errorf("%w: %s", ErrInvalidSide, side))
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	reserved := searchBytes[T](kind, m)
	if err := s.controller.AcquireMemory(reserved); err != nil {
		return fail(err)
	}
	defer s.controller.ReleaseMemory(reserved)

	start := time.Now()
	out := s.strategy.Search(seq, queries, side)
	elapsed := time.Since(start)

	s.logger.LogSearch(ctx, side, n, m, elapsed, nil)
	s.metrics.RecordSearch(kind, n, m, elapsed, nil)
	return out, elapsed, nil
}

// Search runs the strategy kind once with default options.
func Search[T Scalar](kind StrategyKind, seq SortedSequence[T], queries QueryBatch[T], side Side) (IndexBatch, error) {
	s, err := NewSearcher[T](kind)
	if err != nil {
		return nil, err
	}
	return s.Search(context.Background(), seq, queries, side)
}

// searchBytes is the memory one search over m queries reserves: the result
// plus the strategy's scratch.
func searchBytes[T Scalar](kind StrategyKind, m int) int64 {
	bytes := int64(m) * 4
	if kind == Binary {
		bytes += binaryScratchBytes[T](m)
	}
	return bytes
}
