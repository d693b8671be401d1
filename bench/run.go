package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/sortsearch"
	"github.com/hupe1980/sortsearch/datagen"
	"github.com/hupe1980/sortsearch/resource"
)

// Result is the timing of one strategy on one (n, m) cell.
type Result struct {
	N        int
	M        int
	Strategy sortsearch.StrategyKind
	Side     sortsearch.Side
	Repeats  int
	Mean     time.Duration
	Min      time.Duration
	Max      time.Duration
}

type runOptions struct {
	logger  *sortsearch.Logger
	metrics sortsearch.MetricsCollector
	observe func(Result)
}

// Option configures Run.
type Option func(*runOptions)

// WithLogger sets the logger for trial and search events.
func WithLogger(l *sortsearch.Logger) Option {
	return func(o *runOptions) {
		o.logger = l
	}
}

// WithMetricsCollector records every timed search call.
func WithMetricsCollector(mc sortsearch.MetricsCollector) Option {
	return func(o *runOptions) {
		o.metrics = mc
	}
}

// WithObserver is called with each Result as soon as its cell finishes.
func WithObserver(fn func(Result)) Option {
	return func(o *runOptions) {
		o.observe = fn
	}
}

// Run executes the sweep described by cfg with element type T.
// Results are ordered by n, then m, then the order of cfg.Strategies.
func Run[T datagen.Float](ctx context.Context, cfg Config, optFns ...Option) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	o := runOptions{
		logger:  sortsearch.NoopLogger(),
		metrics: sortsearch.NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}

	ctl := resource.NewController(resource.Config{
		MemoryLimitBytes: cfg.MemoryLimitBytes,
		MaxWorkers:       cfg.Workers,
		TrialsPerSecond:  cfg.TrialsPerSecond,
	})

	searchers := make([]*sortsearch.Searcher[T], len(cfg.Strategies))
	for i, kind := range cfg.Strategies {
		s, err := sortsearch.NewSearcher[T](kind,
			sortsearch.WithLogger(o.logger),
			sortsearch.WithMetricsCollector(o.metrics),
			sortsearch.WithController(ctl),
		)
		if err != nil {
			return nil, err
		}
		searchers[i] = s
	}

	rng := datagen.NewRNG(cfg.Seed)
	results := make([]Result, 0, len(cfg.ASizes)*len(cfg.VSizes)*len(searchers))

	for _, n := range cfg.ASizes {
		for _, m := range cfg.VSizes {
			seq, queries, err := datagen.Generate[T](rng, n, m)
			if err != nil {
				return results, err
			}

			for _, s := range searchers {
				log := o.logger.WithStrategy(s.Kind()).WithSizes(n, m)

				r, err := runCell(ctx, ctl, s, seq, queries, cfg)
				log.LogTrial(ctx, cfg.Repeats, r.Mean, err)
				if err != nil {
					return results, fmt.Errorf("%s n=%d m=%d: %w", s.Kind(), n, m, err)
				}

				results = append(results, r)
				if o.observe != nil {
					o.observe(r)
				}
			}
		}
	}

	return results, nil
}

func runCell[T datagen.Float](
	ctx context.Context,
	ctl *resource.Controller,
	s *sortsearch.Searcher[T],
	seq sortsearch.SortedSequence[T],
	queries sortsearch.QueryBatch[T],
	cfg Config,
) (Result, error) {
	r := Result{
		N:        seq.Len(),
		M:        queries.Len(),
		Strategy: s.Kind(),
		Side:     cfg.Side,
		Repeats:  cfg.Repeats,
	}

	for range cfg.Warmup {
		if _, err := s.Search(ctx, seq, queries, cfg.Side); err != nil {
			return r, err
		}
	}

	var total time.Duration
	for i := range cfg.Repeats {
		if err := ctl.WaitTrial(ctx); err != nil {
			return r, err
		}

		// Only the strategy call is timed; the Searcher's validation,
		// accounting and observers are not.
		_, elapsed, err := s.SearchTimed(ctx, seq, queries, cfg.Side)
		if err != nil {
			return r, err
		}

		total += elapsed
		if i == 0 || elapsed < r.Min {
			r.Min = elapsed
		}
		r.Max = max(r.Max, elapsed)
	}

	r.Mean = total / time.Duration(cfg.Repeats)
	return r, nil
}

// ByStrategy returns the results of one strategy, in run order.
func ByStrategy(results []Result, kind sortsearch.StrategyKind) []Result {
	var out []Result
	for _, r := range results {
		if r.Strategy == kind {
			out = append(out, r)
		}
	}
	return out
}
