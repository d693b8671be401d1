package sortsearch

import (
	"github.com/hupe1980/sortsearch/resource"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	controller       *resource.Controller
	grain            int
	extraIterations  int
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

func applyOptions(optFns []Option) options {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// Option configures strategy and searcher construction.
type Option func(*options)

// WithLogger sets the logger used by a Searcher.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for search calls.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &sortsearch.BasicMetricsCollector{}
//	s, _ := sortsearch.NewSearcher[float32](sortsearch.Binary,
//	    sortsearch.WithMetricsCollector(metrics))
//	// ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithController shares a resource controller between searches.
// It caps the goroutines the Linear and Binary strategies fan out to and,
// when a memory limit is set, the scratch memory a Searcher may reserve.
//
// Without a controller chunks are bounded by GOMAXPROCS and memory is not
// accounted.
func WithController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithGrain sets the number of queries per parallel chunk for the Linear
// and Binary strategies. Zero or negative selects an automatic size.
func WithGrain(queries int) Option {
	return func(o *options) {
		o.grain = queries
	}
}

// WithExtraIterations makes the Binary strategy run k iterations beyond
// IterationCount(N). Results do not change; it exists to check convergence.
func WithExtraIterations(k int) Option {
	return func(o *options) {
		if k < 0 {
			k = 0
		}
		o.extraIterations = k
	}
}
