// Package bench drives repeated, timed invocations of the search strategies
// and reports the mean time per call.
//
// For every (n, m) pair one reference sequence and one query batch are
// generated and reused, unchanged, by every strategy. Each strategy gets
// Warmup untimed calls followed by Repeats timed calls.
//
//	cfg := bench.DefaultConfig()
//	results, err := bench.Run[float32](ctx, cfg)
//	for _, kind := range cfg.Strategies {
//	    bench.WriteResults(os.Stdout, kind.String(), cfg.Side, bench.ByStrategy(results, kind))
//	}
//
// A block names the strategy and side, then lists one line per (n, m) pair:
// right-aligned sizes followed by the mean time in milliseconds with three
// decimals, so downstream tooling can split on whitespace.
//
//	native (left) results (a_size, v_size, time_ms):
//	    1000       10    0.004
package bench
