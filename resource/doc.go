// Package resource implements the shared resource controller used by the
// search strategies and the benchmark driver.
//
// The Controller manages three resources:
//
//   - Memory: Track and limit scratch memory reserved by searches (non-blocking, fail-fast)
//   - Workers: Limit the goroutines that search chunks occupy across concurrent searches
//   - Trials: Pace timed benchmark trials with a token bucket
//
// # Memory
//
// AcquireMemory is non-blocking and returns ErrMemoryLimitExceeded if the
// reservation would exceed the limit:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 256 << 20,
//	})
//
//	if err := rc.AcquireMemory(scratch); err != nil {
//	    return err
//	}
//	defer rc.ReleaseMemory(scratch)
//
// # Workers
//
// Chunked searches ask for a slot with TryAcquireWorker and run the chunk
// inline when none is free, so a search never waits on another search:
//
//	if rc.TryAcquireWorker() {
//	    g.Go(func() error { defer rc.ReleaseWorker(); run(); return nil })
//	} else {
//	    run()
//	}
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
