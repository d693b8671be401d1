// Package parallel runs data-parallel loops over index ranges.
package parallel

import (
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sortsearch/resource"
)

// For calls fn(lo, hi) for consecutive chunks of [0, n), each at most grain
// items long. A chunk runs on its own goroutine when ctl grants a worker slot
// and inline on the calling goroutine otherwise, so For never waits for a
// slot. For returns once every chunk has finished.
//
// fn must only touch state owned by its [lo, hi) range.
func For(ctl *resource.Controller, n, grain int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if grain <= 0 || grain >= n {
		fn(0, n)
		return
	}

	var g errgroup.Group
	g.SetLimit(ctl.MaxWorkers())

	for lo := 0; lo < n; lo += grain {
		hi := min(lo+grain, n)
		if ctl.TryAcquireWorker() {
			g.Go(func() error {
				defer ctl.ReleaseWorker()
				fn(lo, hi)
				return nil
			})
			continue
		}
		fn(lo, hi)
	}

	_ = g.Wait()
}

// ChunkSize splits n items across workers, rounding the chunk up to a
// multiple of align and never going below minChunk.
func ChunkSize(n, workers, align, minChunk int) int {
	if n <= 0 {
		return 0
	}
	if workers < 1 {
		workers = 1
	}
	if align < 1 {
		align = 1
	}

	chunk := (n + workers - 1) / workers
	chunk = max(chunk, minChunk)
	if r := chunk % align; r != 0 {
		chunk += align - r
	}
	return min(chunk, n)
}
