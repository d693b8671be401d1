// Package datagen produces the reference sequences and query batches the
// benchmarks and tests search over.
//
//	rng := datagen.NewRNG(42)
//	seq, queries, err := datagen.Generate[float32](rng, 100_000, 1_000)
package datagen

import (
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/sortsearch"
)

// Float is the set of element types Generate can sample.
type Float interface {
	~float32 | ~float64
}

// RNG wraps a seeded random source. It is safe for concurrent use.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Reset rewinds the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uniform returns n independent samples from [0, 1).
// Locks once per call.
func Uniform[T Float](r *RNG, n int) []T {
	out := make([]T, n)
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range out {
		out[i] = T(r.rand.Float64())
	}
	return out
}

// Generate draws n uniform samples and sorts them into a reference sequence,
// and draws m uniform samples as the query batch.
func Generate[T Float](r *RNG, n, m int) (sortsearch.SortedSequence[T], sortsearch.QueryBatch[T], error) {
	if err := sortsearch.CheckSize("N", n); err != nil {
		return sortsearch.SortedSequence[T]{}, sortsearch.QueryBatch[T]{}, err
	}
	if err := sortsearch.CheckSize("M", m); err != nil {
		return sortsearch.SortedSequence[T]{}, sortsearch.QueryBatch[T]{}, err
	}

	ref := Uniform[T](r, n)
	slices.Sort(ref)
	seq, err := sortsearch.NewSortedSequence(ref)
	if err != nil {
		return sortsearch.SortedSequence[T]{}, sortsearch.QueryBatch[T]{}, err
	}

	return seq, sortsearch.NewQueryBatch(Uniform[T](r, m)), nil
}

// WithRuns returns a sorted sequence of n elements drawn from only distinct
// values, so long runs of equal elements appear. Useful for tie-break tests.
func WithRuns[T Float](r *RNG, n, distinct int) (sortsearch.SortedSequence[T], error) {
	if err := sortsearch.CheckSize("N", n); err != nil {
		return sortsearch.SortedSequence[T]{}, err
	}
	distinct = max(distinct, 1)

	ref := make([]T, n)
	r.mu.Lock()
	for i := range ref {
		ref[i] = T(r.rand.Intn(distinct))
	}
	r.mu.Unlock()

	slices.Sort(ref)
	return sortsearch.NewSortedSequence(ref)
}
