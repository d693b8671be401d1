package sortsearch

import (
	"math"
	"slices"

	"github.com/hupe1980/sortsearch/internal/simd"
)

// MaxSequenceLen is the largest supported reference length.
// Insertion indices range over [0, N] and are stored as uint32.
const MaxSequenceLen = math.MaxUint32

// Scalar is the set of totally ordered element types a search runs over.
type Scalar interface {
	simd.Number
}

// SortedSequence is an immutable, non-decreasing sequence of N values.
// Duplicates are permitted.
type SortedSequence[T Scalar] struct {
	values []T
}

// NewSortedSequence validates that values are non-decreasing and NaN-free
// and returns a sequence backed by a private copy.
func NewSortedSequence[T Scalar](values []T) (SortedSequence[T], error) {
	if err := validateSorted(values); err != nil {
		return SortedSequence[T]{}, err
	}
	return SortedSequence[T]{values: slices.Clone(values)}, nil
}

// SortSequence returns a sequence holding a sorted copy of values.
// values itself is not modified.
func SortSequence[T Scalar](values []T) (SortedSequence[T], error) {
	if err := CheckSize("N", len(values)); err != nil {
		return SortedSequence[T]{}, err
	}
	for _, v := range values {
		if v != v {
			return SortedSequence[T]{}, ErrNaN
		}
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return SortedSequence[T]{values: sorted}, nil
}

func validateSorted[T Scalar](values []T) error {
	if err := CheckSize("N", len(values)); err != nil {
		return err
	}
	for i, v := range values {
		// v != v only holds for NaN.
		if v != v {
			return ErrNaN
		}
		if i > 0 && v < values[i-1] {
			return &ErrUnsorted{Index: i}
		}
	}
	return nil
}

// Len returns N.
func (s SortedSequence[T]) Len() int { return len(s.values) }

// At returns the element at position i.
func (s SortedSequence[T]) At(i int) T { return s.values[i] }

// Values returns a copy of the elements.
func (s SortedSequence[T]) Values() []T { return slices.Clone(s.values) }

// QueryBatch is an immutable batch of M query values in any order.
type QueryBatch[T Scalar] struct {
	values []T
}

// NewQueryBatch returns a batch backed by a private copy of values.
func NewQueryBatch[T Scalar](values []T) QueryBatch[T] {
	return QueryBatch[T]{values: slices.Clone(values)}
}

// Len returns M.
func (q QueryBatch[T]) Len() int { return len(q.values) }

// At returns the query at position j.
func (q QueryBatch[T]) At(j int) T { return q.values[j] }

// Values returns a copy of the queries.
func (q QueryBatch[T]) Values() []T { return slices.Clone(q.values) }

// IndexBatch holds one insertion index in [0, N] per query.
type IndexBatch []uint32

// Equal reports whether both batches hold the same indices.
func (b IndexBatch) Equal(other IndexBatch) bool {
	return slices.Equal(b, other)
}

// FirstDiff returns the first position where b and other differ, or -1.
func (b IndexBatch) FirstDiff(other IndexBatch) int {
	n := min(len(b), len(other))
	for j := 0; j < n; j++ {
		if b[j] != other[j] {
			return j
		}
	}
	if len(b) != len(other) {
		return n
	}
	return -1
}
