package sortsearch

// NativeBinarySearch runs one independent binary search per query.
// It defines the expected output of every other strategy.
type NativeBinarySearch[T Scalar] struct{}

// Kind implements Strategy.
func (NativeBinarySearch[T]) Kind() StrategyKind { return Native }

// Search implements Strategy.
func (NativeBinarySearch[T]) Search(seq SortedSequence[T], queries QueryBatch[T], side Side) IndexBatch {
	a := seq.values
	out := make(IndexBatch, len(queries.values))

	if side == Right {
		for j, v := range queries.values {
			out[j] = upperBound(a, v)
		}
		return out
	}
	for j, v := range queries.values {
		out[j] = lowerBound(a, v)
	}
	return out
}

// lowerBound returns the first index i with !(a[i] < v).
func lowerBound[T Scalar](a []T, v T) uint32 {
	lo, hi := 0, len(a)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if a[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return uint32(lo)
}

// upperBound returns the first index i with !(a[i] <= v).
func upperBound[T Scalar](a []T, v T) uint32 {
	lo, hi := 0, len(a)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if a[mid] <= v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return uint32(lo)
}
