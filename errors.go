package sortsearch

import (
	"errors"
	"fmt"

	"github.com/hupe1980/sortsearch/resource"
)

var (
	// ErrInvalidSize is returned when a sequence or batch size is negative or
	// too large to be indexed.
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidSide is returned for a Side other than Left or Right.
	ErrInvalidSide = errors.New("invalid side")

	// ErrUnknownStrategy is returned for an unrecognized strategy name or kind.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrInvalidDType is returned for an unsupported element type name.
	ErrInvalidDType = errors.New("invalid dtype")

	// ErrNaN is returned when a reference sequence contains NaN.
	ErrNaN = errors.New("reference sequence contains NaN")

	// ErrMemoryLimitExceeded is returned when the scratch memory a search
	// needs cannot be reserved.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
)

// ErrSizeOutOfRange indicates a negative or oversized N or M.
//
// errors.Is(err, ErrInvalidSize) reports true.
type ErrSizeOutOfRange struct {
	Name string
	Size int
}

func (e *ErrSizeOutOfRange) Error() string {
	return fmt.Sprintf("invalid size: %s = %d", e.Name, e.Size)
}

func (e *ErrSizeOutOfRange) Unwrap() error { return ErrInvalidSize }

// ErrUnsorted indicates a reference sequence that is not non-decreasing.
type ErrUnsorted struct {
	// Index is the first position whose element is smaller than its predecessor.
	Index int
}

func (e *ErrUnsorted) Error() string {
	return fmt.Sprintf("reference sequence not sorted at index %d", e.Index)
}

// ErrTypeMismatch indicates reference and query arrays of different element types.
type ErrTypeMismatch struct {
	Reference string
	Query     string
}

func (e *ErrTypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: reference is %s, queries are %s", e.Reference, e.Query)
}

// CheckSize validates a requested element count.
func CheckSize(name string, n int) error {
	if n < 0 || uint64(n) > MaxSequenceLen {
		return &ErrSizeOutOfRange{Name: name, Size: n}
	}
	return nil
}
