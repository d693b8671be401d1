package sortsearch

import (
	"fmt"
	"strings"
)

// DType names a floating-point element type selected at run time.
type DType uint8

const (
	// Float32 selects float32 elements.
	Float32 DType = iota
	// Float64 selects float64 elements.
	Float64
)

// String returns "float32" or "float64".
func (d DType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return fmt.Sprintf("dtype(%d)", uint8(d))
	}
}

// ParseDType parses "float32" or "float64".
func ParseDType(s string) (DType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "float32":
		return Float32, nil
	case "float64":
		return Float64, nil
	default:
		return Float32, fmt.Errorf("%w: %q", ErrInvalidDType, s)
	}
}

// SearchDynamic searches with element types only known at run time.
// ref and queries must both be []float32 or both be []float64; ref must
// already be sorted. Mismatched element types return *ErrTypeMismatch.
//
// Prefer the generic API where the element type is known at compile time.
func SearchDynamic(kind StrategyKind, ref, queries any, side Side) (IndexBatch, error) {
	switch a := ref.(type) {
	case []float32:
		v, ok := queries.([]float32)
		if !ok {
			return nil, &ErrTypeMismatch{Reference: "float32", Query: elementType(queries)}
		}
		return searchSlices(kind, a, v, side)
	case []float64:
		v, ok := queries.([]float64)
		if !ok {
			return nil, &ErrTypeMismatch{Reference: "float64", Query: elementType(queries)}
		}
		return searchSlices(kind, a, v, side)
	default:
		return nil, fmt.Errorf("%w: reference of type %T", ErrInvalidDType, ref)
	}
}

func searchSlices[T Scalar](kind StrategyKind, ref, queries []T, side Side) (IndexBatch, error) {
	seq, err := NewSortedSequence(ref)
	if err != nil {
		return nil, err
	}
	return Search(kind, seq, NewQueryBatch(queries), side)
}

func elementType(v any) string {
	switch v.(type) {
	case []float32:
		return "float32"
	case []float64:
		return "float64"
	default:
		return fmt.Sprintf("%T", v)
	}
}
