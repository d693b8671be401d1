package sortsearch

import (
	"fmt"
	"strings"
)

// StrategyKind identifies one of the search strategies.
type StrategyKind uint8

const (
	// Native runs one binary search per query.
	Native StrategyKind = iota
	// Linear counts, per query, the elements that order before it.
	Linear
	// Binary narrows per-query bound arrays in lockstep.
	Binary
)

// AllStrategies lists every StrategyKind in declaration order.
var AllStrategies = []StrategyKind{Native, Linear, Binary}

// String returns the strategy name.
func (k StrategyKind) String() string {
	switch k {
	case Native:
		return "native"
	case Linear:
		return "linear"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(k))
	}
}

// ParseStrategy parses a strategy name. "integrated" is accepted for Native
// and "vectorized" for Binary.
func ParseStrategy(s string) (StrategyKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "native", "integrated":
		return Native, nil
	case "linear":
		return Linear, nil
	case "binary", "vectorized":
		return Binary, nil
	default:
		return Native, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// ParseStrategies parses a comma-separated list of strategy names.
// Duplicates are dropped, order is kept.
func ParseStrategies(s string) ([]StrategyKind, error) {
	var kinds []StrategyKind
	seen := make(map[StrategyKind]bool)
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		k, err := ParseStrategy(part)
		if err != nil {
			return nil, err
		}
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	return kinds, nil
}

// Strategy computes insertion indices for a whole query batch.
//
// Implementations are pure: they never modify seq or queries, allocate a
// fresh IndexBatch per call and are safe for concurrent use. side must be
// Left or Right; Searcher validates it before calling Search.
type Strategy[T Scalar] interface {
	Kind() StrategyKind
	Search(seq SortedSequence[T], queries QueryBatch[T], side Side) IndexBatch
}

// NewStrategy returns the strategy for kind.
func NewStrategy[T Scalar](kind StrategyKind, optFns ...Option) (Strategy[T], error) {
	o := applyOptions(optFns)
	switch kind {
	case Native:
		return NativeBinarySearch[T]{}, nil
	case Linear:
		return &LinearMaskScan[T]{controller: o.controller, grain: o.grain}, nil
	case Binary:
		return &VectorizedBinarySearch[T]{
			controller:      o.controller,
			grain:           o.grain,
			extraIterations: o.extraIterations,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, kind)
	}
}
