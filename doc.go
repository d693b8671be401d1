// Package sortsearch provides batched sorted-array search ("searchsorted"):
// for every value of a query batch it computes the index at which the value
// would be inserted into a sorted reference sequence.
//
// # Quick Start
//
//	seq, _ := sortsearch.NewSortedSequence([]float32{1, 3, 3, 5, 7})
//	queries := sortsearch.NewQueryBatch([]float32{0, 3, 3, 8})
//
//	s, _ := sortsearch.NewSearcher[float32](sortsearch.Binary)
//	idx, _ := s.Search(ctx, seq, queries, sortsearch.Left)  // [0 1 1 5]
//	idx, _ = s.Search(ctx, seq, queries, sortsearch.Right)  // [0 3 3 5]
//
// # Strategies
//
// Three strategies produce identical results with different work and
// parallelism profiles:
//
//	// NATIVE: one binary search per query, O(M log N).
//	//   The reference every other strategy is tested against.
//	sortsearch.Native
//
//	// LINEAR: compare each query with every element and count, O(M·N).
//	//   No loop-carried dependency; wins only for small N.
//	sortsearch.Linear
//
//	// BINARY: per-query [lo, hi) bound arrays narrowed in lockstep for
//	//   bits.Len(N+1) iterations. Parallel across queries, sequential
//	//   across iterations.
//	sortsearch.Binary
//
// # Side
//
// Left returns the first valid insertion point among equal elements (insert
// before them), Right the last one (insert after them).
//
// # Backend
//
// Linear and Binary are written against the compare, gather, select and
// count kernels of internal/simd. Set SORTSEARCH_SIMD=generic to force the
// scalar kernels.
package sortsearch
