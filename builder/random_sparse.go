// SPDX-License-Identifier: MIT
// Package: runcsp/builder
//
// random_sparse.go — RandomSparse(n, p): Erdős–Rényi graphs for the
// graph-backed problems (coloring, independent set).
//
// Canonical model:
//   - Undirected simple graph: each unordered pair {i,j}, i<j, is an edge
//     independently with probability p. No loops, no parallel edges.
//   - Vertices are added first, via cfg.idFn in ascending index order, so isolated
//     vertices still exist and vertex index i is variable i after conversion.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for p ∈ {0,1}.
//   - cfg.idFn must be injective over [0,n) (else ErrDuplicateID).
//
// Determinism:
//   - Stable trial order: i asc, then j asc with j>i; one rng.Float64() per pair.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/runcsp/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples an undirected graph over n vertices with independent edge
// probability p.
func RandomSparse(n int, p float64, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Validate parameters: size, then probability, then rng.
	if n < minRandomSparseVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	// 2) Add all vertices in index order.
	g := core.NewGraph()
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		if g.HasVertex(ids[i]) {
			return nil, fmt.Errorf("%s: index %d -> %q: %w", methodRandomSparse, i, ids[i], ErrDuplicateID)
		}
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", methodRandomSparse, ids[i], err)
		}
	}

	// 3) Bernoulli trial per unordered pair.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() >= p {
				continue
			}
			if _, err := g.AddEdge(ids[i], ids[j]); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%s,%s): %w", methodRandomSparse, ids[i], ids[j], err)
			}
		}
	}

	return g, nil
}
