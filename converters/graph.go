// SPDX-License-Identifier: MIT
// Package: runcsp/converters
//
// graph.go — core.Graph → instance.Instance.
//
// Canonical model:
//   - Variable i is the vertex with insertion index i.
//   - Clauses are the non-zero entries of the adjacency matrix in row-major order:
//     rows i ascending, columns j ascending, each (i, j) at most once.
//   - An undirected edge {u, v} therefore yields both (u, v) and (v, u); a loop
//     yields a single (u, u); parallel edges collapse into one entry.

package converters

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/runcsp/core"
	"github.com/katalvlaran/runcsp/instance"
	"github.com/katalvlaran/runcsp/language"
)

// ErrNilGraph indicates a nil *core.Graph passed to GraphToInstance.
var ErrNilGraph = errors.New("converters: graph is nil")

const methodGraphToInstance = "GraphToInstance"

// GraphToInstance encodes g as an instance over lang in which every adjacency
// entry becomes a clause under relationName.
//
// Errors: ErrNilGraph, instance.ErrNilLanguage, instance.ErrUnknownRelation.
// Complexity: O(V + E log Δ) where Δ is the maximum degree.
func GraphToInstance(g *core.Graph, lang *language.Language, relationName string) (*instance.Instance, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodGraphToInstance, ErrNilGraph)
	}
	if lang == nil {
		return nil, fmt.Errorf("%s: %w", methodGraphToInstance, instance.ErrNilLanguage)
	}
	if !lang.Has(relationName) {
		return nil, fmt.Errorf("%s: relation %q not in %s: %w",
			methodGraphToInstance, relationName, lang, instance.ErrUnknownRelation)
	}

	adj := g.Adjacency()
	total := 0
	for _, nbrs := range adj {
		total += len(nbrs)
	}

	clauses := make([]instance.Clause, 0, total)
	for i, nbrs := range adj {
		cols := slices.Compact(slices.Sorted(slices.Values(nbrs)))
		for _, j := range cols {
			clauses = append(clauses, instance.Clause{i, j})
		}
	}

	in, err := instance.New(lang, len(adj), map[string][]instance.Clause{relationName: clauses})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGraphToInstance, err)
	}

	return in, nil
}
