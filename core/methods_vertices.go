// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order; VertexIndex(id) is the position
//     of id in that slice.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"slices"
)

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under write lock, assign the next insertion index if absent.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id and returns its index; caller holds mu.
func (g *Graph) addVertexLocked(id string) int {
	if i, ok := g.index[id]; ok {
		return i
	}
	i := len(g.order)
	g.order = append(g.order, id)
	g.index[id] = i
	g.adjacency = append(g.adjacency, nil)

	return i
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[id]
	return ok
}

// VertexIndex returns the insertion index of id.
// Errors: ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) VertexIndex(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("VertexIndex(%q): %w", id, ErrVertexNotFound)
	}

	return i, nil
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V) for the copy.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.order)
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Degree returns the number of adjacency entries of id: for undirected graphs the
// number of incident edges with a loop counted once, for directed graphs the
// out-degree.
// Errors: ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%q): %w", id, ErrVertexNotFound)
	}

	return len(g.adjacency[i]), nil
}
