// SPDX-License-Identifier: MIT

// Package core provides the in-memory graph that feeds the CSP converters.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Stable insertion indices: the i-th vertex added has index i, and
//     Vertices(), Edges(), NeighborIDs() and Adjacency() all enumerate in
//     insertion order.
//   - A single sync.RWMutex guarding all storage.
//
// Core methods:
//
//	AddVertex(id string) error             // O(1)
//	AddEdge(from, to string) (string, error) // O(1), auto-adds endpoints
//	VertexIndex(id string) (int, error)    // O(1)
//	Adjacency() [][]int                    // O(V+E) snapshot by index
//
// Insertion indices are what the converters package uses as CSP variable indices,
// which is why ordering here follows insertion rather than sorted IDs.
package core
