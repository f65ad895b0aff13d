// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & adjacency queries.
// Determinism:
//   - Edges() returns edges in insertion order; IDs are "e1", "e2", ...
//   - NeighborIDs/Adjacency list neighbors in the order edges were added.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"slices"
	"strconv"
)

// edgeIDPrefix yields stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates an edge from→to, adding missing endpoints first.
// In an undirected graph the edge is recorded at both endpoints.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Lock mu; ensure both endpoints.
//  3. Check the multi-edge policy.
//  4. Store the edge and link adjacency (mirror if undirected and not a loop).
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("AddEdge(%q,%q): %w", from, to, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	u := g.addVertexLocked(from)
	v := g.addVertexLocked(to)

	key := g.pairKey(u, v)
	if !g.allowMulti && g.multiplicity[key] > 0 {
		return "", fmt.Errorf("AddEdge(%q,%q): %w", from, to, ErrMultiEdgeNotAllowed)
	}

	g.nextEdgeID++
	eid := string(strconv.AppendUint([]byte{edgeIDPrefix}, g.nextEdgeID, 10))
	g.edges = append(g.edges, &Edge{ID: eid, From: from, To: to, Directed: g.directed})
	g.multiplicity[key]++

	g.adjacency[u] = append(g.adjacency[u], v)
	if !g.directed && u != v {
		g.adjacency[v] = append(g.adjacency[v], u)
	}

	return eid, nil
}

// pairKey normalizes (u,v) for multiplicity bookkeeping.
func (g *Graph) pairKey(u, v int) [2]int {
	if !g.directed && v < u {
		return [2]int{v, u}
	}

	return [2]int{u, v}
}

// HasEdge reports whether at least one edge from→to exists
// (either orientation in an undirected graph).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	u, ok1 := g.index[from]
	v, ok2 := g.index[to]
	if !ok1 || !ok2 {
		return false
	}

	return g.multiplicity[g.pairKey(u, v)] > 0
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = *e
	}

	return out
}

// EdgeCount returns the number of stored edges (an undirected edge counts once).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// NeighborIDs returns the neighbors of id in the order their edges were added.
// Parallel edges repeat the neighbor.
// Errors: ErrVertexNotFound.
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("NeighborIDs(%q): %w", id, ErrVertexNotFound)
	}
	out := make([]string, len(g.adjacency[i]))
	for k, j := range g.adjacency[i] {
		out[k] = g.order[j]
	}

	return out, nil
}

// Adjacency returns a snapshot of the index-based adjacency lists:
// Adjacency()[i] holds the neighbor indices of the i-th vertex.
// Complexity: O(V + E).
func (g *Graph) Adjacency() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]int, len(g.adjacency))
	for i, nbrs := range g.adjacency {
		out[i] = slices.Clone(nbrs)
	}

	return out
}
