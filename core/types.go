// SPDX-License-Identifier: MIT
// File: types.go
// Role: Edge, Graph, GraphOption, sentinel errors, and NewGraph.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a connection between two vertices.
//
// ID is unique within its Graph ("e1", "e2", ... in insertion order).
// Directed mirrors the Graph's directedness at insertion time.
type Edge struct {
	ID       string
	From     string
	To       string
	Directed bool
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory, unweighted graph whose vertices carry a stable
// insertion index.
//
// The insertion index is what the CSP converters use as variable index, so the
// graph enumerates vertices, edges and neighbors in insertion order rather than
// by sorted ID. All methods are safe for concurrent use; mu guards every field
// below it.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags (immutable after NewGraph)
	directed   bool
	allowMulti bool
	allowLoops bool

	// Storage
	nextEdgeID uint64         // edge ID counter
	order      []string       // vertex IDs by insertion index
	index      map[string]int // vertex ID → insertion index
	edges      []*Edge        // edges by insertion order

	// adjacency[i] lists neighbor indices of vertex i in insertion order.
	// Undirected edges are recorded at both endpoints (a loop only once).
	adjacency [][]int

	// multiplicity[(from,to)] counts stored edges; undirected keys are (min,max).
	multiplicity map[[2]int]int
}

// NewGraph creates an empty Graph.
// By default the Graph is undirected, with no loops and no multi-edges.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index:        make(map[string]int),
		multiplicity: make(map[[2]int]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	return g.allowMulti
}
