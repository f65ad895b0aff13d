// SPDX-License-Identifier: MIT

// Package adjlist reads and writes graphs in the plain adjacency-list text format
// used by NetworkX (read_adjlist / write_adjlist).
//
// Format:
//   - Everything from '#' to the end of a line is a comment.
//   - Each remaining non-blank line is "node nbr1 nbr2 ...", whitespace separated.
//     The first token declares the node even if it has no neighbors.
//   - Node labels are opaque strings and must not contain whitespace or '#'.
package adjlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/runcsp/core"
)

// ErrNilGraph indicates a nil graph passed to Write.
var ErrNilGraph = errors.New("adjlist: graph is nil")

const commentPrefix = "#"

// maxLineBytes bounds a single adjacency line; dense rows of large graphs are long.
const maxLineBytes = 16 << 20

// Read parses an adjacency list into an undirected graph that permits self-loops.
// Vertices keep first-appearance order, so vertex index i is the i-th label seen.
// A pair listed twice (e.g. on both endpoints' lines) yields a single edge.
// Complexity: O(size of input).
func Read(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph(core.WithLoops())

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if p := strings.Index(line, commentPrefix); p >= 0 {
			line = line[:p]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		u := fields[0]
		if err := g.AddVertex(u); err != nil {
			return nil, fmt.Errorf("Read: line %d: %w", lineNo, err)
		}
		for _, v := range fields[1:] {
			if g.HasEdge(u, v) {
				continue
			}
			if _, err := g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("Read: line %d: %w", lineNo, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return g, nil
}

// ReadFile parses the adjacency-list file at path.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w", path, err)
	}

	return g, nil
}

// Write emits g one line per vertex in vertex order. For undirected graphs each
// edge appears once, on the line of whichever endpoint comes first; directed
// graphs list every out-neighbor.
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("Write: %w", ErrNilGraph)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# vertices=%d edges=%d\n", g.VertexCount(), g.EdgeCount())

	seen := make(map[string]struct{}, g.VertexCount())
	for _, u := range g.Vertices() {
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return fmt.Errorf("Write: %w", err)
		}
		bw.WriteString(u)
		for _, v := range nbrs {
			if _, done := seen[v]; done {
				continue
			}
			bw.WriteByte(' ')
			bw.WriteString(v)
		}
		bw.WriteByte('\n')
		if !g.Directed() {
			seen[u] = struct{}{}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

// WriteFile writes g to path, replacing any existing file.
func WriteFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	if err = Write(f, g); err != nil {
		f.Close()
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}

	return f.Close()
}
