// Package runcsp is a toolkit for encoding combinatorial problems as binary
// constraint satisfaction problems (CSPs) in a form suited to batched,
// message-passing solvers.
//
// What is a CSP instance here?
//
//	A finite set of variables x0 … x(n-1), all ranging over one domain {0 … d-1},
//	and a list of clauses. Each clause names a binary relation of a shared
//	relation language and an ordered pair of variables (u, v); it is satisfied
//	when (x_u, x_v) belongs to the relation.
//
// What is included?
//
//   - language/   — relation languages with 0/1 indicator tables, the three
//     built-ins (3-coloring, independent set, max-2-SAT), JSON/YAML records
//   - instance/   — validated instances, degrees, conflict counting, disjoint-union
//     Merge and concurrent Batch
//   - converters/ — graph → instance and 2-CNF → instance
//   - builder/    — seeded random instances, Erdős–Rényi graphs, random 2-CNF
//   - core/       — the thread-safe in-memory graph the converters consume
//   - cnf/, adjlist/, dataset/ — DIMACS and NetworkX adjacency-list IO, whole
//     directories at once
//   - solver/     — the Network boundary, boosted evaluation, a random baseline
//   - metrics/    — Prometheus counters for batch jobs
//   - cmd/runcsp  — the command-line front end
//
// Quick ASCII example:
//
//	    A───B
//	     \ /
//	      C
//
// encoded for 3-coloring yields 3 variables and 6 NEQ clauses (both orientations
// of every edge); the assignment A=0, B=1, C=2 has no conflicts.
//
//	go get github.com/katalvlaran/runcsp
package runcsp
