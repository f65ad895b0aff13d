// SPDX-License-Identifier: MIT

// Package converters provides structural adapters that turn external problem
// representations into CSP instances:
//
//   - GraphToInstance: every adjacency entry (i, j) of a core.Graph becomes one
//     clause under a chosen relation (NEQ for coloring, NAND for independent set).
//   - CNFToInstance: a 2-CNF formula becomes an instance over the max-2-SAT
//     language, each clause classified as OR, IMPL or NAND.
//
// Both converters are deterministic: the same input always yields the same clause
// order.
package converters
