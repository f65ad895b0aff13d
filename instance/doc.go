// SPDX-License-Identifier: MIT

// Package instance holds CSP instances: a variable count plus, per relation of a
// language, an ordered list of clauses (pairs of variable indices).
//
// The package provides:
//
//   - New: validated construction with derived per-variable degrees and the total
//     clause count.
//   - CountConflicts / ConflictRatio: scoring of a candidate assignment.
//   - Merge: one instance from many, with variable indices shifted so the inputs
//     occupy disjoint, consecutive index ranges.
//   - Batch: contiguous groups of instances, each merged, for minibatch processing.
//
// Instances are immutable; every operation returns a new value and accessors hand
// out copies. Degrees count clause endpoint occurrences: a clause (u, v) adds one
// to u and one to v, so a clause (u, u) adds two to u and the degrees always sum to
// twice the clause count.
package instance
