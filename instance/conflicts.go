// SPDX-License-Identifier: MIT
// Package: runcsp/instance
//
// conflicts.go — scoring of a hard assignment against an instance.

package instance

import "fmt"

// CountConflicts returns the number of clauses violated by assignment.
//
// A clause (u, v) under relation r is satisfied iff the indicator table of r
// admits (assignment[u], assignment[v]).
//
// Stage 1 (Validate): len(assignment) == NVariables() and every value lies in
// [0, DomainSize()). Validation completes before any counting.
// Stage 2 (Execute): one unchecked table lookup per clause.
//
// Errors: ErrIndexOutOfRange (wrapped with the offending position).
// Complexity: O(V + C).
func (in *Instance) CountConflicts(assignment []int) (int, error) {
	if err := in.checkAssignment(assignment); err != nil {
		return 0, fmt.Errorf("CountConflicts: %w", err)
	}

	conflicts := 0
	for name, cs := range in.clauses {
		ind, _ := in.lang.Indicator(name)
		for _, c := range cs {
			if !ind.Admits(assignment[c[0]], assignment[c[1]]) {
				conflicts++
			}
		}
	}

	return conflicts, nil
}

// ConflictRatio returns CountConflicts(assignment) / NClauses().
// An instance without clauses has ratio 0.
func (in *Instance) ConflictRatio(assignment []int) (float64, error) {
	conflicts, err := in.CountConflicts(assignment)
	if err != nil {
		return 0, err
	}
	if in.nClauses == 0 {
		return 0, nil
	}

	return float64(conflicts) / float64(in.nClauses), nil
}

// checkAssignment validates length and value range of a candidate assignment.
func (in *Instance) checkAssignment(assignment []int) error {
	if len(assignment) != in.nVariables {
		return fmt.Errorf("assignment length %d, want %d: %w", len(assignment), in.nVariables, ErrIndexOutOfRange)
	}
	d := in.lang.DomainSize()
	for v, x := range assignment {
		if x < 0 || x >= d {
			return fmt.Errorf("assignment[%d]=%d outside [0,%d): %w", v, x, d, ErrIndexOutOfRange)
		}
	}

	return nil
}
