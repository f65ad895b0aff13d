// SPDX-License-Identifier: MIT
// Package: runcsp/solver
//
// independent_set.go — turning a NAND assignment into a proper independent set.

package solver

import (
	"fmt"

	"github.com/katalvlaran/runcsp/instance"
	"github.com/katalvlaran/runcsp/language"
)

// CorrectIndependentSet repairs an independent-set assignment (1 = in the set):
// every NAND clause whose endpoints are both 1 drops one endpoint, the one of
// higher degree (v on ties). Clauses are processed in stored order, so the
// result has zero conflicts and is deterministic.
//
// Errors: ErrNotIndependentSet (domain other than 2 or a relation besides NAND),
// instance.ErrIndexOutOfRange for a malformed assignment.
// Complexity: O(V + C).
func CorrectIndependentSet(in *instance.Instance, assignment []int) ([]int, error) {
	lang := in.Language()
	if lang.DomainSize() != 2 || !lang.Has(language.NAND) || lang.NumRelations() != 1 {
		return nil, fmt.Errorf("CorrectIndependentSet: %s: %w", lang, ErrNotIndependentSet)
	}
	if _, err := in.CountConflicts(assignment); err != nil {
		return nil, fmt.Errorf("CorrectIndependentSet: %w", err)
	}

	out := append([]int(nil), assignment...)
	deg := in.Degrees()
	for _, c := range in.Clauses(language.NAND) {
		u, v := c[0], c[1]
		if out[u] != 1 || out[v] != 1 {
			continue
		}
		if deg[u] > deg[v] {
			out[u] = 0
		} else {
			out[v] = 0
		}
	}

	return out, nil
}

// SetSize counts the variables assigned 1.
func SetSize(assignment []int) int {
	n := 0
	for _, x := range assignment {
		if x == 1 {
			n++
		}
	}

	return n
}
