// SPDX-License-Identifier: MIT
// Package: runcsp/instance
//
// File: instance.go
// Role: Instance type, validated constructor and read-only accessors.
// Determinism:
//   - Relation buckets are traversed in language.Names() order.
// Concurrency:
//   - Instances are never mutated after construction; share freely.

package instance

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/runcsp/language"
)

// Clause is a pair of variable indices (u, v) constrained by one relation.
type Clause [2]int

// Instance is a CSP instance over a shared Language.
type Instance struct {
	lang       *language.Language
	nVariables int
	clauses    map[string][]Clause // one bucket per language relation
	degrees    []int               // endpoint-occurrence tally per variable
	nClauses   int
}

// New constructs an Instance with nVariables variables and the given clauses.
//
// Stage 1 (Validate): non-nil language, nVariables >= 0, every relation name known
// to lang, every index in [0, nVariables).
// Stage 2 (Prepare): copy each clause list; relations absent from clauses get an
// empty (non-nil) bucket.
// Stage 3 (Finalize): tally degrees over the flattened endpoint list and count
// clauses.
//
// Errors: ErrNilLanguage, ErrNegativeVariables, ErrUnknownRelation, ErrIndexOutOfRange.
// Complexity: O(V + C) for V variables and C clauses.
func New(lang *language.Language, nVariables int, clauses map[string][]Clause) (*Instance, error) {
	if lang == nil {
		return nil, fmt.Errorf("New: %w", ErrNilLanguage)
	}
	if nVariables < 0 {
		return nil, fmt.Errorf("New: n_variables=%d: %w", nVariables, ErrNegativeVariables)
	}

	for name, cs := range clauses {
		if !lang.Has(name) {
			return nil, fmt.Errorf("New: relation %q not in %s: %w", name, lang, ErrUnknownRelation)
		}
		for i, c := range cs {
			if c[0] < 0 || c[0] >= nVariables || c[1] < 0 || c[1] >= nVariables {
				return nil, fmt.Errorf("New: %s clause #%d (%d,%d) outside [0,%d): %w",
					name, i, c[0], c[1], nVariables, ErrIndexOutOfRange)
			}
		}
	}

	buckets := make(map[string][]Clause, lang.NumRelations())
	for _, name := range lang.Names() {
		cs := clauses[name]
		buckets[name] = append(make([]Clause, 0, len(cs)), cs...)
	}

	return build(lang, nVariables, buckets), nil
}

// build finishes an Instance from already-validated buckets it takes ownership of.
func build(lang *language.Language, nVariables int, buckets map[string][]Clause) *Instance {
	degrees := make([]int, nVariables)
	n := 0
	for _, cs := range buckets {
		for _, c := range cs {
			degrees[c[0]]++
			degrees[c[1]]++
		}
		n += len(cs)
	}

	return &Instance{
		lang:       lang,
		nVariables: nVariables,
		clauses:    buckets,
		degrees:    degrees,
		nClauses:   n,
	}
}

// Language returns the shared language the instance is expressed in.
func (in *Instance) Language() *language.Language {
	return in.lang
}

// NVariables returns the number of variables; indices are 0..NVariables()-1.
func (in *Instance) NVariables() int {
	return in.nVariables
}

// NClauses returns the total number of clauses across all relations.
func (in *Instance) NClauses() int {
	return in.nClauses
}

// Clauses returns a copy of the clauses filed under relation name
// (nil if the relation is unknown).
func (in *Instance) Clauses(name string) []Clause {
	return slices.Clone(in.clauses[name])
}

// NumClauses returns the number of clauses under relation name.
func (in *Instance) NumClauses(name string) int {
	return len(in.clauses[name])
}

// ClauseMap returns a copy of all buckets keyed by relation name.
func (in *Instance) ClauseMap() map[string][]Clause {
	out := make(map[string][]Clause, len(in.clauses))
	for name, cs := range in.clauses {
		out[name] = slices.Clone(cs)
	}

	return out
}

// Degrees returns a copy of the per-variable degree vector.
func (in *Instance) Degrees() []int {
	return slices.Clone(in.degrees)
}

// Degree returns the degree of variable v.
// Errors: ErrIndexOutOfRange if v is not in [0, NVariables()).
func (in *Instance) Degree(v int) (int, error) {
	if v < 0 || v >= in.nVariables {
		return 0, fmt.Errorf("Degree(%d): n_variables=%d: %w", v, in.nVariables, ErrIndexOutOfRange)
	}

	return in.degrees[v], nil
}

// String summarizes the instance, e.g. "Instance(n=100, m=300, NEQ:300)".
func (in *Instance) String() string {
	s := fmt.Sprintf("Instance(n=%d, m=%d", in.nVariables, in.nClauses)
	for _, name := range in.lang.Names() {
		s += fmt.Sprintf(", %s:%d", name, len(in.clauses[name]))
	}

	return s + ")"
}
