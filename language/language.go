// SPDX-License-Identifier: MIT
// Package: runcsp/language
//
// File: language.go
// Role: Language type, constructor and read-only accessors.
// Determinism:
//   - Names() is sorted lexicographically; every traversal over relations in this
//     module follows that order.
// Concurrency:
//   - A Language is never mutated after New returns; no locks are needed.

package language

import (
	"fmt"
	"slices"
	"sort"

	"github.com/mitchellh/hashstructure"
)

// Pair is an ordered pair of domain values (a, b).
type Pair [2]int

// Language is a finite domain plus a set of named binary relations over it.
type Language struct {
	domainSize int
	names      []string              // sorted relation names
	relations  map[string][]Pair     // declared pairs, as given (copied)
	indicators map[string]*Indicator // derived tables, one per relation
	fp         uint64                // hash of (domainSize, indicator tables)
}

// fingerprintView is the canonical, order-independent shape hashed by Fingerprint.
// Using indicator tables instead of declared pairs makes pair order and duplicate
// pairs irrelevant to the hash.
type fingerprintView struct {
	DomainSize int
	Tables     map[string][]bool
}

// New constructs a Language over the domain [0, domainSize).
//
// Stage 1 (Validate): domainSize > 0, at least one relation, non-empty names.
// Stage 2 (Prepare): copy the declared pairs so callers cannot mutate them later.
// Stage 3 (Execute): build one Indicator per relation.
// Stage 4 (Finalize): compute the fingerprint.
//
// Errors: ErrBadDomainSize, ErrNoRelations, ErrMalformedLanguage.
// Complexity: O(R·d² + P) for R relations and P declared pairs.
func New(domainSize int, relations map[string][]Pair) (*Language, error) {
	if domainSize <= 0 {
		return nil, fmt.Errorf("New: domain size %d: %w", domainSize, ErrBadDomainSize)
	}
	if len(relations) == 0 {
		return nil, fmt.Errorf("New: %w", ErrNoRelations)
	}

	l := &Language{
		domainSize: domainSize,
		names:      make([]string, 0, len(relations)),
		relations:  make(map[string][]Pair, len(relations)),
		indicators: make(map[string]*Indicator, len(relations)),
	}
	for name, pairs := range relations {
		if name == "" {
			return nil, fmt.Errorf("New: empty relation name: %w", ErrMalformedLanguage)
		}
		ind, err := newIndicator(domainSize, name, pairs)
		if err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
		l.names = append(l.names, name)
		l.relations[name] = slices.Clone(pairs)
		l.indicators[name] = ind
	}
	sort.Strings(l.names)

	view := fingerprintView{DomainSize: domainSize, Tables: make(map[string][]bool, len(l.indicators))}
	for name, ind := range l.indicators {
		view.Tables[name] = ind.data
	}
	fp, err := hashstructure.Hash(view, nil)
	if err != nil {
		return nil, fmt.Errorf("New: fingerprint: %w", err)
	}
	l.fp = fp

	return l, nil
}

// DomainSize returns d; assignments take values in [0, d).
func (l *Language) DomainSize() int {
	return l.domainSize
}

// Names returns the relation names in lexicographic order.
// The returned slice is a copy.
func (l *Language) Names() []string {
	return slices.Clone(l.names)
}

// NumRelations returns the number of declared relations.
func (l *Language) NumRelations() int {
	return len(l.names)
}

// Has reports whether the language declares a relation called name.
func (l *Language) Has(name string) bool {
	_, ok := l.indicators[name]
	return ok
}

// Relation returns a copy of the declared pairs of name.
func (l *Language) Relation(name string) ([]Pair, bool) {
	pairs, ok := l.relations[name]
	if !ok {
		return nil, false
	}

	return slices.Clone(pairs), true
}

// Indicator returns the derived characteristic table of name.
// The table is shared and must be treated as read-only.
func (l *Language) Indicator(name string) (*Indicator, bool) {
	ind, ok := l.indicators[name]
	return ind, ok
}

// Holds reports whether the value pair (a, b) satisfies relation name.
// Errors: ErrUnknownRelation, ErrOutOfRange.
func (l *Language) Holds(name string, a, b int) (bool, error) {
	ind, ok := l.indicators[name]
	if !ok {
		return false, fmt.Errorf("Holds(%q): %w", name, ErrUnknownRelation)
	}

	return ind.At(a, b)
}

// Fingerprint returns a structural hash of the domain size and indicator tables.
// Two languages that admit the same pairs under the same names share a fingerprint
// regardless of declaration order.
func (l *Language) Fingerprint() uint64 {
	return l.fp
}

// Equal reports whether a and b describe the same language: the same pointer, or
// the same domain size, relation names and indicator tables.
// Two nil languages are equal; nil never equals a non-nil language.
// Complexity: O(1) for identical pointers or different fingerprints, else O(R·d²).
func Equal(a, b *Language) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.fp != b.fp || a.domainSize != b.domainSize || !slices.Equal(a.names, b.names) {
		return false
	}
	for _, name := range a.names {
		if !slices.Equal(a.indicators[name].data, b.indicators[name].data) {
			return false
		}
	}

	return true
}

// String summarizes the language, e.g. "Language(d=2, [IMPL NAND OR])".
func (l *Language) String() string {
	return fmt.Sprintf("Language(d=%d, %v)", l.domainSize, l.names)
}
