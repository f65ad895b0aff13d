// SPDX-License-Identifier: MIT
// Package: runcsp/language
//
// builtin.go — the three fixed languages used throughout the pipeline.
//
// Each is built lazily exactly once (sync.OnceValue) and then shared read-only
// for the lifetime of the process. There is no way to replace them.

package language

import (
	"fmt"
	"sync"
)

// Relation names used by the built-in languages.
const (
	NEQ  = "NEQ"  // a != b
	NAND = "NAND" // not (a and b)
	OR   = "OR"   // a or b
	IMPL = "IMPL" // a implies b
)

// Built-in language identifiers accepted by Builtin.
const (
	BuiltinColoring       = "coloring"
	BuiltinIndependentSet = "independent-set"
	BuiltinMax2SAT        = "max-2sat"
)

var (
	coloring = sync.OnceValue(func() *Language {
		return mustNew(3, map[string][]Pair{
			NEQ: {{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}},
		})
	})

	independentSet = sync.OnceValue(func() *Language {
		return mustNew(2, map[string][]Pair{
			NAND: {{0, 0}, {0, 1}, {1, 0}},
		})
	})

	max2SAT = sync.OnceValue(func() *Language {
		return mustNew(2, map[string][]Pair{
			OR:   {{0, 1}, {1, 0}, {1, 1}},
			IMPL: {{0, 0}, {0, 1}, {1, 1}},
			NAND: {{0, 0}, {0, 1}, {1, 0}},
		})
	})
)

// Coloring returns the 3-coloring language: domain {0,1,2}, relation NEQ.
func Coloring() *Language { return coloring() }

// IndependentSet returns the independent-set language: domain {0,1}, relation NAND.
// Value 1 means "vertex is in the set".
func IndependentSet() *Language { return independentSet() }

// Max2SAT returns the max-2-SAT language: domain {0,1} (false, true) with
// relations OR, IMPL and NAND covering every 2-literal clause shape.
func Max2SAT() *Language { return max2SAT() }

// Builtin looks up a built-in language by identifier
// (BuiltinColoring, BuiltinIndependentSet, BuiltinMax2SAT).
func Builtin(name string) (*Language, error) {
	switch name {
	case BuiltinColoring:
		return Coloring(), nil
	case BuiltinIndependentSet:
		return IndependentSet(), nil
	case BuiltinMax2SAT:
		return Max2SAT(), nil
	default:
		return nil, fmt.Errorf("Builtin(%q): %w", name, ErrUnknownBuiltin)
	}
}

// mustNew panics if a literal table in this file is broken.
func mustNew(domainSize int, relations map[string][]Pair) *Language {
	l, err := New(domainSize, relations)
	if err != nil {
		panic(fmt.Sprintf("language: built-in table: %v", err))
	}

	return l
}
