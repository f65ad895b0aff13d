// SPDX-License-Identifier: MIT

// Package language defines constraint languages: a finite domain [0, d) plus a set
// of named binary relations over it.
//
// Every relation is stored twice: as the declared list of admissible value pairs
// (the declarative record that Save/Load persist) and as a dense d×d boolean
// Indicator table derived once in New. Indicator tables are a pure function of the
// declared pairs, so they are never serialized.
//
// A Language is immutable after construction and safe to share by reference across
// goroutines and across any number of instances.
//
// Built-in languages:
//
//	Coloring()        domain 3, NEQ             (3-coloring)
//	IndependentSet()  domain 2, NAND            (maximum independent set)
//	Max2SAT()         domain 2, OR, IMPL, NAND  (maximum 2-satisfiability)
//
// They are constructed lazily on first use and live for the whole process.
//
// Quick example:
//
//	lang, err := language.New(2, map[string][]language.Pair{
//		"XOR": {{0, 1}, {1, 0}},
//		"AND": {{1, 1}},
//	})
//	ok, _ := lang.Holds("XOR", 1, 0) // true
package language
