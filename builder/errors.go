// SPDX-License-Identifier: MIT
// Package: runcsp/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; match with errors.Is.
//   • Generators attach context with %w: "<Method>: <detail>: <sentinel>".
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (variables, clauses, vertices)
// is below the minimum the generator can honour.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a generator was called without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNilLanguage indicates RandomInstance was given a nil language.
var ErrNilLanguage = errors.New("builder: language is nil")

// ErrDuplicateID indicates an ID scheme that mapped two indices to the same vertex ID.
var ErrDuplicateID = errors.New("builder: id scheme produced a duplicate vertex ID")
