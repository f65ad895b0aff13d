// SPDX-License-Identifier: MIT
// Package: runcsp/solver
//
// errors.go — sentinel errors for the solver package.

package solver

import "errors"

var (
	// ErrNilNetwork indicates Evaluate was called without a network.
	ErrNilNetwork = errors.New("solver: network is nil")

	// ErrLanguageMismatch indicates an instance whose language differs from the
	// network's.
	ErrLanguageMismatch = errors.New("solver: instance language differs from network language")

	// ErrNotIndependentSet indicates CorrectIndependentSet on an instance that is
	// not a boolean NAND encoding.
	ErrNotIndependentSet = errors.New("solver: instance is not an independent-set encoding")
)
