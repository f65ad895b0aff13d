// SPDX-License-Identifier: MIT
// Package: runcsp/instance
//
// errors.go — sentinel errors for the instance package.
//
// Every failure is a local, deterministic validation error: operations either
// succeed completely or return (nil, err) before producing any value.
// Callers match with errors.Is; context is attached with %w at the return site.

package instance

import "errors"

var (
	// ErrNilLanguage indicates an instance constructed without a language.
	ErrNilLanguage = errors.New("instance: language is nil")

	// ErrNegativeVariables indicates a negative variable count.
	ErrNegativeVariables = errors.New("instance: negative variable count")

	// ErrUnknownRelation indicates clauses filed under a relation name the
	// instance language does not declare.
	ErrUnknownRelation = errors.New("instance: unknown relation")

	// ErrIndexOutOfRange indicates a variable index outside [0, n_variables),
	// an assignment value outside [0, domain_size), or an assignment whose length
	// differs from n_variables.
	ErrIndexOutOfRange = errors.New("instance: index out of range")

	// ErrEmptyInstanceList indicates Merge was called with no instances.
	ErrEmptyInstanceList = errors.New("instance: empty instance list")

	// ErrNilInstance indicates a nil entry in an instance list.
	ErrNilInstance = errors.New("instance: nil instance")

	// ErrLanguageMismatch indicates instances over different languages were
	// combined.
	ErrLanguageMismatch = errors.New("instance: language mismatch")

	// ErrInvalidBatchSize indicates a non-positive batch size.
	ErrInvalidBatchSize = errors.New("instance: batch size must be > 0")
)
