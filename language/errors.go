// SPDX-License-Identifier: MIT
// Package: runcsp/language
//
// errors.go — sentinel errors for the language package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context is attached at the return site with fmt.Errorf("...: %w", ErrX).
//   • Constructors never panic on user input. The built-in languages panic only
//     if their own literal tables are broken (programmer error).

package language

import "errors"

var (
	// ErrBadDomainSize indicates a non-positive domain size.
	ErrBadDomainSize = errors.New("language: domain size must be > 0")

	// ErrNoRelations indicates a language declared without any relation.
	ErrNoRelations = errors.New("language: no relations declared")

	// ErrMalformedLanguage indicates an empty relation name or a relation pair
	// outside [0, domain_size)².
	ErrMalformedLanguage = errors.New("language: malformed relation")

	// ErrUnknownRelation indicates a lookup of a relation name the language does
	// not declare.
	ErrUnknownRelation = errors.New("language: unknown relation")

	// ErrOutOfRange indicates an indicator lookup outside [0, domain_size).
	ErrOutOfRange = errors.New("language: value out of range")

	// ErrUnknownBuiltin indicates Builtin was asked for a name it does not know.
	ErrUnknownBuiltin = errors.New("language: unknown built-in language")

	// ErrUnsupportedFormat indicates a record format other than JSON or YAML.
	ErrUnsupportedFormat = errors.New("language: unsupported record format")
)
