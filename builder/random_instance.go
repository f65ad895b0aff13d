// SPDX-License-Identifier: MIT
// Package: runcsp/builder
//
// random_instance.go — uniform random CSP instances over a language.
//
// Sampling model (per clause, independently):
//   - relation name uniform over lang.Names() (sorted order, so a seed is
//     reproducible across runs);
//   - an ordered pair (u, v) of distinct variables, uniform without replacement.
//
// Determinism: exactly two rng.Intn draws per pair plus one for the relation,
// in clause order.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/runcsp/instance"
	"github.com/katalvlaran/runcsp/language"
)

const (
	methodRandomInstance = "RandomInstance"
	minPairVariables     = 2
)

// RandomInstance samples nClauses clauses over nVariables variables.
//
// Errors:
//   - ErrTooFewVertices: negative counts, or nVariables < 2 with nClauses > 0
//     (no distinct pair exists).
//   - ErrNilLanguage, ErrNeedRandSource.
//
// Complexity: O(nVariables + nClauses).
func RandomInstance(nVariables, nClauses int, lang *language.Language, opts ...BuilderOption) (*instance.Instance, error) {
	cfg := newBuilderConfig(opts...)

	if nVariables < 0 || nClauses < 0 {
		return nil, fmt.Errorf("%s: n_variables=%d n_clauses=%d: %w",
			methodRandomInstance, nVariables, nClauses, ErrTooFewVertices)
	}
	if nClauses > 0 && nVariables < minPairVariables {
		return nil, fmt.Errorf("%s: n_variables=%d < %d with %d clauses: %w",
			methodRandomInstance, nVariables, minPairVariables, nClauses, ErrTooFewVertices)
	}
	if lang == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomInstance, ErrNilLanguage)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomInstance, ErrNeedRandSource)
	}

	names := lang.Names()
	clauses := make(map[string][]instance.Clause, len(names))
	for k := 0; k < nClauses; k++ {
		name := names[cfg.rng.Intn(len(names))]
		u, v := distinctPair(cfg.rng, nVariables)
		clauses[name] = append(clauses[name], instance.Clause{u, v})
	}

	in, err := instance.New(lang, nVariables, clauses)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomInstance, err)
	}

	return in, nil
}

// distinctPair draws an ordered pair u != v uniformly from [0,n)²; n ≥ 2.
func distinctPair(rng *rand.Rand, n int) (int, int) {
	u := rng.Intn(n)
	v := rng.Intn(n - 1)
	if v >= u {
		v++
	}

	return u, v
}
