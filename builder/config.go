// SPDX-License-Identifier: MIT
// Package: runcsp/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • idFn = DefaultIDFn ("0","1","2",...)
//   • rng  = nil (every generator rejects a nil rng with ErrNeedRandSource)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by generators.
// It is passed by value.
type builderConfig struct {
	idFn IDFn       // vertex index -> vertex ID
	rng  *rand.Rand // random source; nil until WithSeed/WithRand
}

// newBuilderConfig applies opts in order over the defaults; last wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
