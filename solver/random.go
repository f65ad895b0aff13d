// SPDX-License-Identifier: MIT
// Package: runcsp/solver
//
// random.go — uniform random baseline network.

package solver

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/runcsp/instance"
	"github.com/katalvlaran/runcsp/language"
)

// RandomAssigner draws every variable uniformly from the domain. It is the
// reference point any trained network has to beat.
// Safe for concurrent use.
type RandomAssigner struct {
	lang *language.Language

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAssigner returns a seeded baseline for lang.
func NewRandomAssigner(lang *language.Language, seed int64) *RandomAssigner {
	return &RandomAssigner{lang: lang, rng: rand.New(rand.NewSource(seed))}
}

// Language implements Network.
func (r *RandomAssigner) Language() *language.Language {
	return r.lang
}

// Predict implements Network.
func (r *RandomAssigner) Predict(ctx context.Context, in *instance.Instance) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if in == nil {
		return nil, fmt.Errorf("Predict: %w", instance.ErrNilInstance)
	}

	d := in.Language().DomainSize()
	out := make([]int, in.NVariables())

	r.mu.Lock()
	defer r.mu.Unlock()
	for v := range out {
		out[v] = r.rng.Intn(d)
	}

	return out, nil
}
