// SPDX-License-Identifier: MIT
// Package: runcsp/instance
//
// File: merge.go
// Role: Merge (many instances -> one) and Batch (list -> merged groups).
// Determinism:
//   - Merge concatenates in input order; Batch returns groups in input order even
//     though groups are merged concurrently.
// Concurrency:
//   - Batch fans out one goroutine per group, bounded by WithWorkers; inputs are
//     immutable so no coordination beyond result slots is needed.

package instance

import (
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/runcsp/language"
)

// Merge combines instances into one instance over their common language.
//
// The i-th input's variables are shifted by the total variable count of inputs
// 0..i-1, so inputs occupy disjoint, consecutive index ranges. Per relation, the
// merged clause list is the in-order concatenation of the shifted input lists.
// Degrees are the concatenation of input degrees and NClauses is their sum.
// Merge([]*Instance{a}) is structurally identical to a.
//
// Errors: ErrEmptyInstanceList, ErrNilInstance, ErrLanguageMismatch.
// Complexity: O(V + C) over all inputs.
func Merge(instances []*Instance) (*Instance, error) {
	if len(instances) == 0 {
		return nil, fmt.Errorf("Merge: %w", ErrEmptyInstanceList)
	}
	for i, in := range instances {
		if in == nil {
			return nil, fmt.Errorf("Merge: instances[%d]: %w", i, ErrNilInstance)
		}
	}

	lang := instances[0].lang
	for i, in := range instances[1:] {
		if !language.Equal(lang, in.lang) {
			return nil, fmt.Errorf("Merge: instances[%d] uses %s, instances[0] uses %s: %w",
				i+1, in.lang, lang, ErrLanguageMismatch)
		}
	}

	names := lang.Names()
	sizes := make(map[string]int, len(names))
	nVariables := 0
	for _, in := range instances {
		for _, name := range names {
			sizes[name] += len(in.clauses[name])
		}
		nVariables += in.nVariables
	}

	buckets := make(map[string][]Clause, len(names))
	for _, name := range names {
		buckets[name] = make([]Clause, 0, sizes[name])
	}
	degrees := make([]int, 0, nVariables)
	nClauses := 0
	shift := 0
	for _, in := range instances {
		for _, name := range names {
			for _, c := range in.clauses[name] {
				buckets[name] = append(buckets[name], Clause{c[0] + shift, c[1] + shift})
			}
		}
		degrees = append(degrees, in.degrees...)
		nClauses += in.nClauses
		shift += in.nVariables
	}

	return &Instance{
		lang:       lang,
		nVariables: nVariables,
		clauses:    buckets,
		degrees:    degrees,
		nClauses:   nClauses,
	}, nil
}

// Batch partitions instances into consecutive groups of at most batchSize (the
// last group may be smaller) and merges each group. Groups are merged
// concurrently; the result keeps input order. An error in any group fails the
// whole call and no batches are returned. An empty input yields an empty result.
//
// Errors: ErrInvalidBatchSize, plus any Merge error.
// Complexity: O(V + C) total work, spread over up to WithWorkers goroutines.
func Batch(instances []*Instance, batchSize int, opts ...BatchOption) ([]*Instance, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("Batch: batch_size=%d: %w", batchSize, ErrInvalidBatchSize)
	}
	if len(instances) == 0 {
		return []*Instance{}, nil
	}
	cfg := newBatchConfig(opts...)

	groups := lo.Chunk(instances, batchSize)
	out := make([]*Instance, len(groups))

	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for i, group := range groups {
		g.Go(func() error {
			merged, err := Merge(group)
			if err != nil {
				return fmt.Errorf("Batch: group %d (instances %d..%d): %w",
					i, i*batchSize, i*batchSize+len(group)-1, err)
			}
			out[i] = merged
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// TotalClauses returns the sum of NClauses over instances.
func TotalClauses(instances []*Instance) int {
	return lo.SumBy(instances, func(in *Instance) int { return in.nClauses })
}

// TotalVariables returns the sum of NVariables over instances.
func TotalVariables(instances []*Instance) int {
	return lo.SumBy(instances, func(in *Instance) int { return in.nVariables })
}
