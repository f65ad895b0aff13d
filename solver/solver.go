// SPDX-License-Identifier: MIT

// Package solver defines the boundary between CSP instances and whatever
// produces assignments for them, and scores those assignments.
//
// A Network maps an instance to a hard assignment (one domain value per
// variable). Evaluate runs a network over a list of instances, keeps the best of
// several attempts per instance, and reports conflict counts and ratios.
package solver

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/runcsp/instance"
	"github.com/katalvlaran/runcsp/language"
)

// Network produces assignments for instances over its language.
type Network interface {
	// Language is the relation language the network was built for.
	Language() *language.Language
	// Predict returns one value in [0, DomainSize()) per variable of in.
	Predict(ctx context.Context, in *instance.Instance) ([]int, error)
}

// Result is the score of the best assignment found for one instance.
type Result struct {
	Index         int
	Conflicts     int
	NClauses      int
	ConflictRatio float64
	Assignment    []int
}

// Report collects per-instance results in input order.
type Report struct {
	Results []Result
}

// MeanConflictRatio averages ConflictRatio over all results (0 for an empty report).
func (r *Report) MeanConflictRatio() float64 {
	if len(r.Results) == 0 {
		return 0
	}
	sum := 0.0
	for _, res := range r.Results {
		sum += res.ConflictRatio
	}

	return sum / float64(len(r.Results))
}

// TotalConflicts sums Conflicts over all results.
func (r *Report) TotalConflicts() int {
	n := 0
	for _, res := range r.Results {
		n += res.Conflicts
	}

	return n
}

// Evaluate scores net on every instance.
//
// Stage 1 (Validate): non-nil network; every instance non-nil and over a language
// equal to net.Language(). Nothing is predicted unless all instances pass.
// Stage 2 (Execute): per instance, WithAttempts(k) predictions; the assignment
// with the fewest conflicts wins, the earliest on ties.
//
// Errors: ErrNilNetwork, instance.ErrNilInstance, ErrLanguageMismatch, prediction
// and scoring errors (wrapped with the instance index), ctx.Err().
func Evaluate(ctx context.Context, net Network, instances []*instance.Instance, opts ...Option) (*Report, error) {
	cfg := newConfig(opts...)
	if net == nil {
		return nil, fmt.Errorf("Evaluate: %w", ErrNilNetwork)
	}
	lang := net.Language()
	for i, in := range instances {
		if in == nil {
			return nil, fmt.Errorf("Evaluate: instance #%d: %w", i, instance.ErrNilInstance)
		}
		if !language.Equal(lang, in.Language()) {
			return nil, fmt.Errorf("Evaluate: instance #%d over %s, network over %s: %w",
				i, in.Language(), lang, ErrLanguageMismatch)
		}
	}

	report := &Report{Results: make([]Result, 0, len(instances))}
	for i, in := range instances {
		res, err := best(ctx, net, in, cfg.attempts)
		if err != nil {
			return nil, fmt.Errorf("Evaluate: instance #%d: %w", i, err)
		}
		res.Index = i
		report.Results = append(report.Results, res)

		cfg.recorder.ObserveEvaluation(res.ConflictRatio)
		cfg.logger.WithFields(logrus.Fields{
			"instance":  i,
			"conflicts": res.Conflicts,
			"clauses":   res.NClauses,
		}).Info("evaluated instance")
	}
	cfg.logger.WithFields(logrus.Fields{
		"instances":           len(report.Results),
		"mean_conflict_ratio": report.MeanConflictRatio(),
	}).Info("evaluation finished")

	return report, nil
}

// best runs attempts predictions on in and keeps the one with fewest conflicts.
func best(ctx context.Context, net Network, in *instance.Instance, attempts int) (Result, error) {
	res := Result{Conflicts: -1, NClauses: in.NClauses()}
	for a := 0; a < attempts; a++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		assignment, err := net.Predict(ctx, in)
		if err != nil {
			return Result{}, fmt.Errorf("attempt %d: %w", a, err)
		}
		conflicts, err := in.CountConflicts(assignment)
		if err != nil {
			return Result{}, fmt.Errorf("attempt %d: %w", a, err)
		}
		if res.Conflicts < 0 || conflicts < res.Conflicts {
			res.Conflicts = conflicts
			res.Assignment = assignment
		}
		if conflicts == 0 {
			break
		}
	}
	if res.NClauses > 0 {
		res.ConflictRatio = float64(res.Conflicts) / float64(res.NClauses)
	}

	return res, nil
}
