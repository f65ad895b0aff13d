// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/runcsp/language"
	"github.com/katalvlaran/runcsp/metrics"
	"github.com/katalvlaran/runcsp/solver"
)

type evaluateOptions struct {
	source          sourceOptions
	attempts        int
	metricsTextfile string
}

func newEvaluateCmd(o *rootOptions) *cobra.Command {
	e := &evaluateOptions{}

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score the uniform random baseline on a set of instances",
		Long: `Predict an assignment for every instance with the seeded random
baseline, keep the best of --attempts tries, and report conflicts per instance
and the mean conflict ratio. For independent-set instances the best assignment
is also corrected into a proper independent set and its size reported.

    $ runcsp evaluate -p independent-set -d ./graphs -a 64`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.run(cmd, o.logger)
		},
	}
	e.source.bind(cmd.Flags())
	cmd.Flags().IntVarP(&e.attempts, "attempts", "a", 64, "predictions per instance; the best is kept")
	cmd.Flags().StringVar(&e.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file on exit")

	return cmd
}

func (e *evaluateOptions) run(cmd *cobra.Command, logger *logrus.Logger) error {
	if e.attempts < 1 {
		return fmt.Errorf("--attempts=%d must be at least 1", e.attempts)
	}

	rec := metrics.NewRecorder()
	instances, err := e.source.load(cmd.Context(), logger, rec)
	if err != nil {
		return err
	}
	if len(instances) == 0 {
		return errors.New("no instances to evaluate")
	}

	net := solver.NewRandomAssigner(instances[0].Language(), e.source.seed)
	report, err := solver.Evaluate(cmd.Context(), net, instances,
		solver.WithAttempts(e.attempts),
		solver.WithLogger(logger),
		solver.WithRecorder(rec),
	)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, res := range report.Results {
		fmt.Fprintf(w, "instance %d: conflicts=%d clauses=%d\n", res.Index, res.Conflicts, res.NClauses)
	}
	fmt.Fprintf(w, "mean conflict ratio: %.6f\n", report.MeanConflictRatio())

	if net.Language().Has(language.NAND) && net.Language().NumRelations() == 1 {
		total := 0
		for _, res := range report.Results {
			fixed, err := solver.CorrectIndependentSet(instances[res.Index], res.Assignment)
			if err != nil {
				return err
			}
			total += solver.SetSize(fixed)
		}
		fmt.Fprintf(w, "mean corrected independent set size: %.2f\n", float64(total)/float64(len(report.Results)))
	}

	return writeMetrics(rec, e.metricsTextfile, logger)
}
