// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/runcsp/instance"
	"github.com/katalvlaran/runcsp/metrics"
)

type batchOptions struct {
	source          sourceOptions
	batchSize       int
	workers         int
	metricsTextfile string
}

func newBatchCmd(o *rootOptions) *cobra.Command {
	b := &batchOptions{}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Load or generate instances and merge them into batches",
		Long: `Load a dataset (graphs are shuffled with --seed) or sample random
instances, then merge consecutive groups of --batch-size instances into single
disjoint-union instances and report their sizes.

    $ runcsp batch -p coloring -d ./graphs -b 64`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return b.run(cmd, o.logger)
		},
	}
	b.source.bind(cmd.Flags())
	cmd.Flags().IntVarP(&b.batchSize, "batch-size", "b", 64, "instances per batch")
	cmd.Flags().IntVar(&b.workers, "workers", 0, "groups merged concurrently (0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&b.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file on exit")

	return cmd
}

func (b *batchOptions) run(cmd *cobra.Command, logger *logrus.Logger) error {
	rec := metrics.NewRecorder()
	instances, err := b.source.load(cmd.Context(), logger, rec)
	if err != nil {
		return err
	}

	var opts []instance.BatchOption
	if b.workers > 0 {
		opts = append(opts, instance.WithWorkers(b.workers))
	}
	start := time.Now()
	batches, err := instance.Batch(instances, b.batchSize, opts...)
	if err != nil {
		return err
	}
	rec.ObserveBatch(len(batches), time.Since(start))

	w := cmd.OutOrStdout()
	for i, in := range batches {
		fmt.Fprintf(w, "batch %d: variables=%d clauses=%d\n", i, in.NVariables(), in.NClauses())
	}
	logger.WithFields(logrus.Fields{
		"instances": len(instances),
		"batches":   len(batches),
		"variables": instance.TotalVariables(batches),
		"clauses":   instance.TotalClauses(batches),
	}).Info("batched instances")

	return writeMetrics(rec, b.metricsTextfile, logger)
}
