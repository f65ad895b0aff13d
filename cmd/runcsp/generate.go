// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/runcsp/builder"
	"github.com/katalvlaran/runcsp/cnf"
	"github.com/katalvlaran/runcsp/core"
	"github.com/katalvlaran/runcsp/dataset"
)

func newGenerateCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write synthetic datasets",
	}
	cmd.AddCommand(newGenerateCNFCmd(o), newGenerateGraphsCmd(o))

	return cmd
}

func newGenerateCNFCmd(o *rootOptions) *cobra.Command {
	var (
		outDir                          string
		nVariables, nClauses, instances int
		seed                            int64
	)

	cmd := &cobra.Command{
		Use:   "cnf",
		Short: "Write random 2-CNF formulas as <i>.cnf DIMACS files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if instances < 0 {
				return fmt.Errorf("--n-instances=%d must not be negative", instances)
			}
			rng := rand.New(rand.NewSource(seed))
			formulas := make([]cnf.Formula, instances)
			for i := range formulas {
				f, err := builder.Random2CNF(nVariables, nClauses, builder.WithRand(rng))
				if err != nil {
					return err
				}
				formulas[i] = f
			}
			paths, err := dataset.WriteFormulas(formulas, outDir, dataset.WithLogger(o.logger))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d formulas to %s\n", len(paths), outDir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "destination directory")
	cmd.Flags().IntVarP(&nVariables, "n-variables", "v", 100, "variables per formula")
	cmd.Flags().IntVarP(&nClauses, "n-clauses", "c", 300, "clauses per formula")
	cmd.Flags().IntVarP(&instances, "n-instances", "i", 100, "number of formulas")
	cmd.Flags().Int64Var(&seed, "seed", 1, "sampling seed")
	if err := cmd.MarkFlagRequired("out-dir"); err != nil {
		panic(err)
	}

	return cmd
}

func newGenerateGraphsCmd(o *rootOptions) *cobra.Command {
	var (
		outDir             string
		nVertices, nGraphs int
		p                  float64
		seed               int64
		excelIDs           bool
	)

	cmd := &cobra.Command{
		Use:   "graphs",
		Short: "Write random graphs as <k>.adj adjacency lists",
		Long: `Sample Erdős–Rényi graphs and append them to --out-dir. Numbering
continues after the .adj files already in the directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if nGraphs < 0 {
				return fmt.Errorf("--n-instances=%d must not be negative", nGraphs)
			}
			opts := []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(seed)))}
			if excelIDs {
				opts = append(opts, builder.WithExcelColumnIDs())
			}
			graphs := make([]*core.Graph, nGraphs)
			for i := range graphs {
				g, err := builder.RandomSparse(nVertices, p, opts...)
				if err != nil {
					return err
				}
				graphs[i] = g
			}
			paths, err := dataset.WriteGraphs(graphs, outDir, dataset.WithLogger(o.logger))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d graphs to %s\n", len(paths), outDir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "destination directory")
	cmd.Flags().IntVarP(&nVertices, "n-vertices", "n", 100, "vertices per graph")
	cmd.Flags().Float64Var(&p, "p", 0.03, "independent edge probability")
	cmd.Flags().IntVarP(&nGraphs, "n-instances", "i", 100, "number of graphs")
	cmd.Flags().Int64Var(&seed, "seed", 1, "sampling seed")
	cmd.Flags().BoolVar(&excelIDs, "excel-ids", false, "label vertices A, B, ..., AA instead of 0, 1, ...")
	if err := cmd.MarkFlagRequired("out-dir"); err != nil {
		panic(err)
	}

	return cmd
}
