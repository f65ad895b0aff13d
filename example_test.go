// SPDX-License-Identifier: MIT

package runcsp_test

import (
	"fmt"

	"github.com/katalvlaran/runcsp/builder"
	"github.com/katalvlaran/runcsp/cnf"
	"github.com/katalvlaran/runcsp/converters"
	"github.com/katalvlaran/runcsp/core"
	"github.com/katalvlaran/runcsp/instance"
	"github.com/katalvlaran/runcsp/language"
)

// Example_coloring encodes a triangle for 3-coloring and scores two assignments.
func Example_coloring() {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "A")

	in, err := converters.GraphToInstance(g, language.Coloring(), language.NEQ)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(in)

	proper, _ := in.CountConflicts([]int{0, 1, 2})
	mono, _ := in.CountConflicts([]int{1, 1, 1})
	fmt.Println(proper, mono)
	// Output:
	// Instance(n=3, m=6, NEQ:6)
	// 0 6
}

// Example_max2SAT classifies the clauses of a small 2-CNF formula.
func Example_max2SAT() {
	in, err := converters.CNFToInstance(cnf.Formula{{1, 2}, {-2, 3}, {2, -1}})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(in.Clauses(language.OR))
	fmt.Println(in.Clauses(language.IMPL))
	fmt.Println(in.Degrees())
	// Output:
	// [[0 1]]
	// [[1 2] [0 1]]
	// [2 3 1]
}

// Example_batch merges five random instances into batches of two.
func Example_batch() {
	var ins []*instance.Instance
	for seed := int64(0); seed < 5; seed++ {
		in, err := builder.RandomInstance(10, 25, language.IndependentSet(), builder.WithSeed(seed))
		if err != nil {
			fmt.Println(err)
			return
		}
		ins = append(ins, in)
	}

	batches, err := instance.Batch(ins, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, b := range batches {
		fmt.Println(b.NVariables(), b.NClauses())
	}
	// Output:
	// 20 50
	// 20 50
	// 10 25
}
