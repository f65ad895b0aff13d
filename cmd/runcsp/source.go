// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/runcsp/builder"
	"github.com/katalvlaran/runcsp/converters"
	"github.com/katalvlaran/runcsp/dataset"
	"github.com/katalvlaran/runcsp/instance"
	"github.com/katalvlaran/runcsp/language"
	"github.com/katalvlaran/runcsp/metrics"
)

var errUnknownProblem = errors.New("unknown problem")

// problem ties a problem family to its language and on-disk input kind.
type problem struct {
	name     string
	relation string // graph problems: relation every edge is encoded with; "" for CNF
}

var problems = []problem{
	{name: language.BuiltinColoring, relation: language.NEQ},
	{name: language.BuiltinIndependentSet, relation: language.NAND},
	{name: language.BuiltinMax2SAT},
}

func problemNames() []string {
	out := make([]string, len(problems))
	for i, p := range problems {
		out[i] = p.name
	}

	return out
}

func lookupProblem(name string) (problem, error) {
	i := slices.IndexFunc(problems, func(p problem) bool { return p.name == name })
	if i < 0 {
		return problem{}, fmt.Errorf("%q (want one of %s): %w",
			name, strings.Join(problemNames(), ", "), errUnknownProblem)
	}

	return problems[i], nil
}

func (p problem) language() *language.Language {
	lang, err := language.Builtin(p.name)
	if err != nil {
		// problems only lists built-in names.
		panic(err)
	}

	return lang
}

func (p problem) fromGraphs() bool { return p.relation != "" }

// sourceOptions selects where instances come from: a dataset directory or
// uniform random sampling.
type sourceOptions struct {
	problem      string
	dataPath     string
	languageFile string
	nVariables   int
	nClauses     int
	nInstances   int
	seed         int64
}

func (s *sourceOptions) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&s.problem, "problem", "p", language.BuiltinColoring,
		"problem family: "+strings.Join(problemNames(), ", "))
	fs.StringVarP(&s.dataPath, "data-path", "d", "",
		"directory of .adj graphs or .cnf formulas; random instances are used when empty")
	fs.StringVar(&s.languageFile, "language", "",
		"language record (json/yaml) for random instances instead of the problem's built-in language")
	fs.IntVarP(&s.nVariables, "n-variables", "v", 100, "variables per random instance")
	fs.IntVarP(&s.nClauses, "n-clauses", "c", 300, "clauses per random instance")
	fs.IntVarP(&s.nInstances, "n-instances", "i", 5000, "number of random instances")
	fs.Int64Var(&s.seed, "seed", 1, "seed for sampling and shuffling")
}

// load produces the instance list described by s.
func (s *sourceOptions) load(ctx context.Context, logger logrus.FieldLogger, rec *metrics.Recorder) ([]*instance.Instance, error) {
	p, err := lookupProblem(s.problem)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(s.seed))

	var instances []*instance.Instance
	switch {
	case s.dataPath != "" && s.languageFile != "":
		return nil, errors.New("--data-path and --language are mutually exclusive")
	case s.dataPath != "" && p.fromGraphs():
		instances, err = s.loadGraphs(p, rng, logger)
	case s.dataPath != "":
		instances, err = s.loadFormulas(logger)
	default:
		instances, err = s.sample(ctx, p, rng, logger)
	}
	if err != nil {
		return nil, err
	}

	rec.ObserveInstances(instances)
	return instances, nil
}

func (s *sourceOptions) loadGraphs(p problem, rng *rand.Rand, logger logrus.FieldLogger) ([]*instance.Instance, error) {
	logger.WithField("dir", s.dataPath).Info("loading graphs")
	graphs, err := dataset.LoadGraphs(s.dataPath, dataset.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	rng.Shuffle(len(graphs), func(i, j int) { graphs[i], graphs[j] = graphs[j], graphs[i] })

	lang := p.language()
	out := make([]*instance.Instance, len(graphs))
	for i, g := range graphs {
		if out[i], err = converters.GraphToInstance(g, lang, p.relation); err != nil {
			return nil, fmt.Errorf("graph #%d: %w", i, err)
		}
	}
	logger.WithField("instances", len(out)).Info("converted graphs to CSP instances")

	return out, nil
}

func (s *sourceOptions) loadFormulas(logger logrus.FieldLogger) ([]*instance.Instance, error) {
	logger.WithField("dir", s.dataPath).Info("loading formulas")
	formulas, err := dataset.LoadFormulas(s.dataPath, dataset.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	out := make([]*instance.Instance, len(formulas))
	for i, f := range formulas {
		if out[i], err = converters.CNFToInstance(f); err != nil {
			return nil, fmt.Errorf("formula #%d: %w", i, err)
		}
	}
	logger.WithField("instances", len(out)).Info("converted formulas to CSP instances")

	return out, nil
}

func (s *sourceOptions) sample(ctx context.Context, p problem, rng *rand.Rand, logger logrus.FieldLogger) ([]*instance.Instance, error) {
	if s.nInstances < 0 {
		return nil, fmt.Errorf("--n-instances=%d must not be negative", s.nInstances)
	}
	lang := p.language()
	if s.languageFile != "" {
		var err error
		if lang, err = language.Load(s.languageFile); err != nil {
			return nil, err
		}
	}

	logger.WithFields(logrus.Fields{
		"instances": s.nInstances,
		"variables": s.nVariables,
		"clauses":   s.nClauses,
		"language":  lang.String(),
	}).Info("generating random instances")

	out := make([]*instance.Instance, s.nInstances)
	for i := range out {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		in, err := builder.RandomInstance(s.nVariables, s.nClauses, lang, builder.WithRand(rng))
		if err != nil {
			return nil, err
		}
		out[i] = in
	}

	return out, nil
}

// writeMetrics dumps rec to path when path is set.
func writeMetrics(rec *metrics.Recorder, path string, logger logrus.FieldLogger) error {
	if path == "" {
		return nil
	}
	if err := rec.WriteTextfile(path); err != nil {
		return err
	}
	logger.WithField("path", path).Debug("wrote metrics textfile")

	return nil
}
