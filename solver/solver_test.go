// SPDX-License-Identifier: MIT

package solver_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/runcsp/builder"
	"github.com/katalvlaran/runcsp/instance"
	"github.com/katalvlaran/runcsp/language"
	"github.com/katalvlaran/runcsp/metrics"
	"github.com/katalvlaran/runcsp/solver"
)

// scripted replays a fixed sequence of assignments.
type scripted struct {
	lang  *language.Language
	queue [][]int
	calls int
	err   error
}

func (s *scripted) Language() *language.Language { return s.lang }

func (s *scripted) Predict(context.Context, *instance.Instance) ([]int, error) {
	if s.err != nil {
		return nil, s.err
	}
	a := s.queue[s.calls%len(s.queue)]
	s.calls++
	return a, nil
}

// path3 is the 3-coloring instance of the path 0-1-2 (both orientations).
func path3(t *testing.T) *instance.Instance {
	t.Helper()
	in, err := instance.New(language.Coloring(), 3, map[string][]instance.Clause{
		language.NEQ: {{0, 1}, {1, 0}, {1, 2}, {2, 1}},
	})
	require.NoError(t, err)

	return in
}

// TestEvaluate_Boosting VERIFIES the fewest-conflict attempt wins and the search
// stops at a conflict-free assignment.
func TestEvaluate_Boosting(t *testing.T) {
	net := &scripted{lang: language.Coloring(), queue: [][]int{
		{0, 0, 0}, // 4 conflicts
		{0, 1, 1}, // 2 conflicts
		{0, 1, 0}, // 0 conflicts
		{1, 1, 1},
	}}

	rep, err := solver.Evaluate(context.Background(), net, []*instance.Instance{path3(t)}, solver.WithAttempts(4))
	require.NoError(t, err)
	require.Equal(t, 3, net.calls)
	require.Len(t, rep.Results, 1)
	require.Equal(t, solver.Result{
		Index: 0, Conflicts: 0, NClauses: 4, ConflictRatio: 0, Assignment: []int{0, 1, 0},
	}, rep.Results[0])
}

func TestEvaluate_SingleAttempt(t *testing.T) {
	net := &scripted{lang: language.Coloring(), queue: [][]int{{0, 1, 1}}}
	logger, hook := test.NewNullLogger()
	rec := metrics.NewRecorder()

	ins := []*instance.Instance{path3(t), path3(t)}
	rep, err := solver.Evaluate(context.Background(), net, ins,
		solver.WithLogger(logger), solver.WithRecorder(rec))
	require.NoError(t, err)
	require.Equal(t, 2, net.calls)
	require.Equal(t, 4, rep.TotalConflicts())
	require.InDelta(t, 0.5, rep.MeanConflictRatio(), 1e-12)
	require.Equal(t, 1, rep.Results[1].Index)

	require.Len(t, hook.AllEntries(), 3)
	require.Equal(t, "evaluation finished", hook.LastEntry().Message)

	want := `
# HELP runcsp_evaluations_total Number of instances scored against an assignment
# TYPE runcsp_evaluations_total counter
runcsp_evaluations_total 2
`
	require.NoError(t, testutil.GatherAndCompare(rec.Registry(), strings.NewReader(want), "runcsp_evaluations_total"))
}

func TestEvaluate_Errors(t *testing.T) {
	ctx := context.Background()
	in := path3(t)

	_, err := solver.Evaluate(ctx, nil, []*instance.Instance{in})
	require.ErrorIs(t, err, solver.ErrNilNetwork)

	net := &scripted{lang: language.IndependentSet(), queue: [][]int{{0, 0, 0}}}
	_, err = solver.Evaluate(ctx, net, []*instance.Instance{in})
	require.ErrorIs(t, err, solver.ErrLanguageMismatch)
	require.Zero(t, net.calls)

	net = &scripted{lang: language.Coloring(), queue: [][]int{{0, 1}}}
	_, err = solver.Evaluate(ctx, net, []*instance.Instance{in, nil})
	require.ErrorIs(t, err, instance.ErrNilInstance)

	_, err = solver.Evaluate(ctx, net, []*instance.Instance{in})
	require.ErrorIs(t, err, instance.ErrIndexOutOfRange)

	boom := errors.New("boom")
	net = &scripted{lang: language.Coloring(), err: boom}
	_, err = solver.Evaluate(ctx, net, []*instance.Instance{in})
	require.ErrorIs(t, err, boom)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	net = &scripted{lang: language.Coloring(), queue: [][]int{{0, 1, 0}}}
	_, err = solver.Evaluate(cancelled, net, []*instance.Instance{in})
	require.ErrorIs(t, err, context.Canceled)

	require.Panics(t, func() { solver.WithAttempts(0) })
	require.Panics(t, func() { solver.WithLogger(nil) })
}

func TestEvaluate_EmptyReport(t *testing.T) {
	rep, err := solver.Evaluate(context.Background(), solver.NewRandomAssigner(language.Coloring(), 1), nil)
	require.NoError(t, err)
	require.Empty(t, rep.Results)
	require.Zero(t, rep.MeanConflictRatio())
}

// TestRandomAssigner VERIFIES values stay in the domain, seeds reproduce, and more
// attempts never raise the best conflict count.
func TestRandomAssigner(t *testing.T) {
	ctx := context.Background()
	lang := language.Coloring()
	in, err := builder.RandomInstance(40, 120, lang, builder.WithSeed(9))
	require.NoError(t, err)

	a, err := solver.NewRandomAssigner(lang, 5).Predict(ctx, in)
	require.NoError(t, err)
	b, err := solver.NewRandomAssigner(lang, 5).Predict(ctx, in)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Len(t, a, 40)
	for _, x := range a {
		require.True(t, x >= 0 && x < 3)
	}

	one, err := solver.Evaluate(ctx, solver.NewRandomAssigner(lang, 5), []*instance.Instance{in})
	require.NoError(t, err)
	many, err := solver.Evaluate(ctx, solver.NewRandomAssigner(lang, 5), []*instance.Instance{in},
		solver.WithAttempts(16))
	require.NoError(t, err)
	require.LessOrEqual(t, many.Results[0].Conflicts, one.Results[0].Conflicts)

	_, err = solver.NewRandomAssigner(lang, 5).Predict(ctx, nil)
	require.ErrorIs(t, err, instance.ErrNilInstance)
}

func TestCorrectIndependentSet(t *testing.T) {
	// Star centred on 0 plus edge 1-2; NAND clauses in both orientations.
	in, err := instance.New(language.IndependentSet(), 4, map[string][]instance.Clause{
		language.NAND: {{0, 1}, {1, 0}, {0, 2}, {2, 0}, {0, 3}, {3, 0}, {1, 2}, {2, 1}},
	})
	require.NoError(t, err)

	all := []int{1, 1, 1, 1}
	fixed, err := solver.CorrectIndependentSet(in, all)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 0, 1}, fixed)
	require.Equal(t, []int{1, 1, 1, 1}, all)
	require.Equal(t, 2, solver.SetSize(fixed))

	c, err := in.CountConflicts(fixed)
	require.NoError(t, err)
	require.Zero(t, c)

	_, err = solver.CorrectIndependentSet(path3(t), []int{0, 1, 2})
	require.ErrorIs(t, err, solver.ErrNotIndependentSet)
	_, err = solver.CorrectIndependentSet(in, []int{1})
	require.ErrorIs(t, err, instance.ErrIndexOutOfRange)

	// Max-2-SAT carries NAND too, but its OR and IMPL clauses cannot be repaired
	// by dropping endpoints.
	sat, err := instance.New(language.Max2SAT(), 2, map[string][]instance.Clause{
		language.OR:   {{0, 1}},
		language.NAND: {{0, 1}},
	})
	require.NoError(t, err)
	_, err = solver.CorrectIndependentSet(sat, []int{1, 1})
	require.ErrorIs(t, err, solver.ErrNotIndependentSet)
}
