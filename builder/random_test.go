// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/runcsp/builder"
	"github.com/katalvlaran/runcsp/converters"
	"github.com/katalvlaran/runcsp/language"
)

// TestRandomInstance_Shape VERIFIES clause count, distinct endpoints and that only
// language relations are used.
func TestRandomInstance_Shape(t *testing.T) {
	t.Parallel()

	lang := language.Max2SAT()
	in, err := builder.RandomInstance(10, 50, lang, builder.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, 10, in.NVariables())
	require.Equal(t, 50, in.NClauses())

	total := 0
	for name, cs := range in.ClauseMap() {
		require.True(t, lang.Has(name))
		for _, c := range cs {
			require.NotEqual(t, c[0], c[1])
			require.GreaterOrEqual(t, c[0], 0)
			require.Less(t, c[1], 10)
		}
		total += len(cs)
	}
	require.Equal(t, 50, total)

	sum := 0
	for _, d := range in.Degrees() {
		sum += d
	}
	require.Equal(t, 100, sum)
}

// TestRandomInstance_Deterministic VERIFIES a fixed seed reproduces the instance.
func TestRandomInstance_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := builder.RandomInstance(20, 60, language.Coloring(), builder.WithSeed(3))
	require.NoError(t, err)
	b, err := builder.RandomInstance(20, 60, language.Coloring(), builder.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, a.ClauseMap(), b.ClauseMap())

	c, err := builder.RandomInstance(20, 60, language.Coloring(), builder.WithSeed(4))
	require.NoError(t, err)
	require.NotEqual(t, a.ClauseMap(), c.ClauseMap())
}

func TestRandomInstance_Errors(t *testing.T) {
	t.Parallel()

	lang := language.Coloring()
	_, err := builder.RandomInstance(1, 1, lang, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.RandomInstance(-1, 0, lang, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.RandomInstance(5, 5, nil, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrNilLanguage)
	_, err = builder.RandomInstance(5, 5, lang)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	// Zero clauses is fine even with a single variable.
	in, err := builder.RandomInstance(1, 0, lang, builder.WithSeed(1))
	require.NoError(t, err)
	require.Zero(t, in.NClauses())
}

// TestRandomSparse_Extremes VERIFIES p=0 gives no edges and p=1 the complete graph.
func TestRandomSparse_Extremes(t *testing.T) {
	t.Parallel()

	g, err := builder.RandomSparse(6, 0, builder.WithSeed(1))
	require.NoError(t, err)
	require.Equal(t, 6, g.VertexCount())
	require.Zero(t, g.EdgeCount())

	g, err = builder.RandomSparse(6, 1, builder.WithSeed(1), builder.WithPrefixIDs("v"))
	require.NoError(t, err)
	require.Equal(t, 15, g.EdgeCount())
	require.Equal(t, []string{"v0", "v1", "v2", "v3", "v4", "v5"}, g.Vertices())
	require.False(t, g.Directed())
}

// TestRandomSparse_FeedsConverter VERIFIES a sampled graph converts to an instance
// with two clauses per edge.
func TestRandomSparse_FeedsConverter(t *testing.T) {
	t.Parallel()

	g, err := builder.RandomSparse(30, 0.2, builder.WithSeed(11))
	require.NoError(t, err)

	in, err := converters.GraphToInstance(g, language.IndependentSet(), language.NAND)
	require.NoError(t, err)
	require.Equal(t, 30, in.NVariables())
	require.Equal(t, 2*g.EdgeCount(), in.NClauses())
}

func TestRandomSparse_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.RandomSparse(0, 0.5, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.RandomSparse(3, 1.5, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.RandomSparse(3, 0.5)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	constant := func(int) string { return "same" }
	_, err = builder.RandomSparse(3, 0.5, builder.WithSeed(1), builder.WithIDScheme(constant))
	require.ErrorIs(t, err, builder.ErrDuplicateID)
}

// TestRandom2CNF VERIFIES formulas are valid 2-CNF over the requested variables
// and convert cleanly.
func TestRandom2CNF(t *testing.T) {
	t.Parallel()

	f, err := builder.Random2CNF(8, 40, builder.WithSeed(5))
	require.NoError(t, err)
	require.Len(t, f, 40)
	require.NoError(t, f.ValidateTwoCNF())
	require.LessOrEqual(t, f.NumVariables(), 8)
	for _, c := range f {
		require.NotEqual(t, abs(c[0]), abs(c[1]))
	}

	in, err := converters.CNFToInstance(f)
	require.NoError(t, err)
	require.Equal(t, 40, in.NClauses())

	_, err = builder.Random2CNF(1, 3, builder.WithSeed(5))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Random2CNF(4, 0, builder.WithSeed(5))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Random2CNF(4, 3)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
