// SPDX-License-Identifier: MIT
// Package language_test verifies construction, indicator tables and built-ins.

package language_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/runcsp/language"
)

// TestNew_IndicatorTables VERIFIES that every declared pair, and only those, is admitted.
func TestNew_IndicatorTables(t *testing.T) {
	l, err := language.New(2, map[string][]language.Pair{
		"XOR": {{0, 1}, {1, 0}},
		"AND": {{1, 1}},
	})
	require.NoError(t, err)
	require.Equal(t, 2, l.DomainSize())
	require.Equal(t, []string{"AND", "XOR"}, l.Names(), "names are sorted")

	xor, ok := l.Indicator("XOR")
	require.True(t, ok)
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			got, err := xor.At(a, b)
			require.NoError(t, err)
			require.Equal(t, a != b, got, "XOR(%d,%d)", a, b)
		}
	}
	require.Equal(t, 2, xor.Count())

	ok, err = l.Holds("AND", 1, 1)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = l.Holds("AND", 0, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestNew_Errors VERIFIES the sentinel mapping for invalid declarations.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name      string
		domain    int
		relations map[string][]language.Pair
		want      error
	}{
		{"zero domain", 0, map[string][]language.Pair{"R": {{0, 0}}}, language.ErrBadDomainSize},
		{"negative domain", -3, map[string][]language.Pair{"R": {{0, 0}}}, language.ErrBadDomainSize},
		{"no relations", 2, nil, language.ErrNoRelations},
		{"empty name", 2, map[string][]language.Pair{"": {{0, 0}}}, language.ErrMalformedLanguage},
		{"pair above domain", 2, map[string][]language.Pair{"R": {{0, 2}}}, language.ErrMalformedLanguage},
		{"negative pair", 3, map[string][]language.Pair{"R": {{-1, 0}}}, language.ErrMalformedLanguage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := language.New(tc.domain, tc.relations)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, l)
		})
	}
}

// TestNew_CopiesInput VERIFIES that mutating the caller's map after New has no effect.
func TestNew_CopiesInput(t *testing.T) {
	pairs := []language.Pair{{0, 1}}
	l, err := language.New(2, map[string][]language.Pair{"R": pairs})
	require.NoError(t, err)

	pairs[0] = language.Pair{1, 1}
	got, ok := l.Relation("R")
	require.True(t, ok)
	require.Equal(t, []language.Pair{{0, 1}}, got)

	got[0] = language.Pair{0, 0}
	again, _ := l.Relation("R")
	require.Equal(t, []language.Pair{{0, 1}}, again, "Relation returns a copy")
}

func TestIndicator_OutOfRange(t *testing.T) {
	ind, ok := language.Coloring().Indicator(language.NEQ)
	require.True(t, ok)

	_, err := ind.At(3, 0)
	require.ErrorIs(t, err, language.ErrOutOfRange)
	_, err = ind.At(0, -1)
	require.ErrorIs(t, err, language.ErrOutOfRange)

	_, err = language.Coloring().Holds("EQ", 0, 0)
	require.ErrorIs(t, err, language.ErrUnknownRelation)
}

// TestBuiltins VERIFIES the literal tables of the three fixed languages.
func TestBuiltins(t *testing.T) {
	col := language.Coloring()
	require.Equal(t, 3, col.DomainSize())
	require.Equal(t, []string{language.NEQ}, col.Names())
	neq, _ := col.Indicator(language.NEQ)
	require.Equal(t, "[0 1 1]\n[1 0 1]\n[1 1 0]\n", neq.String())

	is := language.IndependentSet()
	require.Equal(t, 2, is.DomainSize())
	nand, _ := is.Indicator(language.NAND)
	require.False(t, nand.Admits(1, 1))
	require.Equal(t, 3, nand.Count())

	sat := language.Max2SAT()
	require.Equal(t, []string{language.IMPL, language.NAND, language.OR}, sat.Names())
	impl, _ := sat.Indicator(language.IMPL)
	require.False(t, impl.Admits(1, 0), "true -> false violates IMPL")
	or, _ := sat.Indicator(language.OR)
	require.False(t, or.Admits(0, 0))

	require.Same(t, col, language.Coloring(), "built-ins are shared singletons")
}

func TestBuiltin_Lookup(t *testing.T) {
	for name, want := range map[string]*language.Language{
		language.BuiltinColoring:       language.Coloring(),
		language.BuiltinIndependentSet: language.IndependentSet(),
		language.BuiltinMax2SAT:        language.Max2SAT(),
	} {
		got, err := language.Builtin(name)
		require.NoError(t, err)
		require.Same(t, want, got)
	}

	_, err := language.Builtin("sudoku")
	require.ErrorIs(t, err, language.ErrUnknownBuiltin)
}

// TestEqual_Structural VERIFIES that declaration order and duplicates do not matter.
func TestEqual_Structural(t *testing.T) {
	a, err := language.New(2, map[string][]language.Pair{"NAND": {{0, 0}, {0, 1}, {1, 0}}})
	require.NoError(t, err)
	b, err := language.New(2, map[string][]language.Pair{"NAND": {{1, 0}, {0, 0}, {0, 1}, {0, 0}}})
	require.NoError(t, err)

	require.True(t, language.Equal(a, b))
	require.Equal(t, a.Fingerprint(), b.Fingerprint())
	require.True(t, language.Equal(a, language.IndependentSet()))

	require.False(t, language.Equal(a, language.Max2SAT()))
	require.False(t, language.Equal(a, nil))
	require.True(t, language.Equal(nil, nil))

	renamed, err := language.New(2, map[string][]language.Pair{"NOTBOTH": {{0, 0}, {0, 1}, {1, 0}}})
	require.NoError(t, err)
	require.False(t, language.Equal(a, renamed))
}
