// SPDX-License-Identifier: MIT

// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption).
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestIDSchemeOptions verifies ID scheme options apply in order, last wins.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	require.Equal(t, "7", newBuilderConfig().idFn(7))
	require.Equal(t, "AB", newBuilderConfig(WithExcelColumnIDs()).idFn(27))
	require.Equal(t, "v3", newBuilderConfig(WithPrefixIDs("v")).idFn(3))
	require.Equal(t, "3", newBuilderConfig(WithExcelColumnIDs(), WithDefaultIDs()).idFn(3))
}

// TestRNGOptions verifies the rng defaults to nil and that WithSeed is reproducible.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	require.Nil(t, newBuilderConfig().rng)

	a := newBuilderConfig(WithSeed(42)).rng
	b := newBuilderConfig(WithSeed(42)).rng
	for i := 0; i < 8; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}

	r := rand.New(rand.NewSource(1))
	require.Same(t, r, newBuilderConfig(WithSeed(5), WithRand(r)).rng)
}

// TestOptionPanics verifies option constructors reject meaningless values.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { WithIDScheme(nil) })
	require.Panics(t, func() { WithRand(nil) })
	require.Panics(t, func() { WithPrefixIDs("a b") })
}
