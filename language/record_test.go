// SPDX-License-Identifier: MIT

package language_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/runcsp/language"
)

// TestSaveLoad_RoundTrip VERIFIES Load(Save(L)) keeps domain size and relation content
// for both record encodings.
func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, l := range []*language.Language{language.Coloring(), language.IndependentSet(), language.Max2SAT()} {
		for _, file := range []string{"lang.json", "lang.yaml"} {
			path := filepath.Join(dir, file)
			require.NoError(t, l.Save(path))

			back, err := language.Load(path)
			require.NoError(t, err)
			require.Equal(t, l.DomainSize(), back.DomainSize())
			require.Equal(t, l.Names(), back.Names())
			for _, name := range l.Names() {
				want, _ := l.Relation(name)
				got, _ := back.Relation(name)
				require.Equal(t, want, got, "%s/%s", file, name)
			}
			require.True(t, language.Equal(l, back))
			require.Equal(t, l.Fingerprint(), back.Fingerprint())
		}
	}
}

func TestSave_JSONLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "is.json")
	require.NoError(t, language.IndependentSet().Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, `{"domain_size": 2, "relations": {"NAND": [[0,0],[0,1],[1,0]]}}`, string(data))
	require.Contains(t, string(data), "\n    \"domain_size\"", "4-space indent")
}

// TestUnmarshal_Malformed VERIFIES shape and range validation of loaded records.
func TestUnmarshal_Malformed(t *testing.T) {
	_, err := language.Unmarshal([]byte(`{"domain_size": 2, "relations": {"R": [[0, 1, 1]]}}`), language.FormatJSON)
	require.ErrorIs(t, err, language.ErrMalformedLanguage)

	_, err = language.Unmarshal([]byte(`{"domain_size": 2, "relations": {"R": [[0]]}}`), language.FormatJSON)
	require.ErrorIs(t, err, language.ErrMalformedLanguage)

	_, err = language.Unmarshal([]byte("domain_size: 2\nrelations:\n  R:\n  - [0, 5]\n"), language.FormatYAML)
	require.ErrorIs(t, err, language.ErrMalformedLanguage)

	_, err = language.Unmarshal([]byte(`{"domain_size": 0, "relations": {"R": []}}`), language.FormatJSON)
	require.ErrorIs(t, err, language.ErrBadDomainSize)

	_, err = language.Unmarshal([]byte(`{`), language.FormatJSON)
	require.Error(t, err)

	_, err = language.Unmarshal([]byte(`{}`), language.Format(7))
	require.ErrorIs(t, err, language.ErrUnsupportedFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := language.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatForPath(t *testing.T) {
	require.Equal(t, language.FormatYAML, language.FormatForPath("a/b.YML"))
	require.Equal(t, language.FormatYAML, language.FormatForPath("x.yaml"))
	require.Equal(t, language.FormatJSON, language.FormatForPath("x.json"))
	require.Equal(t, language.FormatJSON, language.FormatForPath("x"))
	require.Equal(t, "yaml", language.FormatYAML.String())
}
