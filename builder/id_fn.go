// SPDX-License-Identifier: MIT
// Package: runcsp/builder
//
// id_fn.go — vertex ID schemes for generated graphs.
//
// The vertex index i is always the CSP variable index i once a graph is
// converted; the scheme only controls how vertices are labelled on disk.

package builder

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the Excel-style column name for idx: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
// Complexity: O(log₂₆ idx).
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Adjacency-list files split on whitespace, so prefix must not contain any.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithPrefixIDs sets the ID scheme to PrefixIDFn(prefix).
// Panics if prefix contains whitespace.
func WithPrefixIDs(prefix string) BuilderOption {
	if strings.ContainsFunc(prefix, unicode.IsSpace) {
		panic(fmt.Sprintf("builder: WithPrefixIDs(%q) contains whitespace", prefix))
	}

	return WithIDScheme(PrefixIDFn(prefix))
}
