// SPDX-License-Identifier: MIT
// Package: runcsp/dataset
//
// File: dataset.go
// Role: directory-level load/store of graph and formula collections.
// Determinism:
//   - Files are visited in lexical path order (filepath.WalkDir); results follow it.
// Concurrency:
//   - Parsing fans out over an errgroup bounded by WithWorkers; the first error
//     cancels the remaining work and is returned.

package dataset

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/runcsp/adjlist"
	"github.com/katalvlaran/runcsp/cnf"
	"github.com/katalvlaran/runcsp/core"
)

// File extensions recognised by the loaders and produced by the writers.
const (
	GraphExt   = ".adj"
	FormulaExt = ".cnf"
)

const dirPerm = 0o755

// LoadGraphs parses every *.adj file under dir (recursively).
// An empty tree yields an empty, non-nil slice.
func LoadGraphs(dir string, opts ...Option) ([]*core.Graph, error) {
	cfg := newConfig(opts...)
	paths, err := collect(dir, GraphExt)
	if err != nil {
		return nil, fmt.Errorf("LoadGraphs: %w", err)
	}

	graphs, err := parseAll(paths, adjlist.ReadFile, cfg)
	if err != nil {
		return nil, fmt.Errorf("LoadGraphs: %w", err)
	}
	cfg.logger.WithFields(logrus.Fields{"dir": dir, "graphs": len(graphs)}).Info("loaded graphs")

	return graphs, nil
}

// LoadFormulas parses every *.cnf file under dir (recursively).
// An empty tree yields an empty, non-nil slice.
func LoadFormulas(dir string, opts ...Option) ([]cnf.Formula, error) {
	cfg := newConfig(opts...)
	paths, err := collect(dir, FormulaExt)
	if err != nil {
		return nil, fmt.Errorf("LoadFormulas: %w", err)
	}

	formulas, err := parseAll(paths, cnf.ReadFile, cfg)
	if err != nil {
		return nil, fmt.Errorf("LoadFormulas: %w", err)
	}
	cfg.logger.WithFields(logrus.Fields{"dir": dir, "formulas": len(formulas)}).Info("loaded formulas")

	return formulas, nil
}

// WriteGraphs stores graphs as dir/<k>.adj, creating dir if needed. Numbering
// starts at the count of *.adj files already directly in dir. Returns the paths
// written, in input order.
func WriteGraphs(graphs []*core.Graph, dir string, opts ...Option) ([]string, error) {
	cfg := newConfig(opts...)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("WriteGraphs: %w", err)
	}
	existing, err := filepath.Glob(filepath.Join(dir, "*"+GraphExt))
	if err != nil {
		return nil, fmt.Errorf("WriteGraphs: %w", err)
	}

	cfg.logger.WithFields(logrus.Fields{"dir": dir, "existing": len(existing)}).Info("saving graphs")
	out := make([]string, len(graphs))
	for i, g := range graphs {
		out[i] = filepath.Join(dir, strconv.Itoa(len(existing)+i)+GraphExt)
		if err := adjlist.WriteFile(out[i], g); err != nil {
			return nil, fmt.Errorf("WriteGraphs: %w", err)
		}
	}

	return out, nil
}

// WriteFormulas stores formulas as dir/<i>.cnf, creating dir if needed and
// replacing files of the same name. Returns the paths written, in input order.
func WriteFormulas(formulas []cnf.Formula, dir string, opts ...Option) ([]string, error) {
	cfg := newConfig(opts...)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("WriteFormulas: %w", err)
	}

	cfg.logger.WithFields(logrus.Fields{"dir": dir, "formulas": len(formulas)}).Info("saving formulas")
	out := make([]string, len(formulas))
	for i, f := range formulas {
		out[i] = filepath.Join(dir, strconv.Itoa(i)+FormulaExt)
		if err := cnf.WriteFile(out[i], f); err != nil {
			return nil, fmt.Errorf("WriteFormulas: %w", err)
		}
	}

	return out, nil
}

// collect lists regular files under root with the given extension, lexically.
func collect(root, ext string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && strings.EqualFold(filepath.Ext(path), ext) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

// parseAll applies parse to every path on a bounded errgroup, keeping path order.
func parseAll[T any](paths []string, parse func(string) (T, error), cfg config) ([]T, error) {
	out := make([]T, len(paths))
	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(cfg.workers)
	for i, p := range paths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := parse(p)
			if err != nil {
				return err
			}
			out[i] = v
			cfg.logger.WithField("path", p).Debug("parsed")
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
