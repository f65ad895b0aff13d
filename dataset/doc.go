// SPDX-License-Identifier: MIT

// Package dataset loads and stores on-disk problem collections: graphs as
// NetworkX adjacency lists (*.adj) and formulas as DIMACS CNF (*.cnf).
//
// Loaders walk a directory tree, collect matching files in lexical path order and
// parse them concurrently; results keep the path order. Writers number files so
// repeated WriteGraphs calls into one directory never overwrite earlier output.
//
// Progress is reported through a logrus.FieldLogger supplied with WithLogger;
// without one nothing is logged.
package dataset
