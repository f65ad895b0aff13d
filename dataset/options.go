// SPDX-License-Identifier: MIT
// Package: runcsp/dataset
//
// options.go — functional options shared by loaders and writers.

package dataset

import (
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Option customizes a dataset call.
type Option func(*config)

type config struct {
	logger  logrus.FieldLogger
	workers int
}

// WithLogger routes progress messages to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("dataset: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithWorkers bounds the number of files parsed concurrently. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("dataset: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

func newConfig(opts ...Option) config {
	cfg := config{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		null := logrus.New()
		null.SetOutput(io.Discard)
		cfg.logger = null
	}

	return cfg
}
