// SPDX-License-Identifier: MIT
// Package: runcsp/solver
//
// options.go — functional options for Evaluate.

package solver

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/runcsp/metrics"
)

// Option customizes Evaluate.
type Option func(*config)

type config struct {
	attempts int
	logger   logrus.FieldLogger
	recorder *metrics.Recorder
}

const defaultAttempts = 1

// WithAttempts sets how many predictions are made per instance; the best one is
// kept. Panics if k < 1.
func WithAttempts(k int) Option {
	if k < 1 {
		panic("solver: WithAttempts(k<1)")
	}
	return func(c *config) { c.attempts = k }
}

// WithLogger routes per-instance progress to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("solver: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithRecorder records every evaluation on r. A nil r disables recording.
func WithRecorder(r *metrics.Recorder) Option {
	return func(c *config) { c.recorder = r }
}

func newConfig(opts ...Option) config {
	cfg := config{attempts: defaultAttempts}
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
