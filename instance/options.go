// SPDX-License-Identifier: MIT
// Package: runcsp/instance
//
// options.go — functional options for Batch.
//
// Option constructors panic on meaningless values; Batch itself never panics.

package instance

import "runtime"

// BatchOption customizes Batch.
type BatchOption func(*batchConfig)

type batchConfig struct {
	workers int // max groups merged concurrently
}

// WithWorkers bounds the number of groups merged concurrently.
// WithWorkers(1) merges sequentially. Panics if n < 1.
func WithWorkers(n int) BatchOption {
	if n < 1 {
		panic("instance: WithWorkers(n<1)")
	}
	return func(c *batchConfig) { c.workers = n }
}

// newBatchConfig applies opts over the default of GOMAXPROCS workers.
func newBatchConfig(opts ...BatchOption) batchConfig {
	cfg := batchConfig{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
