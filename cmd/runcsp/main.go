// SPDX-License-Identifier: MIT

// Command runcsp builds CSP instances from graphs, formulas or random sampling,
// merges them into batches and scores assignments against them.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
