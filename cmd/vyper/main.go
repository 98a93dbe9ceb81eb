// Package main is the vyper wrapper binary. It dispatches to the globally
// selected compiler version and mirrors its output and exit code.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vvm-tools/vvm/internal/adapters/cache"
	"github.com/vvm-tools/vvm/internal/adapters/config"
	"github.com/vvm-tools/vvm/internal/adapters/logger"
	"github.com/vvm-tools/vvm/internal/adapters/registry"
	"github.com/vvm-tools/vvm/internal/adapters/shell"
	"github.com/vvm-tools/vvm/internal/engine/wrapper"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		// zerr prints a pretty error report with stack trace and metadata when using %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	if err := cfg.Layout.EnsureRoot(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}

	log := logger.New()
	reg := registry.New(cfg.Layout, log)
	files := cache.Load(cfg.Layout, log)

	w := wrapper.New(cfg.Layout, reg, shell.NewExecutor(), files, log)

	code, err := w.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	return code
}
