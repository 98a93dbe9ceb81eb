// Package wrapper runs the active compiler binary transparently, serving
// repeat single-file compilations from the content-addressed cache.
package wrapper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vvm-tools/vvm/internal/adapters/cache"
	"github.com/vvm-tools/vvm/internal/core/domain"
	"github.com/vvm-tools/vvm/internal/core/ports"
	"go.trai.ch/zerr"
)

// Wrapper is the engine behind the vyper shim binary. It resolves the
// global version, forwards the invocation, and mirrors the compiler's
// streams and exit code.
type Wrapper struct {
	layout   domain.Layout
	registry ports.VersionRegistry
	executor ports.ToolExecutor
	cache    *cache.FilesCache
	logger   ports.Logger
}

// New creates a Wrapper.
func New(layout domain.Layout, registry ports.VersionRegistry, executor ports.ToolExecutor, files *cache.FilesCache, logger ports.Logger) *Wrapper {
	return &Wrapper{
		layout:   layout,
		registry: registry,
		executor: executor,
		cache:    files,
		logger:   logger,
	}
}

// Run forwards args to the active compiler and returns its exit code.
// Plain single-file compilations are answered from the cache when the
// source content is unchanged, without spawning the compiler at all.
// Cache problems degrade to a normal compile with a warning.
func (w *Wrapper) Run(ctx context.Context, args []string, stdout, stderr io.Writer) (int, error) {
	current, err := w.registry.Current()
	if err != nil {
		return 0, err
	}
	if current == nil {
		return 0, domain.ErrGlobalVersionNotSet
	}

	binary := w.layout.BinaryPath(current)
	if _, err := os.Stat(binary); err != nil {
		return 0, zerr.With(zerr.With(domain.ErrUnknownVersion,
			"version", current.String()),
			"hint", "run 'vvm install' for the active version")
	}

	source, cacheable := cacheableSource(args)
	var contentHash string
	if cacheable {
		data, err := os.ReadFile(source.path) //nolint:gosec // User-supplied source file
		if err != nil {
			// Let the compiler produce its own error message for it.
			cacheable = false
		} else {
			contentHash = cache.ContentHash(data)
			if w.cache.IsFresh(source.name, contentHash) {
				entry, _ := w.cache.Entry(source.name)
				fmt.Fprintln(stdout, entry.DeployedBytecode)
				return 0, nil
			}
		}
	}

	result, err := w.executor.Run(ctx, binary, args)
	if err != nil {
		return 0, err
	}

	if _, err := stdout.Write(result.Stdout); err != nil {
		return 0, zerr.Wrap(err, "failed to forward compiler stdout")
	}
	if _, err := stderr.Write(result.Stderr); err != nil {
		return 0, zerr.Wrap(err, "failed to forward compiler stderr")
	}

	if cacheable && result.ExitCode == 0 {
		if bytecode, ok := extractBytecode(result.Stdout); ok {
			w.cache.AddEntry(domain.CacheEntry{
				ContentHash:      contentHash,
				SourceName:       source.name,
				DeployedBytecode: bytecode,
			})
			if err := w.cache.Write(); err != nil {
				w.logger.Warn(fmt.Sprintf("could not persist compilation cache: %v", err))
			}
		}
	}

	return result.ExitCode, nil
}

type sourceFile struct {
	path string
	name string
}

// cacheableSource reports whether the invocation is a plain single-file
// compile, the only shape the cache understands. Any flag or extra argument
// bypasses the cache. The canonical absolute path doubles as the cache key,
// so the same file hits the same entry from any working directory.
func cacheableSource(args []string) (sourceFile, bool) {
	if len(args) != 1 || strings.HasPrefix(args[0], "-") {
		return sourceFile{}, false
	}

	path := args[0]
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return sourceFile{}, false
	}
	return sourceFile{path: path, name: path}, true
}

// extractBytecode picks the deployed bytecode out of the compiler's stdout:
// the last non-empty line starting with "0x".
func extractBytecode(out []byte) (string, bool) {
	var found string
	for _, line := range bytes.Split(out, []byte("\n")) {
		trimmed := strings.TrimSpace(string(line))
		if strings.HasPrefix(trimmed, "0x") {
			found = trimmed
		}
	}
	return found, found != ""
}
