// Package shell provides the tool executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/vvm-tools/vvm/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.ToolExecutor using os/exec.
type Executor struct{}

var _ ports.ToolExecutor = (*Executor)(nil)

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Run invokes the binary with the given arguments, capturing both output
// streams. A non-zero exit status is not an error; it is reported through
// the result so callers can mirror the tool's exit code. The child inherits
// the parent environment and working directory.
func (e *Executor) Run(ctx context.Context, binary string, args []string) (*ports.ToolResult, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec // Binary path comes from the managed layout

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = os.Environ()

	err := cmd.Run()
	result := &ports.ToolResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, zerr.With(zerr.Wrap(err, "failed to run tool"), "binary", binary)
		}
		result.ExitCode = exitErr.ExitCode()
	}
	return result, nil
}
