package shell_test

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvm-tools/vvm/internal/adapters/shell"
)

func TestRun_CapturesStdout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}

	executor := shell.NewExecutor()
	result, err := executor.Run(context.Background(), "sh", []string{"-c", "echo out; echo err >&2"})
	require.NoError(t, err)

	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "out\n", string(result.Stdout))
	assert.Equal(t, "err\n", string(result.Stderr))
}

func TestRun_NonZeroExitIsNotAnError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}

	executor := shell.NewExecutor()
	result, err := executor.Run(context.Background(), "sh", []string{"-c", "exit 3"})
	require.NoError(t, err)
	assert.Equal(t, 3, result.ExitCode)
}

func TestRun_MissingBinary(t *testing.T) {
	executor := shell.NewExecutor()
	_, err := executor.Run(context.Background(), "/definitely/not/here", nil)
	assert.Error(t, err)
}
