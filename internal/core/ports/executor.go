package ports

import "context"

// ToolResult is the outcome of one compiler invocation.
type ToolResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// ToolExecutor spawns the installed compiler binary.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type ToolExecutor interface {
	// Run executes binary with args and returns the captured output.
	// A non-zero exit from the tool is reported via ToolResult, not an error.
	Run(ctx context.Context, binary string, args []string) (*ToolResult, error)
}
