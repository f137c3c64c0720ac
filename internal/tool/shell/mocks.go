package shell

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// MockCommandExecutor implements the executor contract for tests.
// StartFunc receives the full argv so tests can assert on flag construction.
type MockCommandExecutor struct {
	StartFunc func(ctx context.Context, command []string, opts ProcessOptions) (Process, io.Reader, io.Reader, error)

	// Commands records every argv passed to Start.
	Commands [][]string
}

func (m *MockCommandExecutor) Start(ctx context.Context, command []string, opts ProcessOptions) (Process, io.Reader, io.Reader, error) {
	m.Commands = append(m.Commands, command)
	if m.StartFunc != nil {
		return m.StartFunc(ctx, command, opts)
	}
	return &MockProcess{}, strings.NewReader(""), strings.NewReader(""), nil
}

// MockProcess implements Process for tests.
type MockProcess struct {
	WaitFunc func() error
	KillFunc func() error
}

func (p *MockProcess) Wait() error {
	if p.WaitFunc != nil {
		return p.WaitFunc()
	}
	return nil
}

func (p *MockProcess) Kill() error {
	if p.KillFunc != nil {
		return p.KillFunc()
	}
	return nil
}

// MockExitError mimics exec.ExitError for exit-code handling tests.
type MockExitError struct {
	Code int
}

func (e *MockExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *MockExitError) ExitCode() int {
	return e.Code
}
