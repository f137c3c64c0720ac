// Package shell runs external commands and exposes their output streams.
// Search tools build an argv and hand it to a CommandExecutor; the real
// implementation is a thin layer over os/exec.
package shell

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// ProcessOptions contains options for starting a process.
type ProcessOptions struct {
	Dir string
	Env []string
}

// Process is a handle to a started command.
type Process interface {
	Wait() error
	Kill() error
}

// OSProcess implements Process for real OS processes.
type OSProcess struct {
	Cmd *exec.Cmd
}

func (p *OSProcess) Wait() error {
	return p.Cmd.Wait()
}

func (p *OSProcess) Kill() error {
	if p.Cmd.Process != nil {
		return p.Cmd.Process.Kill()
	}
	return nil
}

// OSCommandExecutor starts commands using os/exec.
type OSCommandExecutor struct{}

// NewOSCommandExecutor creates a new OSCommandExecutor.
func NewOSCommandExecutor() *OSCommandExecutor {
	return &OSCommandExecutor{}
}

// Start launches command[0] with the remaining elements as arguments and
// returns a handle plus the stdout and stderr pipes. The caller must drain
// both pipes before calling Wait.
func (f *OSCommandExecutor) Start(ctx context.Context, command []string, opts ProcessOptions) (Process, io.Reader, io.Reader, error) {
	if len(command) == 0 {
		return nil, nil, nil, os.ErrInvalid
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = opts.Dir
	cmd.Env = opts.Env

	// Explicitly close stdin to prevent interactive hangs
	cmd.Stdin = nil

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, nil, err
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, nil, nil, err
	}

	if err := cmd.Start(); err != nil {
		return nil, nil, nil, err
	}

	return &OSProcess{Cmd: cmd}, stdout, stderr, nil
}

// ExitCode extracts the exit code from an error returned by Process.Wait.
// Returns 0 if err is nil, the exit code if the error carries one, or -1
// for unknown error types.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	type exitCoder interface {
		ExitCode() int
	}
	if ec, ok := err.(exitCoder); ok {
		return ec.ExitCode()
	}

	return -1
}
