package shell

import "fmt"

// CommandError is returned when an external command cannot be started,
// its output cannot be read, or it exits with a failure status.
type CommandError struct {
	Cmd   string
	Stage string // "start", "read output", "execution"
	Cause error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed at %s: %v", e.Cmd, e.Stage, e.Cause)
}

func (e *CommandError) Unwrap() error { return e.Cause }

func (e *CommandError) CommandFailed() bool { return true }
