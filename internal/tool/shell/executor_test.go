package shell

import (
	"errors"
	"testing"
)

func TestExitCode_NilError(t *testing.T) {
	if got := ExitCode(nil); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestExitCode_ExitCoder(t *testing.T) {
	if got := ExitCode(&MockExitError{Code: 2}); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
}

func TestExitCode_UnknownError(t *testing.T) {
	if got := ExitCode(errors.New("boom")); got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
}

func TestCommandError_Unwrap(t *testing.T) {
	cause := errors.New("no such file")
	err := &CommandError{Cmd: "fd", Stage: "start", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("expected CommandError to unwrap to its cause")
	}
	if !err.CommandFailed() {
		t.Error("expected CommandFailed marker")
	}
}
