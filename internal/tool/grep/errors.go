package grep

import "fmt"

// PatternRequiredError is returned when the search pattern is empty.
type PatternRequiredError struct{}

func (e *PatternRequiredError) Error() string { return "pattern is required" }

func (e *PatternRequiredError) InvalidInput() bool { return true }

// DecodeError is returned when an rg output line is not valid JSON.
// The whole call fails; malformed lines are never silently skipped.
type DecodeError struct {
	Line  int // 1-based output line number
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed rg JSON on output line %d: %v", e.Line, e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// HomeDirError is returned when no base path was given and the home
// directory fallback cannot be resolved.
type HomeDirError struct {
	Cause error
}

func (e *HomeDirError) Error() string {
	return fmt.Sprintf("cannot resolve default search path: %v", e.Cause)
}

func (e *HomeDirError) Unwrap() error { return e.Cause }
