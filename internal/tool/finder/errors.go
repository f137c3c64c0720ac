package finder

import "fmt"

// PatternRequiredError is returned when the search pattern is empty.
type PatternRequiredError struct{}

func (e *PatternRequiredError) Error() string { return "pattern is required" }

func (e *PatternRequiredError) InvalidInput() bool { return true }

// UnknownEntryTypeError is returned for a type filter outside
// file/directory/symlink.
type UnknownEntryTypeError struct {
	Value string
}

func (e *UnknownEntryTypeError) Error() string {
	return fmt.Sprintf("unknown entry type %q (want file, directory or symlink)", e.Value)
}

func (e *UnknownEntryTypeError) InvalidInput() bool { return true }

// HomeDirError is returned when no base path was given and the home
// directory fallback cannot be resolved.
type HomeDirError struct {
	Cause error
}

func (e *HomeDirError) Error() string {
	return fmt.Sprintf("cannot resolve default search path: %v", e.Cause)
}

func (e *HomeDirError) Unwrap() error { return e.Cause }
