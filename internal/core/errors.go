package core

import (
	"errors"
	"fmt"
)

// Exit codes used by the automatic runner.
const (
	ExitOK      = 0
	ExitInvalid = 110
	ExitMissing = 120
)

// Exported variables.
var (
	ErrInsufficientValues = errors.New("not enough values")
	ErrInvalidValue       = errors.New("invalid value")
	ErrMissingRequired    = errors.New("missing required argument")
)

// ArgError describes a failure tied to one argument.
type ArgError struct {
	Kind  error  // one of the Err* sentinels
	ID    string // descriptor id
	Flag  string // the flag as written in help, e.g. "--count"
	Index int    // token index for matching errors, -1 otherwise
	Cause error  // reader error for ErrInvalidValue
}

func (e *ArgError) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v: %v", e.Flag, e.Kind, e.Cause)
	case e.Index >= 0:
		return fmt.Sprintf("%s (argument %d): %v", e.Flag, e.Index, e.Kind)
	default:
		return fmt.Sprintf("%s: %v", e.Flag, e.Kind)
	}
}

// Unwrap exposes both the kind and the reader's cause to errors.Is/As.
func (e *ArgError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Cause}
}

// ExitCode maps a parse error to a process exit code: an ExitError's own
// code, ExitMissing for a missing argument and ExitInvalid for anything else.
func ExitCode(err error) int {
	var exitErr ExitError

	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, ErrMissingRequired):
		return ExitMissing
	default:
		return ExitInvalid
	}
}
