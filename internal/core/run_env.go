package core

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ExecuteEnv is a RunEnv implementation that captures output for testing.
type ExecuteEnv struct {
	args     []string
	stdout   strings.Builder
	stderr   strings.Builder
	exitCode int
	exited   bool
}

// NewExecuteEnv returns a RunEnv that captures output for testing.
// Args should include the program name as the first element.
func NewExecuteEnv(args []string) *ExecuteEnv {
	return &ExecuteEnv{args: args}
}

// Args returns the command line arguments.
func (e *ExecuteEnv) Args() []string {
	return e.args
}

// Errors returns the captured stderr output.
func (e *ExecuteEnv) Errors() string {
	return e.stderr.String()
}

// Exit records the exit code instead of terminating the process.
func (e *ExecuteEnv) Exit(code int) {
	e.exitCode = code
	e.exited = true
}

// ExitCode returns the recorded exit code and whether Exit was called.
func (e *ExecuteEnv) ExitCode() (int, bool) {
	return e.exitCode, e.exited
}

// Output returns the captured stdout output.
func (e *ExecuteEnv) Output() string {
	return e.stdout.String()
}

// Stderr returns the captured stderr buffer.
func (e *ExecuteEnv) Stderr() io.Writer {
	return &e.stderr
}

// Stdout returns the captured stdout buffer.
func (e *ExecuteEnv) Stdout() io.Writer {
	return &e.stdout
}

// ExitError represents a non-zero exit code requested by a hook.
type ExitError struct {
	Code int
}

func (e ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// OsEnv is the RunEnv backed by the real process.
type OsEnv struct{}

// NewOsEnv returns the process environment.
func NewOsEnv() OsEnv {
	return OsEnv{}
}

// Args returns os.Args.
func (OsEnv) Args() []string {
	return os.Args
}

// Exit terminates the process.
func (OsEnv) Exit(code int) {
	os.Exit(code)
}

// Stderr returns os.Stderr.
func (OsEnv) Stderr() io.Writer {
	return os.Stderr
}

// Stdout returns os.Stdout.
func (OsEnv) Stdout() io.Writer {
	return os.Stdout
}

// RunEnv abstracts the process for testing.
type RunEnv interface {
	Args() []string
	Exit(code int)
	// Stdout receives help text.
	Stdout() io.Writer
	// Stderr receives diagnostics such as the missing-argument message.
	Stderr() io.Writer
}
