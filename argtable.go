package argtable

import (
	"io"

	"github.com/toejough/argtable/internal/core"
	"github.com/toejough/argtable/internal/flags"
	"github.com/toejough/argtable/internal/help"
)

// --- Re-exported types ---

// App wires a schema to setup, run and teardown hooks. See Main.
type App = core.App

// ArgError describes a failure tied to one argument.
type ArgError = core.ArgError

// Descriptor is the static declaration of one accepted argument.
type Descriptor = flags.Descriptor

// ExitError is returned by a hook to choose the process exit code.
type ExitError = core.ExitError

// Predicate decides, after matching, whether an argument is required.
type Predicate = flags.Predicate

// Presence reports which arguments were matched. Predicates receive one.
type Presence = flags.Presence

// Record is the per-argument parse state.
type Record = core.Record

// Renderer writes help for a schema.
type Renderer = help.Renderer

// Schema is an ordered, validated list of descriptors.
type Schema = flags.Schema

// State holds the records of a single parse.
type State = core.State

// Status is the outcome of a parse.
type Status = core.Status

// Styles holds the lipgloss styles used in help output.
type Styles = help.Styles

// Re-export Status values.
const (
	StatusOK    = core.StatusOK
	StatusError = core.StatusError
	StatusHelp  = core.StatusHelp
)

// Re-export exit codes.
const (
	ExitOK      = core.ExitOK
	ExitInvalid = core.ExitInvalid
	ExitMissing = core.ExitMissing
)

// Re-exported errors.
var (
	ErrDuplicateID        = flags.ErrDuplicateID
	ErrDuplicateLong      = flags.ErrDuplicateLong
	ErrDuplicateShort     = flags.ErrDuplicateShort
	ErrEmptyLong          = flags.ErrEmptyLong
	ErrInsufficientValues = core.ErrInsufficientValues
	ErrInvalidShort       = flags.ErrInvalidShort
	ErrInvalidValue       = core.ErrInvalidValue
	ErrMissingRequired    = core.ErrMissingRequired
	ErrNegativeArity      = flags.ErrNegativeArity
)

// Re-exported required predicates.
var (
	Always         Predicate = flags.Always
	Never          Predicate = flags.Never
	AllOf                    = flags.AllOf
	AnyOf                    = flags.AnyOf
	RequiredIf               = flags.RequiredIf
	RequiredUnless           = flags.RequiredUnless
)

// --- Public API ---

// ExecuteResult contains the captured output of Execute.
type ExecuteResult struct {
	Output string // stdout, where help goes
	Errors string // stderr, where diagnostics go
}

// Execute runs app with the given args and returns its output and exit code
// instead of exiting. Args should include the program name as the first element.
func Execute(args []string, app App) (ExecuteResult, int) {
	env, code := core.Execute(args, app)
	return ExecuteResult{Output: env.Output(), Errors: env.Errors()}, code
}

// ExitCode maps an error from Parse to a process exit code.
func ExitCode(err error) int {
	return core.ExitCode(err)
}

// Main runs app against os.Args and exits with its code.
func Main(app App) {
	core.Main(app)
}

// MustSchema is like NewSchema but panics on an invalid schema.
func MustSchema(description string, descs ...Descriptor) *Schema {
	return flags.MustSchema(description, descs...)
}

// NewSchema validates descs and returns a schema preserving their order.
func NewSchema(description string, descs ...Descriptor) (*Schema, error) {
	return flags.NewSchema(description, descs...)
}

// Result is what Parse produced.
type Result struct {
	State  *State
	Status Status
	Rest   []string // tokens from the first one no argument matched
}

// Parse matches tokens against schema and materializes the values.
//
// On StatusHelp nothing is materialized and the caller should print help.
// On error the Status is StatusError and ExitCode(err) gives the exit code.
// In every case call Release on the returned state when done with the
// values; it is a no-op when nothing was materialized.
func Parse(schema *Schema, tokens []string) (Result, error) {
	state := core.NewState(schema)

	res := state.Match(tokens, 0)
	switch res.Status {
	case StatusHelp:
		return Result{State: state, Status: StatusHelp, Rest: tokens[res.Next:]}, nil
	case StatusError:
		return Result{State: state, Status: StatusError, Rest: tokens[res.Next:]}, res.Err
	}

	result := Result{State: state, Status: StatusOK, Rest: tokens[res.Next:]}

	err := state.Materialize()
	if err != nil {
		result.Status = StatusError
		return result, err
	}

	return result, nil
}

// PrintHelp writes help for schema to w, wrapped to the terminal width.
func PrintHelp(w io.Writer, schema *Schema) error {
	return help.NewRenderer().Render(w, schema)
}

// Value returns the materialized value of the argument id as a T.
func Value[T any](s *State, id string) (T, bool) {
	return core.ValueOf[T](s, id)
}

// Wrap splits text into lines no wider than maxColumns, breaking between
// words where it can.
func Wrap(text string, maxColumns int) []string {
	return help.Wrap(text, maxColumns)
}
