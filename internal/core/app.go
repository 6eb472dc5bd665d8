package core

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/toejough/argtable/internal/flags"
	"github.com/toejough/argtable/internal/help"
)

// App wires a schema to setup, run and teardown hooks and maps every
// outcome to an exit code.
type App struct {
	Schema *flags.Schema

	// Setup runs after the required check and before any value is read.
	// A non-nil error ends the program; Teardown is not called.
	Setup func(args []string) error
	// Run receives the materialized state and the tokens left after matching.
	Run func(s *State, rest []string) error
	// Teardown runs after Run, and after failed materialization, once Setup succeeded.
	Teardown func()

	// MissingFormat, when set, is printed to stderr with the id of a missing
	// required argument, e.g. "missing argument %s\n".
	MissingFormat string
	// InvalidFormat, when set, is printed to stderr with the matching or
	// materialization error.
	InvalidFormat string

	InvalidCode int // exit code for invalid values; ExitInvalid when zero
	MissingCode int // exit code for missing arguments; ExitMissing when zero

	Help   *help.Renderer // nil uses help.NewRenderer
	Logger *slog.Logger   // nil discards
}

// Execute runs app against a captured environment and returns the exit code.
func Execute(args []string, app App) (*ExecuteEnv, int) {
	env := NewExecuteEnv(args)
	code := RunWithEnv(env, app)

	return env, code
}

// Main runs app against the process and exits with its code.
func Main(app App) {
	env := NewOsEnv()
	env.Exit(RunWithEnv(env, app))
}

// RunWithEnv parses env.Args() against the schema and drives the hooks.
// The first element of env.Args() is the program name and is not matched.
func RunWithEnv(env RunEnv, app App) int {
	r := runner{app: app, env: env, log: app.logger()}

	return r.run()
}

type runner struct {
	app App
	env RunEnv
	log *slog.Logger
}

func (a App) invalidCode() int {
	if a.InvalidCode != 0 {
		return a.InvalidCode
	}

	return ExitInvalid
}

func (a App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (a App) missingCode() int {
	if a.MissingCode != 0 {
		return a.MissingCode
	}

	return ExitMissing
}

func (a App) renderer() *help.Renderer {
	if a.Help != nil {
		return a.Help
	}

	return help.NewRenderer()
}

func (r *runner) fail(code int, err error) int {
	var argErr *ArgError
	if errors.As(err, &argErr) && errors.Is(err, ErrMissingRequired) {
		if r.app.MissingFormat != "" {
			_, _ = fmt.Fprintf(r.env.Stderr(), r.app.MissingFormat, argErr.ID)
		}
	} else if r.app.InvalidFormat != "" {
		_, _ = fmt.Fprintf(r.env.Stderr(), r.app.InvalidFormat, err)
	}

	return code
}

func (r *runner) run() int {
	args := r.env.Args()
	tokens := args[min(1, len(args)):]
	state := NewState(r.app.Schema)

	res := state.Match(tokens, 0)
	switch res.Status {
	case StatusHelp:
		r.log.Debug("args.help", slog.Int("index", res.Next))

		err := r.app.renderer().Render(r.env.Stdout(), r.app.Schema)
		if err != nil {
			r.log.Error("args.help.write.fail", slog.String("err", err.Error()))
		}

		return ExitOK
	case StatusError:
		r.log.Warn("args.match.fail", slog.String("err", res.Err.Error()))
		return r.fail(r.app.invalidCode(), res.Err)
	}

	r.log.Debug("args.match.ok", slog.Int("next", res.Next))

	err := state.CheckRequired()
	if err != nil {
		r.log.Warn("args.required.fail", slog.String("err", err.Error()))
		return r.fail(r.app.missingCode(), err)
	}

	if r.app.Setup != nil {
		err = r.app.Setup(args)
		if err != nil {
			r.log.Warn("args.setup.fail", slog.String("err", err.Error()))
			return runCode(err)
		}
	}

	if r.app.Teardown != nil {
		defer r.app.Teardown()
	}

	defer func() {
		state.Release()
		r.log.Debug("args.release")
	}()

	err = state.Materialize()
	if err != nil {
		r.log.Warn("args.materialize.fail", slog.String("err", err.Error()))
		return r.fail(r.app.invalidCode(), err)
	}

	if r.app.Run == nil {
		return ExitOK
	}

	return runCode(r.app.Run(state, tokens[res.Next:]))
}

// runCode maps a hook error to an exit code: ExitError carries its own,
// any other error is 1.
func runCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return 1
}
