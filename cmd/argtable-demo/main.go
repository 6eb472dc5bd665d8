// Package main provides argtable-demo, a small head(1) built on argtable.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/toejough/argtable"
	"github.com/toejough/argtable/readers"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	argtable.Main(newApp(os.Stdout, logger))
}

// schema lists every argument the demo accepts.
var schema = argtable.MustSchema(
	"Usage: argtable-demo [options]\nPrints the first lines of each input file.",
	argtable.Descriptor{
		Long:        "lines",
		Short:       "-n",
		Arity:       1,
		Help:        "Number of lines to print from each file (default %s)",
		DefaultText: "10",
		Default:     readers.Value(10),
		Read:        readers.Int,
	},
	argtable.Descriptor{
		Long:     "input",
		Short:    "-i",
		Arity:    1,
		Required: argtable.RequiredUnless("pattern"),
		Help:     "File to read",
		Read:     readers.File,
		Release:  readers.Close,
	},
	argtable.Descriptor{
		Long:  "pattern",
		Short: "-p",
		Arity: 1,
		Help:  "Glob of further files to read; ** matches any number of directories",
		Read:  readers.Glob,
	},
	argtable.Descriptor{
		Long:  "line_numbers",
		Short: "-N",
		Help:  "Prefix each line with its number",
		Read:  readers.Switch,
	},
)

type demo struct {
	out     io.Writer
	lines   int
	numbers bool
}

func newApp(out io.Writer, logger *slog.Logger) argtable.App {
	return argtable.App{
		Schema:        schema,
		MissingFormat: "argtable-demo: missing argument --%s (see --help)\n",
		InvalidFormat: "argtable-demo: %v\n",
		Logger:        logger,
		Run: func(s *argtable.State, rest []string) error {
			if len(rest) > 0 {
				_, _ = fmt.Fprintf(out, "argtable-demo: unexpected argument %q\n", rest[0])
				return argtable.ExitError{Code: argtable.ExitInvalid}
			}

			d := demo{out: out}
			d.lines, _ = argtable.Value[int](s, "lines")
			d.numbers = s.Present("line_numbers")

			return d.run(s)
		},
	}
}

func (d demo) run(s *argtable.State) error {
	if f, ok := argtable.Value[*os.File](s, "input"); ok {
		err := d.head(f.Name(), f)
		if err != nil {
			return err
		}
	}

	paths, _ := argtable.Value[[]string](s, "pattern")
	for _, path := range paths {
		err := d.headFile(path)
		if err != nil {
			return err
		}
	}

	return nil
}

func (d demo) head(name string, r io.Reader) error {
	_, err := fmt.Fprintf(d.out, "==> %s <==\n", name)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(r)
	for n := 1; n <= d.lines && scanner.Scan(); n++ {
		if d.numbers {
			_, err = fmt.Fprintf(d.out, "%6d  %s\n", n, scanner.Text())
		} else {
			_, err = fmt.Fprintln(d.out, scanner.Text())
		}

		if err != nil {
			return err
		}
	}

	return scanner.Err()
}

func (d demo) headFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return d.head(path, f)
}
