//go:build targ

package dev

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/akedrou/textdiff"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/toejough/go-reorder"
	"github.com/toejough/targ"
	"github.com/toejough/targ/sh"
	"github.com/toejough/testredundancy"
)

// minCoverage is the total statement coverage CheckCoverage requires.
const minCoverage = 90.0

// Check runs all checks & fixes on the code, in order of correctness.
func Check(ctx context.Context) error {
	fmt.Println("Checking...")

	return targ.Deps(
		func() error { return Fmt(ctx) },           // format code including imports
		func() error { return Tidy(ctx) },          // clean up the module dependencies
		func() error { return CheckCoverage(ctx) }, // does our code work?
		func() error { return ReorderDecls(ctx) },  // linter will yell about declaration order if not correct
		func() error { return Lint(ctx) },
	)
}

// CheckCoverage checks that total coverage meets the minimum threshold.
func CheckCoverage(ctx context.Context) error {
	fmt.Println("Checking coverage...")

	if err := targ.Deps(func() error { return Test(ctx) }); err != nil {
		return err
	}

	out, err := sh.OutputContext(ctx, "go", "tool", "cover", "-func=coverage.out")
	if err != nil {
		return err
	}

	total, err := totalCoverage(out)
	if err != nil {
		return err
	}

	fmt.Printf("Total coverage: %.1f%%\n", total)

	if total < minCoverage {
		return fmt.Errorf("coverage %.1f%% is below %.1f%%", total, minCoverage)
	}

	return nil
}

// CheckForFail runs the tests purely to find out whether anything fails.
// The mutation tester uses it as its test command.
func CheckForFail(ctx context.Context) error {
	fmt.Println("Running unit tests for overall pass/fail...")

	return sh.RunContext(ctx, "go", "test", "-timeout=30s", "-failfast", "./...")
}

// FindRedundantTests identifies unit tests that add no coverage beyond the
// public API and demo tests.
func FindRedundantTests() error {
	config := testredundancy.Config{
		BaselineTests: []testredundancy.BaselineTestSpec{
			{Package: ".", TestPattern: ""},
			{Package: "./cmd/argtable-demo", TestPattern: ""},
		},
		CoverageThreshold: 80.0,
		PackageToAnalyze:  "./...",
		CoveragePackages:  "./,./internal/...,./readers/...",
	}

	return testredundancy.Find(config)
}

// Fmt formats the codebase.
func Fmt(ctx context.Context) error {
	fmt.Println("Formatting...")
	return sh.RunContext(ctx, "golangci-lint", "fmt")
}

// Lint lints the codebase.
func Lint(ctx context.Context) error {
	fmt.Println("Linting...")
	return sh.RunContext(ctx, "golangci-lint", "run")
}

// Mutate runs the mutation tests.
func Mutate() error {
	fmt.Println("Running mutation tests...")

	if err := targ.Deps(func() error { return CheckForFail(context.Background()) }); err != nil {
		return err
	}

	return sh.Run("go", "test", "-timeout=0", "-tags=mutation", "-v", "./dev/...", "-run=TestMutation")
}

// ReorderDecls reorders declarations in Go files per conventions.
func ReorderDecls(ctx context.Context) error {
	fmt.Println("Reordering declarations...")

	return eachSource(ctx, func(path, content, reordered string) error {
		err := os.WriteFile(path, []byte(reordered), 0o600)
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Printf("  Reordered: %s\n", path)

		return nil
	})
}

// ReorderDeclsCheck shows which files need reordering without modifying them.
func ReorderDeclsCheck(ctx context.Context) error {
	fmt.Println("Checking declaration order...")

	outOfOrder := 0

	err := eachSource(ctx, func(path, content, reordered string) error {
		outOfOrder++

		fmt.Printf("\n%s\n", textdiff.Unified(path+" (current)", path+" (reordered)", content, reordered))

		return nil
	})
	if err != nil {
		return err
	}

	if outOfOrder > 0 {
		return fmt.Errorf("%d file(s) need reordering; run 'targ reorder-decls' to fix", outOfOrder)
	}

	return nil
}

// Test runs the unit tests with coverage.
func Test(ctx context.Context) error {
	fmt.Println("Running unit tests...")

	// -count=1 disables caching so coverage is regenerated
	return sh.RunContext(ctx,
		"go",
		"test",
		"-timeout=2m",
		"-race",
		"-count=1",
		"-coverprofile=coverage.out",
		"-coverpkg=./...",
		"./...",
	)
}

// Tidy tidies up go.mod.
func Tidy(ctx context.Context) error {
	fmt.Println("Tidying go.mod...")
	return sh.RunContext(ctx, "go", "mod", "tidy")
}

var totalPattern = regexp.MustCompile(`total:\s+\(statements\)\s+(\d+(?:\.\d+)?)%`)

// eachSource calls fn for every hand-written Go file whose declarations are
// out of order.
func eachSource(ctx context.Context, fn func(path, content, reordered string) error) error {
	files, err := doublestar.FilepathGlob("**/*.go", doublestar.WithFilesOnly())
	if err != nil {
		return fmt.Errorf("failed to find Go files: %w", err)
	}

	for _, path := range files {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if strings.HasPrefix(path, "_") || strings.Contains(path, "/.") {
			continue
		}

		generated, err := isGeneratedFile(path)
		if err != nil {
			return err
		}

		if generated {
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		reordered, err := reorder.Source(string(content))
		if err != nil {
			fmt.Printf("Warning: failed to reorder %s: %v\n", path, err)
			continue
		}

		if reordered == string(content) {
			continue
		}

		err = fn(path, string(content), reordered)
		if err != nil {
			return err
		}
	}

	return nil
}

func isGeneratedFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, 200)

	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return strings.Contains(string(buf[:n]), "Code generated"), nil
}

func totalCoverage(report string) (float64, error) {
	m := totalPattern.FindStringSubmatch(report)
	if m == nil {
		return 0, fmt.Errorf("no total line in coverage report")
	}

	return strconv.ParseFloat(m[1], 64)
}
