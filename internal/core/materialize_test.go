package core_test

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/toejough/argtable/internal/core"
	"github.com/toejough/argtable/internal/flags"
)

func TestMaterialize(t *testing.T) {
	t.Parallel()

	t.Run("ReadsPresentValue", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		state := core.NewState(countSchema())
		state.Match([]string{"-c", "5"}, 0)

		g.Expect(state.Materialize()).To(Succeed())

		count, ok := core.ValueOf[int](state, "count")
		g.Expect(ok).To(BeTrue())
		g.Expect(count).To(Equal(5))
	})

	t.Run("AbsentRequiredIsMissing", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		state := core.NewState(countSchema())
		state.Match(nil, 0)

		err := state.Materialize()
		g.Expect(err).To(MatchError(core.ErrMissingRequired))
		g.Expect(err.Error()).To(Equal("--count: missing required argument"))

		var argErr *core.ArgError
		g.Expect(errors.As(err, &argErr)).To(BeTrue())
		g.Expect(argErr.ID).To(Equal("count"))
		g.Expect(argErr.Index).To(Equal(-1))
	})

	t.Run("ReaderFailureIsInvalid", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		state := core.NewState(countSchema())
		state.Match([]string{"-c", "five"}, 0)

		err := state.Materialize()
		g.Expect(err).To(MatchError(core.ErrInvalidValue))
		g.Expect(err).To(MatchError(strconv.ErrSyntax))
		g.Expect(err.Error()).To(HavePrefix("--count: invalid value: "))

		_, ok := state.Value("count")
		g.Expect(ok).To(BeFalse())
	})

	t.Run("DefaultUsedWithoutReader", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		var reads int

		schema := flags.MustSchema("", flags.Descriptor{
			Long:    "lines",
			Arity:   1,
			Default: func() (any, bool) { return 10, true },
			Read: func([]string) (any, error) {
				reads++
				return 0, nil
			},
		})
		state := core.NewState(schema)
		state.Match(nil, 0)

		g.Expect(state.Materialize()).To(Succeed())
		g.Expect(reads).To(Equal(0))

		lines, ok := core.ValueOf[int](state, "lines")
		g.Expect(ok).To(BeTrue())
		g.Expect(lines).To(Equal(10))

		rec, _ := state.Record("lines")
		g.Expect(rec.Present).To(BeFalse())
		g.Expect(rec.Initialized).To(BeTrue())
	})

	t.Run("DeclinedDefaultLeavesValueUnset", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		schema := flags.MustSchema("", flags.Descriptor{
			Long:    "lines",
			Arity:   1,
			Default: func() (any, bool) { return nil, false },
		})
		state := core.NewState(schema)

		g.Expect(state.Materialize()).To(Succeed())

		_, ok := state.Value("lines")
		g.Expect(ok).To(BeFalse())
	})

	t.Run("DefaultDoesNotSatisfyRequired", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		schema := flags.MustSchema("", flags.Descriptor{
			Long:     "lines",
			Arity:    1,
			Required: flags.Always,
			Default:  func() (any, bool) { return 10, true },
		})
		state := core.NewState(schema)

		g.Expect(state.Materialize()).To(MatchError(core.ErrMissingRequired))
	})

	t.Run("FirstFailureWins", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		var read []string

		reader := func(name string) func([]string) (any, error) {
			return func([]string) (any, error) {
				read = append(read, name)
				return nil, errors.New(name + " is bad")
			}
		}

		schema := flags.MustSchema("",
			flags.Descriptor{Long: "first", Arity: 1, Read: reader("first")},
			flags.Descriptor{Long: "second", Arity: 1, Read: reader("second")},
		)
		state := core.NewState(schema)
		state.Match([]string{"--second", "x", "--first", "y"}, 0)

		err := state.Materialize()
		g.Expect(err).To(MatchError(ContainSubstring("first is bad")))
		g.Expect(read).To(Equal([]string{"first"}))
	})

	t.Run("InvalidValueBeatsMissing", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		schema := flags.MustSchema("",
			flags.Descriptor{Long: "needed", Required: flags.Always},
			flags.Descriptor{Long: "count", Arity: 1, Read: func(v []string) (any, error) {
				return strconv.Atoi(v[0])
			}},
		)
		state := core.NewState(schema)
		state.Match([]string{"--count", "x"}, 0)

		g.Expect(state.Materialize()).To(MatchError(core.ErrInvalidValue))
	})

	t.Run("SwitchWithoutReaderIsTrue", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		state := core.NewState(verboseCountSchema())
		state.Match([]string{"-v", "-c", "3"}, 0)

		g.Expect(state.Materialize()).To(Succeed())

		verbose, _ := core.ValueOf[bool](state, "verbose")
		g.Expect(verbose).To(BeTrue())

		raw, _ := core.ValueOf[[]string](state, "count")
		g.Expect(raw).To(Equal([]string{"3"}))
	})

	t.Run("ValueOfWrongTypeIsFalse", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		state := core.NewState(verboseCountSchema())
		state.Match([]string{"-v"}, 0)
		g.Expect(state.Materialize()).To(Succeed())

		_, ok := core.ValueOf[string](state, "verbose")
		g.Expect(ok).To(BeFalse())

		_, ok = core.ValueOf[bool](state, "nope")
		g.Expect(ok).To(BeFalse())
	})
}

func TestRequiredPredicates(t *testing.T) {
	t.Parallel()

	schema := func() *flags.Schema {
		return flags.MustSchema("",
			flags.Descriptor{Long: "output", Short: "-o", Arity: 1},
			flags.Descriptor{Long: "format", Arity: 1, Required: flags.RequiredIf("output")},
			flags.Descriptor{Long: "stdout", Required: flags.RequiredUnless("output")},
		)
	}

	cases := []struct {
		name    string
		tokens  []string
		missing string
	}{
		{"NeitherGiven", nil, "stdout"},
		{"OutputNeedsFormat", []string{"-o", "x"}, "format"},
		{"OutputAndFormat", []string{"-o", "x", "--format", "json"}, ""},
		{"FormatAfterOutputSeesFinalPresence", []string{"--format", "json", "-o", "x"}, ""},
		{"StdoutAlone", []string{"--stdout"}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			state := core.NewState(schema())
			g.Expect(state.Match(tc.tokens, 0).Status).To(Equal(core.StatusOK))

			err := state.CheckRequired()
			if tc.missing == "" {
				g.Expect(err).NotTo(HaveOccurred())
				return
			}

			var argErr *core.ArgError
			g.Expect(errors.As(err, &argErr)).To(BeTrue())
			g.Expect(argErr.ID).To(Equal(tc.missing))
			g.Expect(core.ExitCode(err)).To(Equal(core.ExitMissing))
		})
	}
}
