// Package flags provides the descriptor model for argtable.
// A Schema is the single table from which matching, materialization,
// release and help rendering all derive.
package flags

import (
	"errors"
	"fmt"
	"strings"
)

// Exported variables.
var (
	ErrDuplicateID    = errors.New("duplicate argument id")
	ErrDuplicateLong  = errors.New("duplicate long name")
	ErrDuplicateShort = errors.New("duplicate short alias")
	ErrEmptyLong      = errors.New("empty long name")
	ErrInvalidShort   = errors.New("short alias must start with '-'")
	ErrNegativeArity  = errors.New("negative arity")
)

// Descriptor is the static declaration of one accepted argument.
type Descriptor struct {
	ID          string                             // lookup key; defaults to Long
	Long        string                             // without "--"; '_' matches '-'
	Short       string                             // with its dash, e.g. "-c" (empty if none)
	Arity       int                                // value tokens consumed after the flag
	Required    Predicate                          // nil is optional
	Help        string                             // first %s is replaced by DefaultText
	DefaultText string                             // shown in help, optional
	Default     func() (any, bool)                 // false means no default
	Read        func(values []string) (any, error) // error means invalid input
	Release     func(value any)                    // releases resources owned by value
}

// Key returns the identifier used for lookup and diagnostics.
func (d Descriptor) Key() string {
	if d.ID != "" {
		return d.ID
	}

	return d.Long
}

// LongFlag returns the token that names d, e.g. "--dry-run" for "dry_run".
func (d Descriptor) LongFlag() string {
	return "--" + dashed(d.Long)
}

// Matches reports whether token names d, either by long form or short alias.
// Short aliases compare exactly; only the long form is dash-normalized.
func (d Descriptor) Matches(token string) bool {
	if d.Short != "" && token == d.Short {
		return true
	}

	name, ok := strings.CutPrefix(token, "--")
	if !ok || len(name) != len(d.Long) {
		return false
	}

	for i := range len(name) {
		want := d.Long[i]
		if want == '_' {
			want = '-'
		}

		if name[i] != want {
			return false
		}
	}

	return true
}

// Schema is an ordered, validated list of descriptors.
type Schema struct {
	Description string // printed before the argument list in help
	NoHelp      bool   // disables the --help / -h trigger

	descs []Descriptor
	ids   map[string]int
}

// NewSchema validates descs and returns a schema preserving their order.
func NewSchema(description string, descs ...Descriptor) (*Schema, error) {
	s := &Schema{
		Description: description,
		descs:       make([]Descriptor, 0, len(descs)),
		ids:         make(map[string]int, len(descs)),
	}

	longs := map[string]bool{}
	shorts := map[string]bool{}

	for _, d := range descs {
		if d.Long == "" {
			return nil, fmt.Errorf("%w (id %q)", ErrEmptyLong, d.ID)
		}

		if d.Arity < 0 {
			return nil, fmt.Errorf("%w: %s has arity %d", ErrNegativeArity, d.LongFlag(), d.Arity)
		}

		long := dashed(d.Long)
		if longs[long] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLong, d.LongFlag())
		}

		longs[long] = true

		if d.Short != "" {
			if !strings.HasPrefix(d.Short, "-") {
				return nil, fmt.Errorf("%w: %q", ErrInvalidShort, d.Short)
			}

			if shorts[d.Short] {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateShort, d.Short)
			}

			shorts[d.Short] = true
		}

		if _, ok := s.ids[d.Key()]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, d.Key())
		}

		s.ids[d.Key()] = len(s.descs)
		s.descs = append(s.descs, d)
	}

	return s, nil
}

// MustSchema is like NewSchema but panics on an invalid schema.
// It is meant for package-level argument tables.
func MustSchema(description string, descs ...Descriptor) *Schema {
	s, err := NewSchema(description, descs...)
	if err != nil {
		panic(err)
	}

	return s
}

// At returns the descriptor at index i.
func (s *Schema) At(i int) Descriptor {
	return s.descs[i]
}

// Descriptors returns the descriptors in declaration order.
func (s *Schema) Descriptors() []Descriptor {
	return s.descs
}

// Find returns the index of the first descriptor that token names.
func (s *Schema) Find(token string) (int, bool) {
	for i := range s.descs {
		if s.descs[i].Matches(token) {
			return i, true
		}
	}

	return 0, false
}

// HeaderWidth returns the width of the widest help header in the schema.
func (s *Schema) HeaderWidth() int {
	width := 0

	for _, d := range s.descs {
		width = max(width, len(Header(d)))
	}

	return width
}

// Index returns the position of the descriptor with the given id.
func (s *Schema) Index(id string) (int, bool) {
	i, ok := s.ids[id]
	return i, ok
}

// IsHelp reports whether token triggers help for this schema.
func (s *Schema) IsHelp(token string) bool {
	return !s.NoHelp && (token == "--help" || token == "-h")
}

// Len returns the number of descriptors.
func (s *Schema) Len() int {
	return len(s.descs)
}

// Header returns the help header for d: "--long" or "--long, -s".
func Header(d Descriptor) string {
	if d.Short == "" {
		return d.LongFlag()
	}

	return d.LongFlag() + ", " + d.Short
}

// HelpText returns d's help with the first %s replaced by its default text.
func HelpText(d Descriptor) string {
	if d.DefaultText == "" {
		return d.Help
	}

	return strings.Replace(d.Help, "%s", d.DefaultText, 1)
}

func dashed(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}
