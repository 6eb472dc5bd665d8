// Package readers provides stock value readers, default providers and
// releasers for flags.Descriptor.
package readers

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Exported variables.
var (
	ErrNoMatches = errors.New("pattern matched no files")
	ErrNoValue   = errors.New("no value given")
)

// Bool reads a single strconv.ParseBool value.
func Bool(values []string) (any, error) {
	return One(strconv.ParseBool)(values)
}

// Duration reads a single time.ParseDuration value, e.g. "1m30s".
func Duration(values []string) (any, error) {
	return One(time.ParseDuration)(values)
}

// Each returns a reader that parses every captured value with parse and
// yields a []T. It suits arguments with arity above one.
func Each[T any](parse func(string) (T, error)) func([]string) (any, error) {
	return func(values []string) (any, error) {
		out := make([]T, 0, len(values))

		for i, v := range values {
			parsed, err := parse(v)
			if err != nil {
				return nil, fmt.Errorf("value %d: %w", i+1, err)
			}

			out = append(out, parsed)
		}

		return out, nil
	}
}

// Float64 reads a single 64-bit float.
func Float64(values []string) (any, error) {
	return One(parseFloat64)(values)
}

// Int reads a single base-10 integer.
func Int(values []string) (any, error) {
	return One(strconv.Atoi)(values)
}

// Ints reads every captured value as a base-10 integer.
func Ints(values []string) (any, error) {
	return Each(strconv.Atoi)(values)
}

// One returns a reader that parses the first captured value with parse.
func One[T any](parse func(string) (T, error)) func([]string) (any, error) {
	return func(values []string) (any, error) {
		if len(values) == 0 {
			return nil, ErrNoValue
		}

		return parse(values[0])
	}
}

// String reads the first captured value unchanged.
func String(values []string) (any, error) {
	if len(values) == 0 {
		return nil, ErrNoValue
	}

	return values[0], nil
}

// Strings reads every captured value unchanged.
func Strings(values []string) (any, error) {
	return append([]string{}, values...), nil
}

// Switch reads an arity-0 argument as true.
func Switch([]string) (any, error) {
	return true, nil
}

func parseFloat64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
