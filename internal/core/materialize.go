package core

import (
	"github.com/toejough/argtable/internal/flags"
)

// CheckRequired fails with ErrMissingRequired for the first argument, in
// declaration order, whose predicate holds but which was not present.
// Predicates are evaluated against the final presence of every argument.
func (s *State) CheckRequired() error {
	for i, desc := range s.schema.Descriptors() {
		if s.records[i].Present || !flags.IsRequired(desc.Required, s) {
			continue
		}

		return &ArgError{
			Kind:  ErrMissingRequired,
			ID:    desc.Key(),
			Flag:  desc.LongFlag(),
			Index: -1,
		}
	}

	return nil
}

// Materialize turns the captured tokens into typed values.
//
// Present arguments go through their reader, absent ones through their
// default provider. The first reader failure stops materialization with
// ErrInvalidValue; records initialized before it stay initialized and are
// released by Release. Once every argument is processed the required pass
// runs, so an absent required argument fails even if it had a default.
func (s *State) Materialize() error {
	s.attempted = true

	for i, desc := range s.schema.Descriptors() {
		err := s.materializeOne(i, desc)
		if err != nil {
			return err
		}
	}

	return s.CheckRequired()
}

func (s *State) materializeOne(i int, desc flags.Descriptor) error {
	rec := &s.records[i]

	if !rec.Present {
		if desc.Default == nil {
			return nil
		}

		value, ok := desc.Default()
		if ok {
			rec.Value = value
			rec.Initialized = true
		}

		return nil
	}

	value, err := readValue(desc, rec.Raw)
	if err != nil {
		return &ArgError{
			Kind:  ErrInvalidValue,
			ID:    desc.Key(),
			Flag:  desc.LongFlag(),
			Index: -1,
			Cause: err,
		}
	}

	rec.Value = value
	rec.Initialized = true

	return nil
}

// readValue applies desc's reader. Without one, a switch reads as true and
// anything else as its raw tokens.
func readValue(desc flags.Descriptor, raw []string) (any, error) {
	if desc.Read != nil {
		return desc.Read(raw)
	}

	if desc.Arity == 0 {
		return true, nil
	}

	return raw, nil
}
