package core

import (
	"github.com/toejough/argtable/internal/flags"
)

// Record is the per-argument parse state.
type Record struct {
	Present     bool     // the argument's flag was found
	Raw         []string // captured value tokens, len == Arity when Present
	Initialized bool     // Value came from the reader or the default provider
	Value       any
}

// State holds the records of a single parse against one schema.
// A State is not safe for concurrent use; each parse owns its own.
type State struct {
	schema    *flags.Schema
	records   []Record
	attempted bool
}

// NewState returns a zeroed state for schema.
func NewState(schema *flags.Schema) *State {
	return &State{
		schema:  schema,
		records: make([]Record, schema.Len()),
	}
}

// Present reports whether the argument with the given id was matched.
func (s *State) Present(id string) bool {
	rec, ok := s.Record(id)
	return ok && rec.Present
}

// Record returns a copy of the record for id.
func (s *State) Record(id string) (Record, bool) {
	i, ok := s.schema.Index(id)
	if !ok {
		return Record{}, false
	}

	return s.records[i], true
}

// Reset zeroes every record so the state can be reused for another parse.
// Call Release first if the previous parse materialized values.
func (s *State) Reset() {
	clear(s.records)
	s.attempted = false
}

// Schema returns the schema this state parses against.
func (s *State) Schema() *flags.Schema {
	return s.schema
}

// Value returns the materialized value for id. The second result is false
// when the id is unknown or the record was never initialized.
func (s *State) Value(id string) (any, bool) {
	rec, ok := s.Record(id)
	if !ok || !rec.Initialized {
		return nil, false
	}

	return rec.Value, true
}

// ValueOf returns the materialized value for id converted to T.
func ValueOf[T any](s *State, id string) (T, bool) {
	var zero T

	v, ok := s.Value(id)
	if !ok {
		return zero, false
	}

	typed, ok := v.(T)
	if !ok {
		return zero, false
	}

	return typed, true
}
