package core

// Release runs the releaser of every initialized argument, in declaration
// order. It does nothing unless Materialize was called, and nothing on any
// call after the first, so it is safe to defer around parse-and-run even
// when parsing failed early.
func (s *State) Release() {
	if !s.attempted {
		return
	}

	s.attempted = false

	for i, desc := range s.schema.Descriptors() {
		rec := &s.records[i]
		if !rec.Initialized {
			continue
		}

		rec.Initialized = false

		if desc.Release != nil {
			desc.Release(rec.Value)
		}
	}
}
