package readers

// NoDefault is a default provider that never supplies a value.
func NoDefault() (any, bool) {
	return nil, false
}

// Value returns a default provider that always supplies v.
func Value[T any](v T) func() (any, bool) {
	return func() (any, bool) {
		return v, true
	}
}
