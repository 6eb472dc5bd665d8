package flags

// Presence reports which arguments were found on the command line.
// Predicates see it only after matching has finished.
type Presence interface {
	Present(id string) bool
}

// Predicate decides whether an argument is required.
type Predicate func(p Presence) bool

// Always makes an argument required.
func Always(Presence) bool { return true }

// Never makes an argument optional. It is equivalent to a nil Predicate.
func Never(Presence) bool { return false }

// AllOf is required when every predicate is.
func AllOf(preds ...Predicate) Predicate {
	return func(p Presence) bool {
		for _, pred := range preds {
			if !IsRequired(pred, p) {
				return false
			}
		}

		return true
	}
}

// AnyOf is required when at least one predicate is.
func AnyOf(preds ...Predicate) Predicate {
	return func(p Presence) bool {
		for _, pred := range preds {
			if IsRequired(pred, p) {
				return true
			}
		}

		return false
	}
}

// IsRequired evaluates pred, treating nil as optional.
func IsRequired(pred Predicate, p Presence) bool {
	return pred != nil && pred(p)
}

// RequiredIf is required when the argument with the given id is present.
func RequiredIf(id string) Predicate {
	return func(p Presence) bool { return p.Present(id) }
}

// RequiredUnless is required unless the argument with the given id is present.
func RequiredUnless(id string) Predicate {
	return func(p Presence) bool { return !p.Present(id) }
}
