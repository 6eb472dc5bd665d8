package core

// Status is the outcome of matching or of a whole parse.
type Status int

// Status values.
const (
	StatusOK Status = iota
	StatusError
	StatusHelp
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusError:
		return "ERROR"
	case StatusHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// MatchResult is what a scan over the argument tokens produced.
type MatchResult struct {
	Status Status
	Next   int   // index of the first unconsumed token, or of the failing flag
	Err    error // set when Status is StatusError
}
