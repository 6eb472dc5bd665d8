package readers

import (
	"io"
	"os"
)

// Close is a releaser for values that implement io.Closer, such as the
// *os.File produced by File. Other values are ignored.
func Close(value any) {
	if c, ok := value.(io.Closer); ok {
		_ = c.Close()
	}
}

// File opens the first captured value for reading. Pair it with Close as
// the descriptor's releaser.
func File(values []string) (any, error) {
	if len(values) == 0 {
		return nil, ErrNoValue
	}

	f, err := os.Open(values[0])
	if err != nil {
		return nil, err
	}

	return f, nil
}

// CreateFile creates or truncates the first captured value for writing.
// Pair it with Close as the descriptor's releaser.
func CreateFile(values []string) (any, error) {
	if len(values) == 0 {
		return nil, ErrNoValue
	}

	f, err := os.Create(values[0])
	if err != nil {
		return nil, err
	}

	return f, nil
}
