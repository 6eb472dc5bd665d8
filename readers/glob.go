package readers

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob expands every captured value as a pattern supporting ** and {a,b}
// and yields the sorted, de-duplicated list of matching files. A pattern
// that matches nothing is an error.
func Glob(values []string) (any, error) {
	if len(values) == 0 {
		return nil, ErrNoValue
	}

	seen := make(map[string]bool)

	var matches []string

	for _, pattern := range values {
		pattern = filepath.Clean(pattern)

		list, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching pattern %q: %w", pattern, err)
		}

		if len(list) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoMatches, pattern)
		}

		for _, path := range list {
			if !seen[path] {
				seen[path] = true
				matches = append(matches, path)
			}
		}
	}

	sort.Strings(matches)

	return matches, nil
}
