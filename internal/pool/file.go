package pool

import (
	"context"
	"fmt"
	"os"
)

// File reads card lists from disk, one card name per line. The pool id is
// the path.
type File struct{}

// Fetch reads the file at path. A missing or unreadable file is reported as
// ErrUnavailable.
func (File) Fetch(_ context.Context, path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	cards := splitList(string(raw))
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrUnavailable, path)
	}
	return cards, nil
}
