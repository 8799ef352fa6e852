// Package store persists draft snapshots. The engine serializes; stores only
// move bytes keyed by session id.
package store

import (
	"context"
	"errors"
)

// ErrNotFound reports that no snapshot exists for the session id.
var ErrNotFound = errors.New("store: snapshot not found")

// Store is a durable key-value home for the latest snapshot of each session.
type Store interface {
	Save(ctx context.Context, id string, data []byte) error
	Load(ctx context.Context, id string) ([]byte, error)
}

func key(id string) string {
	return "draft:" + id
}
