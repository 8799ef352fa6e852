package store

import (
	"context"
	"errors"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hexhaven/cubedraft/internal"
)

// Fallback composes a primary store with a secondary one. Saves go to both
// so the secondary can answer when the primary misses or is down; a save
// only fails when neither store took the bytes.
type Fallback struct {
	primary   Store
	secondary Store
	log       *zap.SugaredLogger
}

// NewFallback composes primary over secondary.
func NewFallback(primary, secondary Store, logger *zap.SugaredLogger) *Fallback {
	if logger == nil {
		logger = internal.GetLogger()
	}
	return &Fallback{primary: primary, secondary: secondary, log: logger}
}

func (f *Fallback) Save(ctx context.Context, id string, data []byte) error {
	perr := f.primary.Save(ctx, id, data)
	if perr != nil {
		f.log.Warnw("primary snapshot save failed", "draft", id, "error", perr)
	}
	serr := f.secondary.Save(ctx, id, data)
	if serr != nil {
		f.log.Warnw("secondary snapshot save failed", "draft", id, "error", serr)
	}
	if perr != nil && serr != nil {
		return multierr.Append(perr, serr)
	}
	return nil
}

func (f *Fallback) Load(ctx context.Context, id string) ([]byte, error) {
	data, err := f.primary.Load(ctx, id)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, ErrNotFound) {
		f.log.Warnw("primary snapshot load failed, trying fallback", "draft", id, "error", err)
	}
	return f.secondary.Load(ctx, id)
}
