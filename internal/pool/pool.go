// Package pool supplies card lists for drafts: the CubeCobra API, local
// files, and a bundled default cube for when neither is reachable.
package pool

import (
	"context"
	"errors"
	"strings"
)

// ErrUnavailable reports that a card pool could not be fetched. Callers
// decide the fallback, typically the bundled Default pool.
var ErrUnavailable = errors.New("pool: card pool unavailable")

// Source fetches an ordered card list by pool id.
type Source interface {
	Fetch(ctx context.Context, id string) ([]string, error)
}

// FetchOrDefault fetches from src, falling back to the bundled default cube
// when the source is unavailable. Any other error is returned as-is.
func FetchOrDefault(ctx context.Context, src Source, id string) ([]string, error) {
	cards, err := src.Fetch(ctx, id)
	if errors.Is(err, ErrUnavailable) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// splitList parses a one-card-per-line list, dropping blank lines and
// surrounding whitespace.
func splitList(raw string) []string {
	var cards []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			cards = append(cards, line)
		}
	}
	return cards
}
