package pool_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexhaven/cubedraft/internal/pool"
)

func TestCubeCobraFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cube/api/cubelist/mycube", r.URL.Path)
		w.Write([]byte("Lightning Bolt\nCounterspell\n\nLlanowar Elves\n"))
	}))
	defer srv.Close()

	cards, err := pool.NewCubeCobra(srv.URL).Fetch(context.Background(), "mycube")
	require.NoError(t, err)
	assert.Equal(t, []string{"Lightning Bolt", "Counterspell", "Llanowar Elves"}, cards)
}

func TestCubeCobraUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such cube", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := pool.NewCubeCobra(srv.URL).Fetch(context.Background(), "missing")
	assert.ErrorIs(t, err, pool.ErrUnavailable)

	// A dead endpoint reports the same condition.
	srv.Close()
	_, err = pool.NewCubeCobra(srv.URL).Fetch(context.Background(), "missing")
	assert.ErrorIs(t, err, pool.ErrUnavailable)
}

func TestFetchOrDefaultFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cards, err := pool.FetchOrDefault(context.Background(), pool.NewCubeCobra(srv.URL), "anything")
	require.NoError(t, err)
	assert.Equal(t, pool.Default(), cards)
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cube.txt")
	require.NoError(t, os.WriteFile(path, []byte("Card One\nCard Two\n"), 0o644))

	cards, err := pool.File{}.Fetch(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Card One", "Card Two"}, cards)

	_, err = pool.File{}.Fetch(context.Background(), filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, pool.ErrUnavailable)
}

func TestDefaultCube(t *testing.T) {
	cards := pool.Default()
	assert.Greater(t, len(cards), 100, "default cube should support a full table")
	assert.Contains(t, cards, "Lore Seeker", "default cube carries the booster-adding card")
}
