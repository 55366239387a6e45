package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocal(t *testing.T) (*LocalStorage, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewLocalStorage(Config{BasePath: dir})
	require.NoError(t, err)
	return store, dir
}

func TestLocalStorage_Roundtrip(t *testing.T) {
	store, _ := newTestLocal(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "img.png", strings.NewReader("payload"), "image/png"))

	exists, err := store.Exists(ctx, "img.png")
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := store.Get(ctx, "img.png")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	require.NoError(t, store.Delete(ctx, "img.png"))
	exists, err = store.Exists(ctx, "img.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_DeleteMissing(t *testing.T) {
	store, _ := newTestLocal(t)

	assert.NoError(t, store.Delete(context.Background(), "never-existed.jpg"))
}

func TestLocalStorage_StripsPathComponents(t *testing.T) {
	store, dir := newTestLocal(t)
	ctx := context.Background()

	// Path traversal in the name is flattened to the base name.
	require.NoError(t, store.Save(ctx, "../escape.txt", strings.NewReader("x"), "text/plain"))

	_, err := os.Stat(filepath.Join(dir, "escape.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "..", "escape.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_CreatesBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewLocalStorage(Config{BasePath: dir})
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
