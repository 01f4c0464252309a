package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndRead(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(Config{BasePath: dir, BaseURL: "/uploads"})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "photo.png", strings.NewReader("image-bytes")))

	data, err := os.ReadFile(filepath.Join(dir, "photo.png"))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	found, err := store.Exists(ctx, "photo.png")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestLocalStorageDeleteIsIdempotent(t *testing.T) {
	store, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "/uploads"})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "photo.png", strings.NewReader("image-bytes")))
	require.NoError(t, store.Delete(ctx, "photo.png"))

	found, err := store.Exists(ctx, "photo.png")
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting again is not an error.
	assert.NoError(t, store.Delete(ctx, "photo.png"))
}

func TestLocalStorageGetURL(t *testing.T) {
	store, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "/uploads"})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/photo.png", store.GetURL("photo.png"))

	bare, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/photo.png", bare.GetURL("photo.png"))
}
