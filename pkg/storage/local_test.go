package storage

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_UploadDeleteRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(t.TempDir(), "/uploads/")
	require.NoError(t, err)

	resp, err := store.Upload(ctx, &UploadRequest{
		Key:         "cars/abc.jpg",
		Reader:      strings.NewReader("jpeg-bytes"),
		ContentType: "image/jpeg",
	})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/cars/abc.jpg", resp.URL)
	assert.Equal(t, int64(len("jpeg-bytes")), resp.Size)

	assert.FileExists(t, filepath.Join(store.BasePath(), "cars", "abc.jpg"))

	key, ok := store.KeyFromURL(resp.URL)
	require.True(t, ok)
	assert.Equal(t, "cars/abc.jpg", key)

	require.NoError(t, store.Delete(ctx, key))
	assert.NoFileExists(t, filepath.Join(store.BasePath(), "cars", "abc.jpg"))

	// deleting twice is not an error
	assert.NoError(t, store.Delete(ctx, key))
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = store.Upload(context.Background(), &UploadRequest{Key: "../evil.jpg", Reader: strings.NewReader("x")})
	assert.Error(t, err)
}

func TestLocalStorage_KeyFromForeignURL(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, ok := store.KeyFromURL("https://images.example.com/cars/a.jpg")
	assert.False(t, ok)
}
