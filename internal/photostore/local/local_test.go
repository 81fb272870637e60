package local

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPhotoStoreSaveReturnsPublicURL(t *testing.T) {
	store, err := NewLocalPhotoStore(t.TempDir(), "http://localhost:8080/")
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "motor_m1/step_2", "image/jpeg", bytes.NewReader([]byte("fake jpeg data")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/photos/motor_m1/step_2/"), url)
	assert.True(t, strings.HasSuffix(url, ".jpg"), url)
}

func TestLocalPhotoStoreSaveAndGet(t *testing.T) {
	store, err := NewLocalPhotoStore(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	ctx := context.Background()
	imageData := []byte("fake png data")

	url, err := store.Save(ctx, "motor_m1/step_1", "image/png", bytes.NewReader(imageData))
	require.NoError(t, err)

	key := strings.TrimPrefix(url, "http://localhost:8080/photos/")
	reader, mimeType, err := store.Get(ctx, key)
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, "image/png", mimeType)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, imageData, data)
}

func TestLocalPhotoStoreDelete(t *testing.T) {
	store, err := NewLocalPhotoStore(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	ctx := context.Background()
	url, err := store.Save(ctx, "motor_m1/step_1", "image/jpeg", bytes.NewReader([]byte("data")))
	require.NoError(t, err)
	key := strings.TrimPrefix(url, "http://localhost:8080/photos/")

	err = store.Delete(ctx, key)
	require.NoError(t, err)

	_, _, err = store.Get(ctx, key)
	assert.Error(t, err)
}

func TestLocalPhotoStoreRejectsTraversal(t *testing.T) {
	store, err := NewLocalPhotoStore(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	_, _, err = store.Get(context.Background(), "../../etc/passwd")
	assert.Error(t, err)
}
