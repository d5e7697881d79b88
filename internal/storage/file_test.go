package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileBackend(t *testing.T) *FileBackend {
	t.Helper()
	root := t.TempDir()
	backend, err := NewFileBackend(filepath.Join(root, "data"), filepath.Join(root, "uploads"))
	require.NoError(t, err)
	return backend
}

func TestFileBackend_ReadAbsent(t *testing.T) {
	backend := newTestFileBackend(t)

	value, err := backend.Read(context.Background(), CollectionPosts)
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestFileBackend_WriteRead(t *testing.T) {
	backend := newTestFileBackend(t)
	ctx := context.Background()

	payload := json.RawMessage(`{"p1":["alice"]}`)
	require.NoError(t, backend.Write(ctx, CollectionLikes, payload))

	value, err := backend.Read(ctx, CollectionLikes)
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(value))
}

func TestFileBackend_WriteLeavesNoTempFile(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "data")
	backend, err := NewFileBackend(dataDir, filepath.Join(root, "uploads"))
	require.NoError(t, err)

	require.NoError(t, backend.Write(context.Background(), CollectionPosts, json.RawMessage(`[]`)))

	entries, err := os.ReadDir(dataDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "posts.json", entries[0].Name())
}

func TestFileBackend_BlobRoundTrip(t *testing.T) {
	backend := newTestFileBackend(t)
	ctx := context.Background()

	data := []byte("file contents")
	ref, err := backend.StoreBlob(ctx, "doc.pdf", data, "application/pdf")
	require.NoError(t, err)

	file, err := backend.FetchBlob(ctx, ref)
	require.NoError(t, err)
	require.NotNil(t, file)
	assert.Equal(t, data, file.Data)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, int64(len(data)), file.Size)
}

func TestFileBackend_FetchBlobUnknown(t *testing.T) {
	backend := newTestFileBackend(t)

	file, err := backend.FetchBlob(context.Background(), "missing.pdf")
	require.NoError(t, err)
	assert.Nil(t, file)
}

func TestFileBackend_BlobNameIsSanitized(t *testing.T) {
	backend := newTestFileBackend(t)
	ctx := context.Background()

	ref, err := backend.StoreBlob(ctx, "../../etc/passwd", []byte("x"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "passwd", ref)

	file, err := backend.FetchBlob(ctx, ref)
	require.NoError(t, err)
	require.NotNil(t, file)
}
