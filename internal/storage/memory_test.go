package storage

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ujhhhhhhh/skibidi-hub-REAL/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackend_ReadAbsent(t *testing.T) {
	backend := NewMemoryBackend(MemoryOptions{}, logger.New())
	defer backend.Close()

	value, err := backend.Read(context.Background(), CollectionPosts)
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestMemoryBackend_WriteRead(t *testing.T) {
	backend := NewMemoryBackend(MemoryOptions{}, logger.New())
	defer backend.Close()
	ctx := context.Background()

	payload := json.RawMessage(`[{"id":"p1"}]`)
	require.NoError(t, backend.Write(ctx, CollectionPosts, payload))

	value, err := backend.Read(ctx, CollectionPosts)
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(value))
}

func TestMemoryBackend_BlobRoundTrip(t *testing.T) {
	backend := NewMemoryBackend(MemoryOptions{}, logger.New())
	defer backend.Close()
	ctx := context.Background()

	data := []byte{0xde, 0xad, 0xbe, 0xef}
	ref, err := backend.StoreBlob(ctx, "abc.png", data, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "abc.png", ref)

	file, err := backend.FetchBlob(ctx, ref)
	require.NoError(t, err)
	require.NotNil(t, file)
	assert.Equal(t, data, file.Data)
	assert.Equal(t, "image/png", file.ContentType)
	assert.Equal(t, int64(4), file.Size)
}

func TestMemoryBackend_FetchBlobUnknown(t *testing.T) {
	backend := NewMemoryBackend(MemoryOptions{}, logger.New())
	defer backend.Close()

	file, err := backend.FetchBlob(context.Background(), "missing.png")
	require.NoError(t, err)
	assert.Nil(t, file)
}

func TestMemoryBackend_SnapshotIsCopy(t *testing.T) {
	backend := NewMemoryBackend(MemoryOptions{}, logger.New())
	defer backend.Close()
	ctx := context.Background()

	require.NoError(t, backend.Write(ctx, CollectionPosts, json.RawMessage(`[]`)))

	snapshot := backend.Snapshot()
	snapshot[CollectionPosts][0] = 'X'

	value, err := backend.Read(ctx, CollectionPosts)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(value))
}

func TestMemoryBackend_ForceBackup(t *testing.T) {
	received := make(chan []byte, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- body
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	backend := NewMemoryBackend(MemoryOptions{
		BackupURL:      server.URL,
		BackupInterval: time.Hour,
	}, logger.New())
	defer backend.Close()
	ctx := context.Background()

	require.NoError(t, backend.Write(ctx, CollectionPosts, json.RawMessage(`[{"id":"p1"}]`)))
	require.NoError(t, backend.ForceBackup(ctx))

	select {
	case body := <-received:
		var payload struct {
			Timestamp string                     `json:"timestamp"`
			Data      map[string]json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.NotEmpty(t, payload.Timestamp)
		assert.JSONEq(t, `[{"id":"p1"}]`, string(payload.Data[CollectionPosts]))
	case <-time.After(time.Second):
		t.Fatal("backup was never delivered")
	}
}

func TestMemoryBackend_ForceBackupFailureSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	backend := NewMemoryBackend(MemoryOptions{
		BackupURL:      server.URL,
		BackupInterval: time.Hour,
	}, logger.New())
	defer backend.Close()

	err := backend.ForceBackup(context.Background())
	assert.Error(t, err)
}
