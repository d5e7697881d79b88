package repo

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ujhhhhhhh/skibidi-hub-REAL/internal/entity"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/internal/storage"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenBackend fails every operation, standing in for a storage outage.
type brokenBackend struct{}

func (brokenBackend) Read(ctx context.Context, collection string) (json.RawMessage, error) {
	return nil, errors.New("backend down")
}

func (brokenBackend) Write(ctx context.Context, collection string, value json.RawMessage) error {
	return errors.New("backend down")
}

func (brokenBackend) StoreBlob(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	return "", errors.New("backend down")
}

func (brokenBackend) FetchBlob(ctx context.Context, name string) (*storage.StoredFile, error) {
	return nil, errors.New("backend down")
}

func (brokenBackend) Name() string { return "Broken" }
func (brokenBackend) Close() error { return nil }

func newTestRepo(t *testing.T) (*Repository, *storage.MemoryBackend) {
	t.Helper()
	backend := storage.NewMemoryBackend(storage.MemoryOptions{}, logger.New())
	t.Cleanup(func() { backend.Close() })
	return New(backend, logger.New()), backend
}

func TestRepository_PostsSortedNewestFirst(t *testing.T) {
	repository, _ := newTestRepo(t)
	ctx := context.Background()

	now := time.Now()
	posts := []entity.Post{
		{ID: "old", Timestamp: now.Add(-time.Hour)},
		{ID: "new", Timestamp: now},
		{ID: "middle", Timestamp: now.Add(-time.Minute)},
	}
	require.NoError(t, repository.SavePosts(ctx, posts))

	loaded := repository.LoadPosts(ctx)
	require.Len(t, loaded, 3)
	assert.Equal(t, "new", loaded[0].ID)
	assert.Equal(t, "middle", loaded[1].ID)
	assert.Equal(t, "old", loaded[2].ID)
}

func TestRepository_CommentsListNormalizedToEmptyMap(t *testing.T) {
	repository, backend := newTestRepo(t)
	ctx := context.Background()

	// A backend that stored a sequence where the comment map belongs.
	require.NoError(t, backend.Write(ctx, storage.CollectionComments, json.RawMessage(`[]`)))

	comments := repository.LoadComments(ctx)
	require.NotNil(t, comments)
	assert.Empty(t, comments)
}

func TestRepository_LikesListNormalizedToEmptyMap(t *testing.T) {
	repository, backend := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, backend.Write(ctx, storage.CollectionLikes, json.RawMessage(`["alice"]`)))

	likes := repository.LoadLikes(ctx)
	require.NotNil(t, likes)
	assert.Empty(t, likes)
}

func TestRepository_CommentsSortedPerPost(t *testing.T) {
	repository, _ := newTestRepo(t)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, repository.SaveComments(ctx, map[string][]entity.Comment{
		"p1": {
			{ID: "c-old", Timestamp: now.Add(-time.Hour)},
			{ID: "c-new", Timestamp: now},
		},
	}))

	comments := repository.LoadComments(ctx)
	require.Len(t, comments["p1"], 2)
	assert.Equal(t, "c-new", comments["p1"][0].ID)
}

func TestRepository_MalformedListDegradesToEmpty(t *testing.T) {
	repository, backend := newTestRepo(t)
	ctx := context.Background()

	// One good element followed by a non-object: the whole collection must
	// read as empty, not as the good element plus a zero-value phantom.
	raw := json.RawMessage(`[{"id":"a","username":"bob"},42]`)
	require.NoError(t, backend.Write(ctx, storage.CollectionPosts, raw))
	require.NoError(t, backend.Write(ctx, storage.CollectionVideos, raw))

	assert.Empty(t, repository.LoadPosts(ctx))
	assert.Empty(t, repository.LoadVideos(ctx))
}

func TestRepository_ReadFailureDegradesToEmpty(t *testing.T) {
	repository := New(brokenBackend{}, logger.New())
	ctx := context.Background()

	assert.Empty(t, repository.LoadPosts(ctx))
	assert.Empty(t, repository.LoadComments(ctx))
	assert.Empty(t, repository.LoadLikes(ctx))
	assert.Empty(t, repository.LoadVideos(ctx))
}

func TestRepository_WriteFailureSurfaces(t *testing.T) {
	repository := New(brokenBackend{}, logger.New())

	err := repository.SavePosts(context.Background(), []entity.Post{{ID: "p1"}})
	assert.Error(t, err)
}

func TestRepository_HallResolvesPosts(t *testing.T) {
	repository, _ := newTestRepo(t)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, repository.SavePosts(ctx, []entity.Post{
		{ID: "famous", Username: "bob", Timestamp: now},
		{ID: "ordinary", Username: "alice", Timestamp: now},
	}))

	entries := []entity.HallEntry{
		{PostID: "famous", AddedAt: now},
		{PostID: "gone", AddedAt: now.Add(-time.Hour)},
	}
	data, err := json.Marshal(entries)
	require.NoError(t, err)

	// Hall entries are populated out of band, so write them directly.
	require.NoError(t, repository.backend.Write(ctx, storage.CollectionHallOfFame, data))

	posts := repository.LoadHallOfFame(ctx)
	require.Len(t, posts, 1)
	assert.Equal(t, "famous", posts[0].ID)
	assert.Equal(t, "bob", posts[0].Username)
}
