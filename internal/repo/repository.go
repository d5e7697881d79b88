package repo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/ujhhhhhhh/skibidi-hub-REAL/internal/entity"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/internal/storage"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/pkg/logger"
)

// Repository wraps a storage backend with the typed collection accessors the
// domain operations use. Reads degrade to empty defaults on any backend error
// so a storage outage reads the same as an empty store; writes always surface
// their error. Comment and like maps are keyed by the owning entity's id in
// canonical string form.
type Repository struct {
	backend storage.Backend
	logger  *logger.Logger
}

func New(backend storage.Backend, log *logger.Logger) *Repository {
	return &Repository{backend: backend, logger: log}
}

// StorageType names the active backend for display in the feed.
func (r *Repository) StorageType() string {
	return r.backend.Name()
}

func (r *Repository) LoadPosts(ctx context.Context) []entity.Post {
	posts := loadList[entity.Post](r, ctx, storage.CollectionPosts)
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Timestamp.After(posts[j].Timestamp)
	})
	return posts
}

func (r *Repository) SavePosts(ctx context.Context, posts []entity.Post) error {
	return r.save(ctx, storage.CollectionPosts, posts)
}

func (r *Repository) LoadComments(ctx context.Context) map[string][]entity.Comment {
	comments := make(map[string][]entity.Comment)
	if raw := r.read(ctx, storage.CollectionComments); raw != nil {
		if !r.unmarshalMap(storage.CollectionComments, raw, &comments) {
			comments = make(map[string][]entity.Comment)
		}
	}
	for postID := range comments {
		list := comments[postID]
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Timestamp.After(list[j].Timestamp)
		})
		comments[postID] = list
	}
	return comments
}

func (r *Repository) SaveComments(ctx context.Context, comments map[string][]entity.Comment) error {
	return r.save(ctx, storage.CollectionComments, comments)
}

func (r *Repository) LoadLikes(ctx context.Context) map[string][]string {
	likes := make(map[string][]string)
	if raw := r.read(ctx, storage.CollectionLikes); raw != nil {
		if !r.unmarshalMap(storage.CollectionLikes, raw, &likes) {
			likes = make(map[string][]string)
		}
	}
	return likes
}

func (r *Repository) SaveLikes(ctx context.Context, likes map[string][]string) error {
	return r.save(ctx, storage.CollectionLikes, likes)
}

// LoadHallOfFame resolves curated entries against the post collection,
// ordered by when each post was added to the hall.
func (r *Repository) LoadHallOfFame(ctx context.Context) []entity.Post {
	return r.loadHall(ctx, storage.CollectionHallOfFame)
}

func (r *Repository) LoadHallOfShame(ctx context.Context) []entity.Post {
	return r.loadHall(ctx, storage.CollectionHallOfShame)
}

func (r *Repository) loadHall(ctx context.Context, collection string) []entity.Post {
	entries := loadList[entity.HallEntry](r, ctx, collection)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AddedAt.After(entries[j].AddedAt)
	})

	byID := make(map[string]entity.Post)
	for _, post := range r.LoadPosts(ctx) {
		byID[post.ID] = post
	}

	posts := make([]entity.Post, 0, len(entries))
	for _, entry := range entries {
		if post, ok := byID[entry.PostID]; ok {
			posts = append(posts, post)
		}
	}
	return posts
}

func (r *Repository) LoadVideos(ctx context.Context) []entity.Video {
	videos := loadList[entity.Video](r, ctx, storage.CollectionVideos)
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].Timestamp.After(videos[j].Timestamp)
	})
	return videos
}

func (r *Repository) SaveVideos(ctx context.Context, videos []entity.Video) error {
	return r.save(ctx, storage.CollectionVideos, videos)
}

func (r *Repository) StoreUpload(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	ref, err := r.backend.StoreBlob(ctx, name, data, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to store upload %s: %w", name, err)
	}
	return ref, nil
}

func (r *Repository) FetchUpload(ctx context.Context, name string) (*storage.StoredFile, error) {
	return r.backend.FetchBlob(ctx, name)
}

func (r *Repository) read(ctx context.Context, collection string) json.RawMessage {
	raw, err := r.backend.Read(ctx, collection)
	if err != nil {
		// Read failures degrade to "no data yet" rather than erroring.
		r.logger.Error("Failed to read collection %s, treating as empty: %v", collection, err)
		return nil
	}
	return raw
}

// loadList decodes a slice collection. A value that does not decode cleanly
// is replaced by the empty default so a corrupt element never produces a
// partially-decoded phantom entity.
func loadList[T any](r *Repository, ctx context.Context, collection string) []T {
	raw := r.read(ctx, collection)
	if raw == nil {
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		r.logger.Warn("Collection %s has unexpected shape, treating as empty: %v", collection, err)
		return nil
	}
	return items
}

// unmarshalMap tolerates a backend that stored a sequence where a mapping is
// expected; the caller falls back to an empty map.
func (r *Repository) unmarshalMap(collection string, raw json.RawMessage, out interface{}) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		r.logger.Warn("Collection %s holds a list where a map is expected, substituting empty map", collection)
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		r.logger.Warn("Collection %s has unexpected shape, substituting empty map: %v", collection, err)
		return false
	}
	return true
}

func (r *Repository) save(ctx context.Context, collection string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", collection, err)
	}
	if err := r.backend.Write(ctx, collection, raw); err != nil {
		return fmt.Errorf("failed to persist collection %s: %w", collection, err)
	}
	return nil
}
