package storage

import (
	"context"
	"encoding/json"
	"time"
)

// Collection names. Every backend stores the same logical collections; the
// JSON shape per collection is fixed so stores stay interchangeable.
const (
	CollectionPosts       = "posts"
	CollectionComments    = "comments"
	CollectionLikes       = "likes"
	CollectionHallOfFame  = "hall_of_fame"
	CollectionHallOfShame = "hall_of_shame"
	CollectionVideos      = "videos"
)

// Collections lists every known collection, in backup/migration order.
var Collections = []string{
	CollectionPosts,
	CollectionComments,
	CollectionLikes,
	CollectionHallOfFame,
	CollectionHallOfShame,
	CollectionVideos,
}

// StoredFile is an uploaded binary payload with its declared metadata.
type StoredFile struct {
	Data        []byte    `json:"-"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Timestamp   time.Time `json:"timestamp"`
}

// Backend is the pluggable persistence contract. Collections are read and
// written as whole values; the caller owns read-modify-write sequencing.
//
// Read returns nil for an absent collection, never an error for it: absence is
// normal state. Write replaces the entire collection value; on error the
// caller must assume the write did not happen. StoreBlob persists a binary
// payload under the given name and returns the name as the reference usable
// with FetchBlob. FetchBlob returns (nil, nil) for an unknown reference.
type Backend interface {
	Read(ctx context.Context, collection string) (json.RawMessage, error)
	Write(ctx context.Context, collection string, value json.RawMessage) error
	StoreBlob(ctx context.Context, name string, data []byte, contentType string) (string, error)
	FetchBlob(ctx context.Context, name string) (*StoredFile, error)

	// Name identifies the backend for the feed's storage_type field.
	Name() string

	Close() error
}
