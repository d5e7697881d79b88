package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ujhhhhhhh/skibidi-hub-REAL/pkg/s3"
)

// BlobBackend keeps collections as JSON objects and uploads as raw objects in
// an S3 (or MinIO) bucket, mirroring the layout the file backend uses on disk.
type BlobBackend struct {
	client *s3.Client
}

func NewBlobBackend(client *s3.Client) *BlobBackend {
	return &BlobBackend{client: client}
}

func (b *BlobBackend) Read(ctx context.Context, collection string) (json.RawMessage, error) {
	obj, err := b.client.GetObject(collectionKey(collection))
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	if obj == nil {
		return nil, nil
	}
	return obj.Data, nil
}

func (b *BlobBackend) Write(ctx context.Context, collection string, value json.RawMessage) error {
	if _, err := b.client.PutObject(collectionKey(collection), value, "application/json"); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}
	return nil
}

func (b *BlobBackend) StoreBlob(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	if _, err := b.client.PutObject(uploadKey(name), data, contentType); err != nil {
		return "", fmt.Errorf("failed to store file %s: %w", name, err)
	}
	return name, nil
}

func (b *BlobBackend) FetchBlob(ctx context.Context, name string) (*StoredFile, error) {
	obj, err := b.client.GetObject(uploadKey(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}
	if obj == nil {
		return nil, nil
	}
	return &StoredFile{
		Data:        obj.Data,
		ContentType: obj.ContentType,
		Size:        int64(len(obj.Data)),
		Timestamp:   time.Now(),
	}, nil
}

func (b *BlobBackend) Name() string {
	return "Blob"
}

func (b *BlobBackend) Close() error {
	return nil
}

func collectionKey(collection string) string {
	return "data/" + collection + ".json"
}

func uploadKey(name string) string {
	return "uploads/" + name
}

var _ Backend = (*BlobBackend)(nil)
