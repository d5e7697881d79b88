package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileBackend persists each collection as <dataDir>/<collection>.json and
// blobs under uploadDir with a sibling metadata file. Collection writes go
// through a temp file and rename, so readers never observe a half-written
// file, but there is no cross-process locking.
type FileBackend struct {
	dataDir   string
	uploadDir string
}

type fileMeta struct {
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewFileBackend(dataDir, uploadDir string) (*FileBackend, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FileBackend{dataDir: dataDir, uploadDir: uploadDir}, nil
}

func (b *FileBackend) Read(ctx context.Context, collection string) (json.RawMessage, error) {
	data, err := os.ReadFile(b.collectionPath(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	return data, nil
}

func (b *FileBackend) Write(ctx context.Context, collection string, value json.RawMessage) error {
	path := b.collectionPath(collection)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace collection %s: %w", collection, err)
	}
	return nil
}

func (b *FileBackend) StoreBlob(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	path := filepath.Join(b.uploadDir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to store file %s: %w", name, err)
	}

	meta := fileMeta{
		ContentType: contentType,
		Size:        int64(len(data)),
		Timestamp:   time.Now(),
	}
	metaData, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("failed to marshal file metadata: %w", err)
	}
	if err := os.WriteFile(path+".meta.json", metaData, 0o644); err != nil {
		return "", fmt.Errorf("failed to store file metadata %s: %w", name, err)
	}

	return filepath.Base(name), nil
}

func (b *FileBackend) FetchBlob(ctx context.Context, name string) (*StoredFile, error) {
	path := filepath.Join(b.uploadDir, filepath.Base(name))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}

	file := &StoredFile{
		Data:        data,
		ContentType: "application/octet-stream",
		Size:        int64(len(data)),
	}

	metaData, err := os.ReadFile(path + ".meta.json")
	if err == nil {
		var meta fileMeta
		if err := json.Unmarshal(metaData, &meta); err == nil {
			file.ContentType = meta.ContentType
			file.Timestamp = meta.Timestamp
		}
	}

	return file, nil
}

func (b *FileBackend) Name() string {
	return "File"
}

func (b *FileBackend) Close() error {
	return nil
}

func (b *FileBackend) collectionPath(collection string) string {
	return filepath.Join(b.dataDir, collection+".json")
}
