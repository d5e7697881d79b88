package storage

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ujhhhhhhh/skibidi-hub-REAL/pkg/logger"
)

// MemoryBackend keeps every collection and blob in process memory. Data lives
// only as long as the process unless a backup URL is configured, in which
// case the backup sidecar periodically pushes a full snapshot out.
type MemoryBackend struct {
	mu    sync.RWMutex
	data  map[string]json.RawMessage
	blobs map[string]*StoredFile

	sender *BackupSender
	cancel context.CancelFunc
	done   chan struct{}

	logger *logger.Logger
}

// MemoryOptions configures the optional backup sidecar.
type MemoryOptions struct {
	BackupURL      string
	BackupInterval time.Duration
}

func NewMemoryBackend(opts MemoryOptions, log *logger.Logger) *MemoryBackend {
	b := &MemoryBackend{
		data:   make(map[string]json.RawMessage),
		blobs:  make(map[string]*StoredFile),
		logger: log,
	}

	if opts.BackupURL != "" {
		interval := opts.BackupInterval
		if interval <= 0 {
			interval = 5 * time.Minute
		}
		b.sender = NewBackupSender(opts.BackupURL, log)

		ctx, cancel := context.WithCancel(context.Background())
		b.cancel = cancel
		b.done = make(chan struct{})
		go b.backupLoop(ctx, interval)
		log.Info("Started backup sidecar, sending to %s every %s", opts.BackupURL, interval)
	} else {
		log.Warn("No BACKUP_URL configured, backups disabled")
	}

	return b
}

func (b *MemoryBackend) Read(ctx context.Context, collection string) (json.RawMessage, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	value, ok := b.data[collection]
	if !ok {
		return nil, nil
	}
	return value, nil
}

func (b *MemoryBackend) Write(ctx context.Context, collection string, value json.RawMessage) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Copy so later caller mutations cannot alias the stored value.
	stored := make(json.RawMessage, len(value))
	copy(stored, value)
	b.data[collection] = stored
	return nil
}

func (b *MemoryBackend) StoreBlob(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	b.blobs[name] = &StoredFile{
		Data:        stored,
		ContentType: contentType,
		Size:        int64(len(stored)),
		Timestamp:   time.Now(),
	}
	return name, nil
}

func (b *MemoryBackend) FetchBlob(ctx context.Context, name string) (*StoredFile, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	file, ok := b.blobs[name]
	if !ok {
		return nil, nil
	}
	return file, nil
}

func (b *MemoryBackend) Name() string {
	return "Virtual Memory"
}

// Snapshot copies every collection for the backup payload.
func (b *MemoryBackend) Snapshot() map[string]json.RawMessage {
	b.mu.RLock()
	defer b.mu.RUnlock()

	snapshot := make(map[string]json.RawMessage, len(b.data))
	for key, value := range b.data {
		copied := make(json.RawMessage, len(value))
		copy(copied, value)
		snapshot[key] = copied
	}
	return snapshot
}

// ForceBackup sends a snapshot immediately, outside the timer schedule.
func (b *MemoryBackend) ForceBackup(ctx context.Context) error {
	if b.sender == nil {
		b.logger.Warn("No backup URL configured")
		return nil
	}
	return b.sender.Send(ctx, b.Snapshot())
}

func (b *MemoryBackend) backupLoop(ctx context.Context, interval time.Duration) {
	defer close(b.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Best effort: failures are logged and the next tick proceeds
			// regardless, with no mid-interval retry.
			if err := b.sender.Send(ctx, b.Snapshot()); err != nil {
				b.logger.Error("Backup failed: %v", err)
			}
		}
	}
}

func (b *MemoryBackend) Close() error {
	if b.cancel != nil {
		b.cancel()
		<-b.done
	}
	return nil
}
