package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ujhhhhhhh/skibidi-hub-REAL/pkg/logger"
)

// BackupSender pushes full-store snapshots to an external endpoint. Delivery
// is fire and forget: a failed send is logged by the caller and never retried.
type BackupSender struct {
	url    string
	client *http.Client
	logger *logger.Logger
}

// backupPayload is the envelope the backup server expects.
type backupPayload struct {
	Timestamp string                     `json:"timestamp"`
	Data      map[string]json.RawMessage `json:"data"`
}

func NewBackupSender(url string, log *logger.Logger) *BackupSender {
	return &BackupSender{
		url: url,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: log,
	}
}

func (s *BackupSender) Send(ctx context.Context, snapshot map[string]json.RawMessage) error {
	payload := backupPayload{
		Timestamp: time.Now().Format(time.RFC3339),
		Data:      snapshot,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal backup payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build backup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send backup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backup endpoint returned status %d", resp.StatusCode)
	}

	s.logger.Info("Backup sent successfully")
	return nil
}
