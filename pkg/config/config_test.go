package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "database")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "testuser")
	t.Setenv("DB_PASSWORD", "testpass")
	t.Setenv("DB_NAME", "testdb")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("BACKUP_URL", "http://backup.local/store")
	t.Setenv("BACKUP_INTERVAL", "60")
	t.Setenv("MAX_UPLOAD_SIZE", "1048576")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.NotNil(t, cfg)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "database", cfg.StorageBackend)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "testuser", cfg.DBUser)
	assert.Equal(t, "testpass", cfg.DBPassword)
	assert.Equal(t, "testdb", cfg.DBName)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "http://backup.local/store", cfg.BackupURL)
	assert.Equal(t, 60, cfg.BackupInterval)
	assert.Equal(t, int64(1048576), cfg.MaxUploadSize)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("MAX_UPLOAD_SIZE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "memory", cfg.StorageBackend)
	assert.Equal(t, int64(25*1024*1024), cfg.MaxUploadSize)
	assert.Equal(t, 300, cfg.BackupInterval)
}

func TestLoadConfig_BadIntFallsBack(t *testing.T) {
	t.Setenv("BACKUP_INTERVAL", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.Equal(t, 300, cfg.BackupInterval)
}
