package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, DeliverySimulated, cfg.Delivery.Mode)
	assert.Equal(t, 0.9, cfg.Delivery.SuccessRate)
	assert.Equal(t, 5*time.Second, cfg.Delivery.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL())
	assert.Equal(t, 5, cfg.RateLimit.Login.Burst)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: "8080"
storage:
  driver: mongodb
mongodb:
  uri: mongodb://db:27017
delivery:
  successRate: 0.5
jwt:
  secret: from-file
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, StorageMongoDB, cfg.Storage.Driver)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoDB.URI)
	assert.Equal(t, 0.5, cfg.Delivery.SuccessRate)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorContains(t, err, "jwt.secret")

	t.Setenv("JWT_SECRET", "x")
	t.Setenv("STORAGE_DRIVER", "postgres")
	_, err = Load(t.TempDir())
	assert.ErrorContains(t, err, "postgres")

	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("DELIVERY_MODE", "carrier-pigeon")
	_, err = Load(t.TempDir())
	assert.ErrorContains(t, err, "carrier-pigeon")
}
