package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigTOML = `
ServiceHost = "127.0.0.1"
ServicePort = 9090

[Minio]
Endpoint = "minio:9000"
AccessKey = "file-access"
SecretKey = "file-secret"
UseSSL = false

[Storage]
Mode = "local"
LocalDir = "out"
`

func writeTestConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(testConfigTOML), 0o644))
	t.Chdir(dir)
}

func TestNewConfig(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_PORT", "6379")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("MINIO_BUCKET", "")
	t.Setenv("PAYMENT_CALLBACK_KEY", "")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.ServiceHost)
	assert.Equal(t, 9090, cfg.ServicePort)
	assert.Equal(t, "minio:9000", cfg.Minio.Endpoint)
	assert.Equal(t, "local", cfg.Storage.Mode)
	assert.Equal(t, "out", cfg.Storage.LocalDir)

	// Défauts appliqués en l'absence de variables d'environnement
	assert.Equal(t, "etatcivil-dev", cfg.JWT.Token)
	assert.Equal(t, "actes", cfg.Minio.Bucket)
	assert.Equal(t, "etatcivil-payment-key", cfg.Payment.CallbackKey)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
}

func TestNewConfigEnvOverlay(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("MINIO_ENDPOINT", "minio.internal:9000")
	t.Setenv("MINIO_BUCKET", "actes-prod")
	t.Setenv("PAYMENT_CALLBACK_KEY", "callback-prod")

	cfg, err := NewConfig()
	require.NoError(t, err)

	// L'environnement prime sur le fichier
	assert.Equal(t, "prod-secret", cfg.JWT.Token)
	assert.Equal(t, "minio.internal:9000", cfg.Minio.Endpoint)
	assert.Equal(t, "actes-prod", cfg.Minio.Bucket)
	assert.Equal(t, "callback-prod", cfg.Payment.CallbackKey)
	assert.Equal(t, 6380, cfg.Redis.Port)
}

func TestNewConfigBadRedisPort(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_PORT", "not-a-port")

	_, err := NewConfig()
	assert.Error(t, err)
}
