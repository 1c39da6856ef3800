package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "etatcivil")

	assert.Equal(t,
		"host=localhost port=5433 user=postgres password=secret dbname=etatcivil sslmode=disable",
		FromEnv())
}

func TestFromEnvDefaultPort(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "etatcivil")

	assert.Contains(t, FromEnv(), "port=5432")
}

func TestFromEnvMissingHost(t *testing.T) {
	t.Setenv("DB_HOST", "")
	assert.Empty(t, FromEnv())
}
