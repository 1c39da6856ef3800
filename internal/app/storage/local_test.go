package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageUpload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "http://localhost:8080/generated")
	require.NoError(t, err)
	ctx := context.Background()

	err = store.Upload(ctx, "acte_req_2025_001.pdf", []byte("%PDF-1.4 test"), "application/pdf")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "acte_req_2025_001.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test", string(data))

	// Pas de fichier temporaire résiduel
	_, err = os.Stat(filepath.Join(dir, "acte_req_2025_001.pdf.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorageUploadOverwrites(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Upload(ctx, "acte.pdf", []byte("first"), "application/pdf"))
	require.NoError(t, store.Upload(ctx, "acte.pdf", []byte("second"), "application/pdf"))

	url, err := store.FileURL(ctx, "acte.pdf")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost/acte.pdf", url)
}

func TestLocalStorageUploadCancelledContext(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = store.Upload(ctx, "acte.pdf", []byte("data"), "application/pdf")
	assert.Error(t, err)
}

func TestLocalStorageExistsAndDelete(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost")
	require.NoError(t, err)
	ctx := context.Background()

	exists, err := store.Exists(ctx, "acte.pdf")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Upload(ctx, "acte.pdf", []byte("data"), "application/pdf"))

	exists, err = store.Exists(ctx, "acte.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.Delete(ctx, "acte.pdf"))

	exists, err = store.Exists(ctx, "acte.pdf")
	require.NoError(t, err)
	assert.False(t, exists)

	// Supprimer un objet absent est sans effet
	assert.NoError(t, store.Delete(ctx, "acte.pdf"))
}
