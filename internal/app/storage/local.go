package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStorage écrit les actes sur le système de fichiers local.
// Utilisé hors déploiement MinIO (poste de développement, tests).
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &LocalStorage{dir: dir, baseURL: baseURL}, nil
}

func (s *LocalStorage) Upload(ctx context.Context, filename string, data []byte, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	// Écriture via fichier temporaire puis renommage: jamais d'acte partiel visible
	tmp := filepath.Join(s.dir, filename+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := os.Rename(tmp, filepath.Join(s.dir, filename)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

func (s *LocalStorage) FileURL(ctx context.Context, filename string) (string, error) {
	return s.baseURL + "/" + filename, nil
}

func (s *LocalStorage) Exists(ctx context.Context, filename string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.dir, filename))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *LocalStorage) Delete(ctx context.Context, filename string) error {
	err := os.Remove(filepath.Join(s.dir, filename))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
