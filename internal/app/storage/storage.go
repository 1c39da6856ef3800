package storage

import (
	"context"
	"errors"
)

// ErrWriteFailed signale que le puits de stockage a refusé l'écriture
// après épuisement des tentatives. L'appelant peut réessayer plus tard.
var ErrWriteFailed = errors.New("écriture du document dans le stockage impossible")

// ObjectStorage est le puits d'écriture des actes générés.
// Implémentations: MinIO en déploiement, système de fichiers local sinon.
type ObjectStorage interface {
	// Upload écrit l'objet en entier; le retour sans erreur garantit que
	// l'écriture est terminée (pas d'état partiel visible).
	Upload(ctx context.Context, filename string, data []byte, contentType string) error
	// FileURL retourne une URL de téléchargement de l'objet.
	FileURL(ctx context.Context, filename string) (string, error)
	Exists(ctx context.Context, filename string) (bool, error)
	Delete(ctx context.Context, filename string) error
}
