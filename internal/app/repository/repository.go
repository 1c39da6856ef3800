package repository

import (
	"fmt"

	"etatcivil/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Migration automatique de toutes les tables
	err = db.AutoMigrate(
		&ds.User{},
		&ds.DocumentType{},
		&ds.DocumentRequest{},
		&ds.Payment{},
		&ds.RequestNote{},
		&ds.RequestEvent{},
		&ds.ReferenceCounter{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}
