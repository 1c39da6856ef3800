package main

import (
	"crypto/sha1"
	"encoding/hex"
	"log"
	"os"

	"etatcivil/internal/app/ds"
	"etatcivil/internal/app/dsn"
	"etatcivil/internal/app/role"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Variables d'environnement depuis le fichier .env
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")

	// Migration de tous les modèles
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
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migration completed successfully")

	seedDocumentTypes(db)
	seedAdmin(db)
}

// seedDocumentTypes alimente le catalogue initial (idempotent)
func seedDocumentTypes(db *gorm.DB) {
	types := []ds.DocumentType{
		{
			Name:           "Extrait de naissance",
			Category:       "naissance",
			Description:    "Copie d'acte de naissance délivrée par le centre d'état civil",
			BasePrice:      5000,
			ProcessingDays: 3,
			RequiredFields: ds.StringList{"childFirstName", "childLastName", "birthDate", "birthPlace"},
			IsActive:       true,
		},
		{
			Name:           "Acte de décès",
			Category:       "deces",
			Description:    "Copie d'acte de décès délivrée par le centre d'état civil",
			BasePrice:      3500,
			ProcessingDays: 3,
			RequiredFields: ds.StringList{"deceasedFirstName", "deceasedLastName", "deathDate", "deathPlace"},
			IsActive:       true,
		},
		{
			Name:           "Acte de mariage",
			Category:       "mariage",
			Description:    "Copie d'acte de mariage délivrée par le centre d'état civil",
			BasePrice:      4000,
			ProcessingDays: 5,
			RequiredFields: ds.StringList{"spouse1FullName", "spouse2FullName", "marriageDate", "marriagePlace"},
			IsActive:       true,
		},
	}

	for _, docType := range types {
		var existing ds.DocumentType
		err := db.Where("name = ?", docType.Name).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&docType).Error; err != nil {
				log.Printf("Failed to seed document type %q: %v", docType.Name, err)
				continue
			}
			log.Printf("Seeded document type %q", docType.Name)
		}
	}
}

// seedAdmin crée le compte administrateur initial (idempotent)
func seedAdmin(db *gorm.DB) {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
	}

	h := sha1.New()
	h.Write([]byte(password))

	admin := ds.User{
		Login:    "admin",
		Password: hex.EncodeToString(h.Sum(nil)),
		FullName: "Administrateur",
		Role:     int(role.Admin),
	}

	var existing ds.User
	err := db.Where("login = ?", admin.Login).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("Failed to seed admin user: %v", err)
		}
		log.Println("Seeded admin user")
	}
}
