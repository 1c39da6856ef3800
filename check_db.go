package main

import (
	"fmt"
	"log"

	"etatcivil/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := "host=localhost user=postgres password=password dbname=etatcivil port=5432 sslmode=disable"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var types []ds.DocumentType
	err = db.Find(&types).Error
	if err != nil {
		log.Fatal("Failed to get document types:", err)
	}

	fmt.Println("Document types in database:")
	for _, docType := range types {
		fmt.Printf("ID: %d, Name: %s, Category: %s, BasePrice: %.0f, Active: %t\n",
			docType.ID, docType.Name, docType.Category, docType.BasePrice, docType.IsActive)
	}

	var requests []ds.DocumentRequest
	err = db.Preload("DocumentType").Find(&requests).Error
	if err != nil {
		log.Fatal("Failed to get requests:", err)
	}

	fmt.Println("Requests in database:")
	for _, req := range requests {
		fmt.Printf("ID: %d, Reference: %s, Status: %s, Type: %s, Price: %.0f\n",
			req.ID, req.Reference, req.Status, req.DocumentType.Name, req.Price)
	}
}
