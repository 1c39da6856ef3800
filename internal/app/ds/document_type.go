package ds

// Catalogue des types d'actes - référentiel tarifé (lecture seule pour le coeur métier)
type DocumentType struct {
	ID             uint       `gorm:"primaryKey"`
	Name           string     `gorm:"type:varchar(100);not null"` // ex: "Extrait de naissance"
	Category       string     `gorm:"type:varchar(50);not null"`  // naissance, deces, mariage
	Description    string     `gorm:"type:text"`
	BasePrice      float64    `gorm:"type:decimal(12,2);not null"` // Prix de base en FCFA
	ProcessingDays int        `gorm:"type:int;default:3"`          // Délai de traitement indicatif
	RequiredFields StringList `gorm:"type:jsonb"`                  // Champs obligatoires du sujet
	IsActive       bool       `gorm:"type:boolean;default:true;not null"`
}
