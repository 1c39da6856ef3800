package ds

import "time"

// Table des demandes d'actes - entité centrale du service
type DocumentRequest struct {
	ID uint `gorm:"primaryKey"`
	// Référence visible du guichet: REQ-<année>-<séquence>, attribuée une seule fois
	Reference      string  `gorm:"type:varchar(20);uniqueIndex;not null"`
	Status         string  `gorm:"type:varchar(20);not null;index;index:idx_requests_type_status,priority:2"` // pending, processing, completed, rejected
	DocumentTypeID uint    `gorm:"not null;index:idx_requests_type_status,priority:1"`
	DeliveryMethod string  `gorm:"type:varchar(20);not null"`   // download, pickup, delivery
	Price          float64 `gorm:"type:decimal(12,2);not null"` // Montant calculé à la création, figé ensuite
	SubjectData    JSONMap `gorm:"type:jsonb"`                  // Données imprimées sur l'acte
	Address        string  `gorm:"type:varchar(255)"`           // Obligatoire si livraison
	Phone          string  `gorm:"type:varchar(30)"`            // Obligatoire si retrait au guichet
	CreatorID      uint    `gorm:"not null"`

	// Jalons du cycle de vie (un horodatage par transition effectuée)
	SubmittedAt     time.Time  `gorm:"not null"`
	ProcessedAt     *time.Time `gorm:"default:null"`
	CompletedAt     *time.Time `gorm:"default:null"`
	RejectedAt      *time.Time `gorm:"default:null"`
	RejectionReason string     `gorm:"type:text"`
	ProcessedBy     *uint      `gorm:"default:null"` // Agent en charge du dossier

	// Descripteur du document généré (au plus un par épisode "completed",
	// écrasé à chaque régénération)
	DocumentFileName    string     `gorm:"type:varchar(255)"`
	DocumentURL         string     `gorm:"type:text"`
	DocumentGeneratedAt *time.Time `gorm:"default:null"`
	DocumentGeneratedBy *uint      `gorm:"default:null"`

	DocumentType DocumentType `gorm:"foreignKey:DocumentTypeID"`
	Creator      User         `gorm:"foreignKey:CreatorID"`
	Payment      *Payment     `gorm:"foreignKey:RequestID"`
}
