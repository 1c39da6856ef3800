package ds

import "time"

// Table des paiements - un enregistrement par demande
type Payment struct {
	ID            uint       `gorm:"primaryKey"`
	RequestID     uint       `gorm:"not null;uniqueIndex"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending'"` // pending, paid, failed
	Amount        float64    `gorm:"type:decimal(12,2);not null"`
	Method        string     `gorm:"type:varchar(30)"`  // mobile_money, card, cash
	PaymentRef    string     `gorm:"type:varchar(64)"`  // Identifiant opaque remis au prestataire de paiement
	TransactionID string     `gorm:"type:varchar(100)"` // Référence externe renvoyée par le prestataire
	PaidAt        *time.Time `gorm:"default:null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
