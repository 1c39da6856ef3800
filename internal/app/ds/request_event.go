package ds

import "time"

// Journal des transitions de statut - une ligne par transition réussie
type RequestEvent struct {
	ID         uint   `gorm:"primaryKey"`
	RequestID  uint   `gorm:"not null;index"`
	FromStatus string `gorm:"type:varchar(20);not null"`
	ToStatus   string `gorm:"type:varchar(20);not null"`
	ActorID    uint   `gorm:"not null"`
	CreatedAt  time.Time
}
