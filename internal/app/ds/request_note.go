package ds

import "time"

// Notes internes sur une demande (liste ordonnée, jamais modifiée après coup)
type RequestNote struct {
	ID        uint   `gorm:"primaryKey"`
	RequestID uint   `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	AuthorID  uint   `gorm:"not null"`
	CreatedAt time.Time

	Author User `gorm:"foreignKey:AuthorID"`
}
