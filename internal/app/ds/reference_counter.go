package ds

// Compteur annuel des références de demandes.
// La séquence repart à 1 au changement d'année civile.
type ReferenceCounter struct {
	Year    int `gorm:"primaryKey"`
	LastSeq int `gorm:"not null;default:0"`
}
