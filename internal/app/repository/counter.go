package repository

import (
	"context"
	"errors"

	"etatcivil/internal/app/ds"

	"gorm.io/gorm"
)

// Compteur annuel des références (implémentation de reference.CounterStore).
// Le CompareAndSwap repose sur un UPDATE conditionnel (ou une insertion sous
// clé primaire pour la première séquence de l'année): la base garantit
// qu'un seul concurrent gagne.

func (r *Repository) CurrentSequence(ctx context.Context, year int) (int, error) {
	var counter ds.ReferenceCounter
	err := r.db.WithContext(ctx).First(&counter, "year = ?", year).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return counter.LastSeq, nil
}

func (r *Repository) CompareAndSwap(ctx context.Context, year, old, next int) (bool, error) {
	if old == 0 {
		// Première référence de l'année: insertion sous clé primaire.
		// Un échec signifie qu'un concurrent a créé la ligne: on retente.
		err := r.db.WithContext(ctx).Create(&ds.ReferenceCounter{Year: year, LastSeq: next}).Error
		if err == nil {
			return true, nil
		}
		return false, nil
	}

	result := r.db.WithContext(ctx).Exec(
		`UPDATE reference_counters SET last_seq = ? WHERE year = ? AND last_seq = ?`,
		next, year, old)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
