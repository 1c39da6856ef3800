package reference

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrAllocationFailed = errors.New("échec d'attribution du numéro de référence")

// CounterStore persiste le compteur annuel des références.
// CompareAndSwap doit être atomique côté stockage (update conditionnel ou
// insertion sous contrainte d'unicité): deux créations concurrentes ne peuvent
// jamais obtenir la même séquence.
type CounterStore interface {
	// CurrentSequence retourne la dernière séquence attribuée pour l'année (0 si aucune).
	CurrentSequence(ctx context.Context, year int) (int, error)
	// CompareAndSwap passe le compteur de old à next. Retourne false si un
	// concurrent est passé avant (il faut relire et retenter).
	CompareAndSwap(ctx context.Context, year, old, next int) (bool, error)
}

// Allocator attribue les références REQ-<année>-<séquence>.
// Il est appelé une seule fois par demande, à la création.
type Allocator struct {
	store       CounterStore
	maxAttempts int
	backoff     time.Duration
}

func NewAllocator(store CounterStore) *Allocator {
	return &Allocator{
		store:       store,
		maxAttempts: 5,
		backoff:     20 * time.Millisecond,
	}
}

// Allocate attribue la prochaine référence de l'année par lecture puis
// CompareAndSwap, avec un nombre borné de tentatives en cas de contention.
func (a *Allocator) Allocate(ctx context.Context, year int) (string, error) {
	backoff := a.backoff
	for attempt := 0; attempt < a.maxAttempts; attempt++ {
		current, err := a.store.CurrentSequence(ctx, year)
		if err != nil {
			return "", err
		}

		next := current + 1
		ok, err := a.store.CompareAndSwap(ctx, year, current, next)
		if err != nil {
			return "", err
		}
		if ok {
			return Format(year, next), nil
		}

		// Conflit avec une création concurrente: on attend un peu avant de relire
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return "", ErrAllocationFailed
}

// Format met en forme une référence: séquence sur 3 chiffres minimum,
// complétée à gauche par des zéros (REQ-2025-001, REQ-2025-1234).
func Format(year, seq int) string {
	return fmt.Sprintf("REQ-%d-%03d", year, seq)
}
