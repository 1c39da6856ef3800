package payment

import (
	"context"
	"errors"
	"time"

	"etatcivil/internal/app/ds"

	"github.com/google/uuid"
)

// Statuts de paiement
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusFailed  = "failed"
)

// Issues possibles renvoyées par le prestataire de paiement
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
)

var (
	ErrAlreadyPaid    = errors.New("le paiement est déjà confirmé")
	ErrConflict       = errors.New("confirmation en conflit avec un paiement déjà soldé")
	ErrUnknownOutcome = errors.New("issue de paiement inconnue")
	ErrNotFound       = errors.New("aucun paiement pour cette demande")
)

// Store persiste les paiements (un enregistrement par demande)
type Store interface {
	// PaymentByRequestID retourne le paiement de la demande, nil s'il n'existe pas.
	PaymentByRequestID(ctx context.Context, requestID uint) (*ds.Payment, error)
	SavePayment(ctx context.Context, p *ds.Payment) error
}

// Gate garde l'état de paiement d'une demande, indépendamment du cycle de vie.
// Le cycle de vie se contente de lire le statut comme garde d'approbation;
// le Gate ne modifie jamais le statut de la demande.
type Gate struct {
	store Store
	now   func() time.Time
}

func NewGate(store Store) *Gate {
	return &Gate{store: store, now: time.Now}
}

// Initialize prépare le paiement: montant dû repris du prix de la demande et
// identifiant opaque remis au prestataire. Ré-initialiser un paiement échoué
// le remet en attente; un paiement déjà confirmé est refusé.
func (g *Gate) Initialize(ctx context.Context, req *ds.DocumentRequest, method string) (*ds.Payment, error) {
	p, err := g.store.PaymentByRequestID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	if p.Status == StatusPaid {
		return nil, ErrAlreadyPaid
	}

	if p.PaymentRef == "" {
		p.PaymentRef = uuid.New().String()
	}
	p.Amount = req.Price
	p.Status = StatusPending
	if method != "" {
		p.Method = method
	}

	if err := g.store.SavePayment(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Confirm enregistre l'issue communiquée par le prestataire.
// Idempotent: reconfirmer la même issue est sans effet; confirmer une issue
// différente sur un paiement déjà soldé est refusé (ErrConflict).
func (g *Gate) Confirm(ctx context.Context, req *ds.DocumentRequest, transactionID, outcome string) (*ds.Payment, error) {
	var target string
	switch outcome {
	case OutcomeSucceeded:
		target = StatusPaid
	case OutcomeFailed:
		target = StatusFailed
	default:
		return nil, ErrUnknownOutcome
	}

	p, err := g.store.PaymentByRequestID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	if p.Status == target {
		// Rejeu de la même confirmation: rien à faire
		return p, nil
	}
	if p.Status != StatusPending {
		return nil, ErrConflict
	}

	p.Status = target
	p.TransactionID = transactionID
	if target == StatusPaid {
		now := g.now()
		p.PaidAt = &now
	}

	if err := g.store.SavePayment(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
