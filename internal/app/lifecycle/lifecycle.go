package lifecycle

import (
	"errors"
	"strings"
)

// Status représente l'état d'une demande d'acte
type Status string

const (
	StatusPending    Status = "pending"    // Déposée, en attente d'instruction
	StatusProcessing Status = "processing" // En cours d'instruction par un agent
	StatusCompleted  Status = "completed"  // Approuvée, l'acte peut être généré
	StatusRejected   Status = "rejected"   // Rejetée avec motif
)

var (
	ErrUnknownStatus       = errors.New("statut de demande inconnu")
	ErrInvalidTransition   = errors.New("transition de statut non autorisée")
	ErrPaymentNotCompleted = errors.New("le paiement n'est pas confirmé")
	ErrReasonRequired      = errors.New("le motif de rejet est obligatoire")
)

// Graphe des transitions autorisées. completed et rejected sont terminaux.
var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing},
	StatusProcessing: {StatusCompleted, StatusRejected},
	StatusCompleted:  {},
	StatusRejected:   {},
}

func Valid(s Status) bool {
	_, ok := transitions[s]
	return ok
}

func IsTerminal(s Status) bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Validate vérifie une transition et ses gardes métier.
// L'ordre compte: une transition inexistante est toujours ErrInvalidTransition,
// même si la garde de paiement aurait aussi échoué.
func Validate(from, to Status, paymentPaid bool, reason string) error {
	if !Valid(from) || !Valid(to) {
		return ErrUnknownStatus
	}
	if !CanTransition(from, to) {
		return ErrInvalidTransition
	}
	if to == StatusCompleted && !paymentPaid {
		return ErrPaymentNotCompleted
	}
	if to == StatusRejected && strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	return nil
}
