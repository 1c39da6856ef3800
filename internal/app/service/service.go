package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"etatcivil/internal/app/ds"
	"etatcivil/internal/app/payment"
	"etatcivil/internal/app/reference"
	"etatcivil/internal/app/storage"
)

var (
	ErrRequestNotFound      = errors.New("demande introuvable")
	ErrDocumentTypeNotFound = errors.New("type d'acte introuvable")
	ErrUserNotFound         = errors.New("utilisateur introuvable")
	ErrPriceMismatch        = errors.New("montant transmis différent du montant calculé")
	ErrAddressRequired      = errors.New("adresse obligatoire pour la livraison à domicile")
	ErrPhoneRequired        = errors.New("téléphone obligatoire pour le retrait au guichet")
	ErrNotCompleted         = errors.New("la demande doit être approuvée avant la génération de l'acte")
)

// SubjectFieldError signale un champ du sujet exigé par le type d'acte
// et absent de la demande.
type SubjectFieldError struct {
	Field string
}

func (e *SubjectFieldError) Error() string {
	return fmt.Sprintf("champ obligatoire manquant: %s", e.Field)
}

// GeneratedDocument est le descripteur de provenance d'un acte généré
type GeneratedDocument struct {
	FileName string
	URL      string
	At       time.Time
	By       uint
}

// RequestFilter restreint les listages de demandes
type RequestFilter struct {
	Status    string
	DateFrom  *time.Time
	DateTo    *time.Time
	CreatorID *uint // Limité au créateur pour les citoyens
}

// Store regroupe la persistance nécessaire à l'orchestration.
// Les écritures de transition sont gardées par le statut courant côté
// stockage: si le statut a changé entre-temps l'implémentation retourne
// lifecycle.ErrInvalidTransition, ce qui rend les transitions sûres même
// avec plusieurs instances du service.
type Store interface {
	payment.Store

	CreateRequest(ctx context.Context, req *ds.DocumentRequest, pay *ds.Payment) error
	// RequestByID retourne la demande avec ses associations, nil si absente
	RequestByID(ctx context.Context, id uint) (*ds.DocumentRequest, error)
	Requests(ctx context.Context, filter RequestFilter) ([]ds.DocumentRequest, error)

	StartProcessing(ctx context.Context, id uint, at time.Time, agentID uint) error
	CompleteRequest(ctx context.Context, id uint, at time.Time) error
	RejectRequest(ctx context.Context, id uint, at time.Time, reason string) error
	AttachGeneratedDocument(ctx context.Context, id uint, doc GeneratedDocument) error

	AppendEvent(ctx context.Context, ev *ds.RequestEvent) error
	AddNote(ctx context.Context, note *ds.RequestNote) error
	DocumentTypeByID(ctx context.Context, id uint) (*ds.DocumentType, error)
	UserByID(ctx context.Context, id uint) (*ds.User, error)
}

// keyedMutex sérialise les opérations lecture-modification-écriture
// portant sur une même demande
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[uint]*sync.Mutex)}
}

func (k *keyedMutex) lock(id uint) func() {
	k.mu.Lock()
	m, ok := k.locks[id]
	if !ok {
		m = &sync.Mutex{}
		k.locks[id] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// RequestService orchestre le cycle de vie des demandes d'actes:
// création, instruction, paiement, approbation/rejet, génération du document.
type RequestService struct {
	store     Store
	allocator *reference.Allocator
	gate      *payment.Gate
	storage   storage.ObjectStorage
	locks     *keyedMutex
	now       func() time.Time
}

func NewRequestService(store Store, allocator *reference.Allocator, objects storage.ObjectStorage) *RequestService {
	return &RequestService{
		store:     store,
		allocator: allocator,
		gate:      payment.NewGate(store),
		storage:   objects,
		locks:     newKeyedMutex(),
		now:       time.Now,
	}
}

// Request retourne l'instantané complet d'une demande
func (s *RequestService) Request(ctx context.Context, id uint) (*ds.DocumentRequest, error) {
	req, err := s.store.RequestByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	return req, nil
}

// Requests liste les demandes selon le filtre
func (s *RequestService) Requests(ctx context.Context, filter RequestFilter) ([]ds.DocumentRequest, error) {
	return s.store.Requests(ctx, filter)
}
