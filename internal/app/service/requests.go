package service

import (
	"context"
	"strings"

	"etatcivil/internal/app/ds"
	"etatcivil/internal/app/lifecycle"
	"etatcivil/internal/app/payment"
	"etatcivil/internal/app/pricing"

	"github.com/sirupsen/logrus"
)

// CreateRequestInput porte la commande de dépôt d'une demande
type CreateRequestInput struct {
	DocumentTypeID uint
	DeliveryMethod string
	SubjectData    map[string]string
	Address        string
	Phone          string
	// ExpectedTotal est le montant affiché au demandeur. Le prix fait foi
	// côté serveur: un écart est refusé, jamais accepté tel quel.
	ExpectedTotal *float64
	CreatorID     uint
}

// CreateRequest dépose une demande: validation, prix calculé côté serveur,
// référence attribuée une seule fois, statut initial pending et paiement
// en attente créés ensemble.
func (s *RequestService) CreateRequest(ctx context.Context, input CreateRequestInput) (*ds.DocumentRequest, error) {
	if !pricing.ValidMethod(input.DeliveryMethod) {
		return nil, pricing.ErrInvalidDeliveryMethod
	}

	docType, err := s.store.DocumentTypeByID(ctx, input.DocumentTypeID)
	if err != nil {
		return nil, err
	}
	if docType == nil {
		return nil, ErrDocumentTypeNotFound
	}

	price, err := pricing.Resolve(docType, input.DeliveryMethod)
	if err != nil {
		return nil, err
	}

	for _, field := range docType.RequiredFields {
		if strings.TrimSpace(input.SubjectData[field]) == "" {
			return nil, &SubjectFieldError{Field: field}
		}
	}

	switch input.DeliveryMethod {
	case pricing.DeliveryDelivery:
		if strings.TrimSpace(input.Address) == "" {
			return nil, ErrAddressRequired
		}
	case pricing.DeliveryPickup:
		if strings.TrimSpace(input.Phone) == "" {
			return nil, ErrPhoneRequired
		}
	}

	if input.ExpectedTotal != nil && *input.ExpectedTotal != price {
		return nil, ErrPriceMismatch
	}

	now := s.now()
	ref, err := s.allocator.Allocate(ctx, now.Year())
	if err != nil {
		return nil, err
	}

	req := &ds.DocumentRequest{
		Reference:      ref,
		Status:         string(lifecycle.StatusPending),
		DocumentTypeID: docType.ID,
		DeliveryMethod: input.DeliveryMethod,
		Price:          price,
		SubjectData:    ds.JSONMap(input.SubjectData),
		Address:        input.Address,
		Phone:          input.Phone,
		CreatorID:      input.CreatorID,
		SubmittedAt:    now,
	}
	pay := &ds.Payment{
		Status: payment.StatusPending,
		Amount: price,
	}

	if err := s.store.CreateRequest(ctx, req, pay); err != nil {
		return nil, err
	}
	return s.Request(ctx, req.ID)
}

// StartReview passe la demande en instruction (pending -> processing)
func (s *RequestService) StartReview(ctx context.Context, id, agentID uint) (*ds.DocumentRequest, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	req, err := s.Request(ctx, id)
	if err != nil {
		return nil, err
	}

	from := lifecycle.Status(req.Status)
	if err := lifecycle.Validate(from, lifecycle.StatusProcessing, false, ""); err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.store.StartProcessing(ctx, id, now, agentID); err != nil {
		return nil, err
	}
	s.appendEvent(ctx, id, from, lifecycle.StatusProcessing, agentID)

	return s.Request(ctx, id)
}

// Approve termine l'instruction (processing -> completed).
// Garde: le paiement doit être confirmé.
func (s *RequestService) Approve(ctx context.Context, id, agentID uint) (*ds.DocumentRequest, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	req, err := s.Request(ctx, id)
	if err != nil {
		return nil, err
	}

	pay, err := s.store.PaymentByRequestID(ctx, id)
	if err != nil {
		return nil, err
	}
	paid := pay != nil && pay.Status == payment.StatusPaid

	from := lifecycle.Status(req.Status)
	if err := lifecycle.Validate(from, lifecycle.StatusCompleted, paid, ""); err != nil {
		return nil, err
	}

	if err := s.store.CompleteRequest(ctx, id, s.now()); err != nil {
		return nil, err
	}
	s.appendEvent(ctx, id, from, lifecycle.StatusCompleted, agentID)

	return s.Request(ctx, id)
}

// Reject rejette la demande avec motif obligatoire (processing -> rejected)
func (s *RequestService) Reject(ctx context.Context, id, agentID uint, reason string) (*ds.DocumentRequest, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	req, err := s.Request(ctx, id)
	if err != nil {
		return nil, err
	}

	from := lifecycle.Status(req.Status)
	if err := lifecycle.Validate(from, lifecycle.StatusRejected, false, reason); err != nil {
		return nil, err
	}

	if err := s.store.RejectRequest(ctx, id, s.now(), strings.TrimSpace(reason)); err != nil {
		return nil, err
	}
	s.appendEvent(ctx, id, from, lifecycle.StatusRejected, agentID)

	return s.Request(ctx, id)
}

// InitializePayment prépare le paiement de la demande et retourne
// l'identifiant opaque destiné au prestataire
func (s *RequestService) InitializePayment(ctx context.Context, id uint, method string) (*ds.Payment, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	req, err := s.Request(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.gate.Initialize(ctx, req, method)
}

// ConfirmPayment enregistre l'issue communiquée par le prestataire
func (s *RequestService) ConfirmPayment(ctx context.Context, id uint, transactionID, outcome string) (*ds.Payment, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	req, err := s.Request(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.gate.Confirm(ctx, req, transactionID, outcome)
}

// AddNote ajoute une note interne à la demande
func (s *RequestService) AddNote(ctx context.Context, id, authorID uint, content string) (*ds.RequestNote, error) {
	if _, err := s.Request(ctx, id); err != nil {
		return nil, err
	}

	note := &ds.RequestNote{
		RequestID: id,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: s.now(),
	}
	if err := s.store.AddNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *RequestService) appendEvent(ctx context.Context, id uint, from, to lifecycle.Status, actorID uint) {
	err := s.store.AppendEvent(ctx, &ds.RequestEvent{
		RequestID:  id,
		FromStatus: string(from),
		ToStatus:   string(to),
		ActorID:    actorID,
		CreatedAt:  s.now(),
	})
	if err != nil {
		logrus.Warnf("append event %s->%s for request %d: %v", from, to, id, err)
	}
}
