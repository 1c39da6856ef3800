package repository

import (
	"context"
	"errors"
	"time"

	"etatcivil/internal/app/ds"
	"etatcivil/internal/app/lifecycle"
	"etatcivil/internal/app/service"

	"gorm.io/gorm"
)

// Méthodes de persistance des demandes (implémentation de service.Store)

// CreateRequest enregistre la demande et son paiement en attente dans la
// même transaction
func (r *Repository) CreateRequest(ctx context.Context, req *ds.DocumentRequest, pay *ds.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(req).Error; err != nil {
			return err
		}
		pay.RequestID = req.ID
		return tx.Create(pay).Error
	})
}

// RequestByID retourne la demande avec ses associations, nil si absente
func (r *Repository) RequestByID(ctx context.Context, id uint) (*ds.DocumentRequest, error) {
	var req ds.DocumentRequest
	err := r.db.WithContext(ctx).
		Preload("DocumentType").
		Preload("Creator").
		Preload("Payment").
		First(&req, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Requests liste les demandes selon le filtre (statut, période, créateur)
func (r *Repository) Requests(ctx context.Context, filter service.RequestFilter) ([]ds.DocumentRequest, error) {
	query := r.db.WithContext(ctx).
		Preload("DocumentType").
		Preload("Creator").
		Preload("Payment")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("submitted_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("submitted_at < ?", filter.DateTo.AddDate(0, 0, 1))
	}
	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}

	var requests []ds.DocumentRequest
	err := query.Order("submitted_at DESC").Find(&requests).Error
	return requests, err
}

// Les transitions sont des UPDATE gardés par le statut courant: si aucune
// ligne n'est touchée, un concurrent est passé avant et la transition est
// refusée. C'est ce qui rend les transitions atomiques entre instances.

func (r *Repository) StartProcessing(ctx context.Context, id uint, at time.Time, agentID uint) error {
	result := r.db.WithContext(ctx).Exec(
		`UPDATE document_requests SET status = 'processing', processed_at = ?, processed_by = ? WHERE id = ? AND status = 'pending'`,
		at, agentID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return lifecycle.ErrInvalidTransition
	}
	return nil
}

func (r *Repository) CompleteRequest(ctx context.Context, id uint, at time.Time) error {
	result := r.db.WithContext(ctx).Exec(
		`UPDATE document_requests SET status = 'completed', completed_at = ? WHERE id = ? AND status = 'processing'`,
		at, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return lifecycle.ErrInvalidTransition
	}
	return nil
}

func (r *Repository) RejectRequest(ctx context.Context, id uint, at time.Time, reason string) error {
	result := r.db.WithContext(ctx).Exec(
		`UPDATE document_requests SET status = 'rejected', rejected_at = ?, rejection_reason = ? WHERE id = ? AND status = 'processing'`,
		at, reason, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return lifecycle.ErrInvalidTransition
	}
	return nil
}

// AttachGeneratedDocument écrase le descripteur du document généré.
// Gardé par le statut completed: le statut lui-même n'est jamais modifié ici.
func (r *Repository) AttachGeneratedDocument(ctx context.Context, id uint, doc service.GeneratedDocument) error {
	result := r.db.WithContext(ctx).Exec(
		`UPDATE document_requests SET document_file_name = ?, document_url = ?, document_generated_at = ?, document_generated_by = ? WHERE id = ? AND status = 'completed'`,
		doc.FileName, doc.URL, doc.At, doc.By, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return service.ErrNotCompleted
	}
	return nil
}

func (r *Repository) AppendEvent(ctx context.Context, ev *ds.RequestEvent) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

func (r *Repository) AddNote(ctx context.Context, note *ds.RequestNote) error {
	return r.db.WithContext(ctx).Create(note).Error
}

// NotesByRequestID retourne les notes dans l'ordre d'ajout
func (r *Repository) NotesByRequestID(ctx context.Context, id uint) ([]ds.RequestNote, error) {
	var notes []ds.RequestNote
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("request_id = ?", id).
		Order("created_at ASC").
		Find(&notes).Error
	return notes, err
}

// PaymentByRequestID retourne le paiement de la demande, nil s'il n'existe pas
func (r *Repository) PaymentByRequestID(ctx context.Context, requestID uint) (*ds.Payment, error) {
	var pay ds.Payment
	err := r.db.WithContext(ctx).First(&pay, "request_id = ?", requestID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pay, nil
}

func (r *Repository) SavePayment(ctx context.Context, p *ds.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}
