package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"etatcivil/internal/app/ds"
	"etatcivil/internal/app/lifecycle"
	"etatcivil/internal/app/render"

	"github.com/sirupsen/logrus"
)

// GenerateDocument produit l'acte d'une demande approuvée: résolution de la
// famille de rendu, composition, dessin PDF, écriture dans le stockage puis
// rattachement du descripteur. Régénérer produit un nouvel objet horodaté et
// écrase le descripteur; le statut de la demande n'est jamais modifié.
func (s *RequestService) GenerateDocument(ctx context.Context, id, agentID uint) (*ds.DocumentRequest, error) {
	// Même verrou que les transitions: deux générations simultanées sur la
	// même demande ne doivent pas se disputer le descripteur
	unlock := s.locks.lock(id)
	defer unlock()

	req, err := s.Request(ctx, id)
	if err != nil {
		return nil, err
	}
	if lifecycle.Status(req.Status) != lifecycle.StatusCompleted {
		return nil, ErrNotCompleted
	}

	renderer, err := render.Resolve(req.DocumentType.Name)
	if err != nil {
		return nil, err
	}

	agent, err := s.store.UserByID(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, ErrUserNotFound
	}

	now := s.now()
	ops, err := renderer.Compose(render.Document{
		Reference: req.Reference,
		Subject:   req.SubjectData,
		Officer:   agent.FullName,
		IssuedAt:  now,
	})
	if err != nil {
		var missing *render.MissingFieldError
		if errors.As(err, &missing) {
			// La validation amont aurait dû bloquer ce dossier: on remonte
			// l'erreur au lieu d'imprimer un acte incomplet
			logrus.Errorf("invariant violé sur la demande %s: %v", req.Reference, err)
		}
		return nil, err
	}

	data, err := render.Draw(ops)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("acte_%s_%d.pdf",
		strings.ToLower(strings.ReplaceAll(req.Reference, "-", "_")), now.Unix())

	if err := s.storage.Upload(ctx, filename, data, "application/pdf"); err != nil {
		return nil, err
	}
	url, err := s.storage.FileURL(ctx, filename)
	if err != nil {
		return nil, err
	}

	doc := GeneratedDocument{
		FileName: filename,
		URL:      url,
		At:       now,
		By:       agentID,
	}
	if err := s.store.AttachGeneratedDocument(ctx, id, doc); err != nil {
		return nil, err
	}

	logrus.Infof("acte généré pour la demande %s: %s", req.Reference, filename)
	return s.Request(ctx, id)
}

// DocumentURL retourne une URL de téléchargement fraîche de l'acte généré
func (s *RequestService) DocumentURL(ctx context.Context, id uint) (string, error) {
	req, err := s.Request(ctx, id)
	if err != nil {
		return "", err
	}
	if req.DocumentFileName == "" {
		return "", ErrNotCompleted
	}
	return s.storage.FileURL(ctx, req.DocumentFileName)
}
