package repository

import (
	"context"
	"errors"

	"etatcivil/internal/app/ds"

	"gorm.io/gorm"
)

// Méthodes du catalogue des types d'actes

// DocumentTypes liste les types actifs, avec recherche par nom
func (r *Repository) DocumentTypes(ctx context.Context, search string) ([]ds.DocumentType, error) {
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var types []ds.DocumentType
	err := query.Order("name ASC").Find(&types).Error
	return types, err
}

// DocumentTypeByID retourne le type d'acte (même inactif: la tarification
// décide de la disponibilité), nil si absent
func (r *Repository) DocumentTypeByID(ctx context.Context, id uint) (*ds.DocumentType, error) {
	var docType ds.DocumentType
	err := r.db.WithContext(ctx).First(&docType, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &docType, nil
}

func (r *Repository) CreateDocumentType(ctx context.Context, docType *ds.DocumentType) error {
	return r.db.WithContext(ctx).Create(docType).Error
}

// UpdateDocumentType modifie les champs renseignés uniquement
func (r *Repository) UpdateDocumentType(ctx context.Context, id uint, name, category, description *string, basePrice *float64, processingDays *int, requiredFields ds.StringList) error {
	updates := map[string]interface{}{}
	if name != nil {
		updates["name"] = *name
	}
	if category != nil {
		updates["category"] = *category
	}
	if description != nil {
		updates["description"] = *description
	}
	if basePrice != nil {
		updates["base_price"] = *basePrice
	}
	if processingDays != nil {
		updates["processing_days"] = *processingDays
	}
	if requiredFields != nil {
		updates["required_fields"] = requiredFields
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&ds.DocumentType{}).Where("id = ?", id).Updates(updates).Error
}

// DeactivateDocumentType retire le type du catalogue (suppression logique)
func (r *Repository) DeactivateDocumentType(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Exec(
		`UPDATE document_types SET is_active = false WHERE id = ? AND is_active = true`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("type d'acte introuvable ou déjà retiré")
	}
	return nil
}
