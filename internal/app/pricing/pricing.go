package pricing

import (
	"errors"

	"etatcivil/internal/app/ds"
)

// Modes de réception de l'acte
const (
	DeliveryDownload = "download" // Téléchargement
	DeliveryPickup   = "pickup"   // Retrait au guichet
	DeliveryDelivery = "delivery" // Livraison à domicile
)

// DeliverySurcharge est la majoration appliquée à la livraison à domicile (FCFA)
const DeliverySurcharge = 2000

var (
	ErrInvalidDeliveryMethod   = errors.New("mode de réception invalide")
	ErrDocumentTypeUnavailable = errors.New("type d'acte indisponible au catalogue")
)

func ValidMethod(method string) bool {
	switch method {
	case DeliveryDownload, DeliveryPickup, DeliveryDelivery:
		return true
	}
	return false
}

// Resolve calcule le montant dû pour une demande:
// prix de base du type d'acte + majoration de livraison le cas échéant.
func Resolve(docType *ds.DocumentType, deliveryMethod string) (float64, error) {
	if !ValidMethod(deliveryMethod) {
		return 0, ErrInvalidDeliveryMethod
	}
	if docType == nil || !docType.IsActive {
		return 0, ErrDocumentTypeUnavailable
	}

	total := docType.BasePrice
	if deliveryMethod == DeliveryDelivery {
		total += DeliverySurcharge
	}
	return total, nil
}
