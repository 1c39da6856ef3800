package pricing

import (
	"testing"

	"etatcivil/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidMethod(t *testing.T) {
	assert.True(t, ValidMethod(DeliveryDownload))
	assert.True(t, ValidMethod(DeliveryPickup))
	assert.True(t, ValidMethod(DeliveryDelivery))
	assert.False(t, ValidMethod("courier"))
	assert.False(t, ValidMethod(""))
	assert.False(t, ValidMethod("Download"))
}

func TestResolve(t *testing.T) {
	birth := &ds.DocumentType{Name: "Extrait de naissance", BasePrice: 5000, IsActive: true}

	cases := []struct {
		name   string
		method string
		want   float64
	}{
		{"téléchargement au prix de base", DeliveryDownload, 5000},
		{"retrait au guichet au prix de base", DeliveryPickup, 5000},
		{"livraison majorée", DeliveryDelivery, 7000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			total, err := Resolve(birth, tc.method)
			require.NoError(t, err)
			assert.Equal(t, tc.want, total)
		})
	}
}

func TestResolveInvalidMethod(t *testing.T) {
	birth := &ds.DocumentType{BasePrice: 5000, IsActive: true}

	_, err := Resolve(birth, "courier")
	assert.ErrorIs(t, err, ErrInvalidDeliveryMethod)
}

func TestResolveUnavailableType(t *testing.T) {
	t.Run("type inactif", func(t *testing.T) {
		inactive := &ds.DocumentType{BasePrice: 5000, IsActive: false}
		_, err := Resolve(inactive, DeliveryDownload)
		assert.ErrorIs(t, err, ErrDocumentTypeUnavailable)
	})

	t.Run("type absent", func(t *testing.T) {
		_, err := Resolve(nil, DeliveryDownload)
		assert.ErrorIs(t, err, ErrDocumentTypeUnavailable)
	})
}
