package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Extrait de Naissance", "extrait de naissance"},
		{"Acte de Décès", "acte de deces"},
		{"  ACTE   DE   MARIAGE  ", "acte de mariage"},
		{"Certificat de Décès", "certificat de deces"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in))
	}
}

func TestFamilyOf(t *testing.T) {
	cases := []struct {
		name string
		want Family
	}{
		{"Extrait de naissance", FamilyBirth},
		{"Acte de naissance", FamilyBirth},
		{"Birth Certificate", FamilyBirth},
		{"Acte de décès", FamilyDeath},
		{"Certificat de décès", FamilyDeath},
		{"Acte de mariage", FamilyMarriage},

		// Libellés de catalogue non listés mot pour mot: rattachement par mot-clé
		{"Copie intégrale d'acte de naissance", FamilyBirth},
		{"Extrait du registre des décès", FamilyDeath},
		{"Livret de mariage", FamilyMarriage},

		{"Certificat de nationalité", FamilyUnknown},
		{"", FamilyUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FamilyOf(tc.name))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Run("naissance", func(t *testing.T) {
		r, err := Resolve("Extrait de naissance")
		require.NoError(t, err)
		assert.Equal(t, FamilyBirth, r.Family())
	})

	t.Run("décès", func(t *testing.T) {
		r, err := Resolve("Acte de décès")
		require.NoError(t, err)
		assert.Equal(t, FamilyDeath, r.Family())
	})

	t.Run("mariage reconnu mais sans moteur de rendu", func(t *testing.T) {
		_, err := Resolve("Acte de mariage")
		var typeErr *UnsupportedTypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "Acte de mariage", typeErr.Name)
		assert.Equal(t, FamilyMarriage, typeErr.Family)
	})

	t.Run("type inconnu", func(t *testing.T) {
		_, err := Resolve("Certificat de nationalité")
		var typeErr *UnsupportedTypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, FamilyUnknown, typeErr.Family)
	})
}
