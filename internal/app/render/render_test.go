package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func birthDocument() Document {
	return Document{
		Reference: "REQ-2025-001",
		Subject: map[string]string{
			"childFirstName": "Awa",
			"childLastName":  "Koné",
			"childGender":    "F",
			"birthDate":      "12/03/2020",
			"birthPlace":     "Bamako",
			"fatherName":     "Moussa Koné",
			"motherName":     "Fatoumata Diarra",
		},
		Officer:  "Ibrahim Touré",
		IssuedAt: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
	}
}

func opTexts(ops []TextOp) []string {
	texts := make([]string, 0, len(ops))
	for _, op := range ops {
		texts = append(texts, op.Text)
	}
	return texts
}

func TestBirthComposeDeterministic(t *testing.T) {
	r := &BirthRenderer{}
	doc := birthDocument()

	first, err := r.Compose(doc)
	require.NoError(t, err)
	second, err := r.Compose(doc)
	require.NoError(t, err)

	// Mêmes données, même date: composition identique à l'opération près
	assert.Equal(t, first, second)
}

func TestBirthCompose(t *testing.T) {
	r := &BirthRenderer{}
	ops, err := r.Compose(birthDocument())
	require.NoError(t, err)

	texts := opTexts(ops)
	assert.Contains(t, texts, "RÉPUBLIQUE DU MALI")
	assert.Contains(t, texts, "Un Peuple - Un But - Une Foi")
	assert.Contains(t, texts, "EXTRAIT D'ACTE DE NAISSANCE")
	assert.Contains(t, texts, "KONÉ")
	assert.Contains(t, texts, "Awa")

	// Accord en genre féminin sur toute la colonne déclarative
	assert.Contains(t, texts, "est née à Bamako")
	assert.Contains(t, texts, "née Koné Awa")
	assert.Contains(t, texts, "fille de Moussa Koné")
	assert.Contains(t, texts, "et de Fatoumata Diarra")

	assert.Contains(t, texts, "Fait le 15/06/2025")
	assert.Contains(t, texts, "Ibrahim Touré")
	assert.Contains(t, texts, "Référence: REQ-2025-001")
}

func TestBirthComposeMasculineDefault(t *testing.T) {
	r := &BirthRenderer{}
	doc := birthDocument()
	delete(doc.Subject, "childGender")

	ops, err := r.Compose(doc)
	require.NoError(t, err)

	texts := opTexts(ops)
	assert.Contains(t, texts, "est né à Bamako")
	assert.Contains(t, texts, "fils de Moussa Koné")
}

func TestBirthComposeOptionalDefaults(t *testing.T) {
	r := &BirthRenderer{}
	doc := Document{
		Reference: "REQ-2025-002",
		Subject: map[string]string{
			"childFirstName": "Seydou",
			"childLastName":  "Traoré",
			"birthDate":      "01/01/2024",
			"birthPlace":     "Ségou",
		},
		Officer:  "Ibrahim Touré",
		IssuedAt: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
	}

	ops, err := r.Compose(doc)
	require.NoError(t, err)

	texts := opTexts(ops)
	assert.Contains(t, texts, "fils de père non renseigné")
	assert.Contains(t, texts, "et de mère non renseignée")
	assert.Contains(t, texts, "Domicile: non renseigné")
	assert.Contains(t, texts, "Mentions marginales: Néant")
	assert.Contains(t, texts, "N° ............")
}

func TestBirthComposeMissingField(t *testing.T) {
	r := &BirthRenderer{}

	for _, field := range []string{"childFirstName", "childLastName", "birthDate", "birthPlace"} {
		t.Run(field, func(t *testing.T) {
			doc := birthDocument()
			delete(doc.Subject, field)

			_, err := r.Compose(doc)
			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, field, missing.Field)
		})
	}
}

func TestBirthComposeEmptyFieldIsMissing(t *testing.T) {
	r := &BirthRenderer{}
	doc := birthDocument()
	doc.Subject["birthPlace"] = ""

	_, err := r.Compose(doc)
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "birthPlace", missing.Field)
}

func TestDeathCompose(t *testing.T) {
	r := &DeathRenderer{}
	ops, err := r.Compose(Document{
		Reference: "REQ-2025-003",
		Subject: map[string]string{
			"deceasedFirstName": "Mariam",
			"deceasedLastName":  "Sangaré",
			"deceasedGender":    "F",
			"deathDate":         "02/02/2025",
			"deathPlace":        "Mopti",
			"ageAtDeath":        "74 ans",
		},
		Officer:  "Ibrahim Touré",
		IssuedAt: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	texts := opTexts(ops)
	assert.Contains(t, texts, "EXTRAIT D'ACTE DE DÉCÈS")
	assert.Contains(t, texts, "SANGARÉ")
	assert.Contains(t, texts, "est décédée à Mopti")
	assert.Contains(t, texts, "décédée à l'âge de 74 ans")
	assert.Contains(t, texts, "Référence: REQ-2025-003")
}

func TestDeathComposeMissingField(t *testing.T) {
	r := &DeathRenderer{}
	_, err := r.Compose(Document{
		Subject: map[string]string{
			"deceasedFirstName": "Mariam",
			"deceasedLastName":  "Sangaré",
			"deathDate":         "02/02/2025",
		},
	})
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "deathPlace", missing.Field)
}

func TestDraw(t *testing.T) {
	r := &BirthRenderer{}
	ops, err := r.Compose(birthDocument())
	require.NoError(t, err)

	data, err := Draw(ops)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}
