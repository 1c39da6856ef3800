package render

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Family identifie la famille de mise en page d'un acte.
// Dispatch fini et fermé: chaque famille reconnue a (ou n'a pas encore)
// un moteur de rendu dédié, tout le reste est explicitement refusé.
type Family string

const (
	FamilyBirth    Family = "birth"
	FamilyDeath    Family = "death"
	FamilyMarriage Family = "marriage"
	FamilyUnknown  Family = ""
)

// UnsupportedTypeError porte le nom saisi pour le diagnostic.
// Family est vide si le nom n'a été rattaché à aucune famille connue.
type UnsupportedTypeError struct {
	Name   string
	Family Family
}

func (e *UnsupportedTypeError) Error() string {
	if e.Family == FamilyUnknown {
		return fmt.Sprintf("type d'acte non reconnu: %q", e.Name)
	}
	return fmt.Sprintf("type d'acte non pris en charge: %q (famille %s)", e.Name, e.Family)
}

// MissingFieldError signale un champ obligatoire absent au moment du rendu.
// La validation amont aurait dû l'intercepter: c'est une violation d'invariant,
// jamais remplacée silencieusement par un défaut.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("champ obligatoire absent des données du sujet: %s", e.Field)
}

var diacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize prépare un nom de type d'acte pour la table de correspondance:
// minuscules, sans accents, espaces réduits à un séparateur unique.
func Normalize(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	stripped, _, err := transform.String(diacritics, lowered)
	if err != nil {
		stripped = lowered
	}
	return strings.Join(strings.Fields(stripped), " ")
}

// Table fixe des libellés reconnus (après normalisation)
var families = map[string]Family{
	"acte de naissance":           FamilyBirth,
	"extrait de naissance":        FamilyBirth,
	"extrait d'acte de naissance": FamilyBirth,
	"copie d'acte de naissance":   FamilyBirth,
	"birth certificate":           FamilyBirth,
	"acte de deces":               FamilyDeath,
	"extrait d'acte de deces":     FamilyDeath,
	"certificat de deces":         FamilyDeath,
	"death certificate":           FamilyDeath,
	"acte de mariage":             FamilyMarriage,
	"extrait d'acte de mariage":   FamilyMarriage,
	"marriage certificate":        FamilyMarriage,
}

// FamilyOf rattache un nom de type d'acte à sa famille de rendu.
func FamilyOf(name string) Family {
	normalized := Normalize(name)
	if f, ok := families[normalized]; ok {
		return f
	}
	// Libellé de catalogue non listé mot pour mot: rattachement par mot-clé,
	// toujours sur le même ensemble fermé de familles
	switch {
	case strings.Contains(normalized, "naissance"):
		return FamilyBirth
	case strings.Contains(normalized, "deces"):
		return FamilyDeath
	case strings.Contains(normalized, "mariage"):
		return FamilyMarriage
	}
	return FamilyUnknown
}

// Resolve associe un nom de type d'acte à sa stratégie de rendu.
// Les familles reconnues mais sans moteur de rendu (mariage) sont refusées
// au même titre que les noms inconnus.
func Resolve(name string) (Renderer, error) {
	switch family := FamilyOf(name); family {
	case FamilyBirth:
		return &BirthRenderer{}, nil
	case FamilyDeath:
		return &DeathRenderer{}, nil
	case FamilyMarriage:
		return nil, &UnsupportedTypeError{Name: name, Family: family}
	default:
		return nil, &UnsupportedTypeError{Name: name}
	}
}
