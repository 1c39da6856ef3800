package render

import "time"

// Document rassemble les données imprimées sur un acte
type Document struct {
	Reference string
	Subject   map[string]string
	Officer   string // Officier d'état civil signataire
	IssuedAt  time.Time
}

// TextOp est un texte positionné en coordonnées fixes sur la page (mm).
// La composition produit la liste complète des opérations avant tout dessin,
// ce qui rend la mise en page vérifiable sans ouvrir le PDF.
type TextOp struct {
	X, Y  float64
	Size  float64
	Style string // "" normal, "B" gras, "I" italique
	Text  string
}

// Renderer compose la page d'une famille d'actes
type Renderer interface {
	Family() Family
	Compose(doc Document) ([]TextOp, error)
}

// Grille de composition commune: page A4, deux colonnes
const (
	leftColX  = 20.0 // Colonne gauche: registre et identité
	rightColX = 82.0 // Colonne droite: mentions déclaratives
	linePitch = 7.0  // Interligne fixe de la colonne droite

	headerY = 20.0
	bodyY   = 70.0
	footerY = 240.0
	centerX = 105.0 // Milieu de page A4 (210 mm)
	titleY  = 52.0
)

// En-tête officiel. Le texte d'autorité est fixe: une seule juridiction,
// pas de localisation paramétrable.
const (
	headerRepublic  = "RÉPUBLIQUE DU MALI"
	headerMotto     = "Un Peuple - Un But - Une Foi"
	headerAuthority = "ÉTAT CIVIL"
)

// fieldResolver résout chaque champ du sujet de façon totale:
// tout champ optionnel a son défaut énuméré, les champs obligatoires
// absents font échouer la composition.
type fieldResolver struct {
	subject map[string]string
}

func (r fieldResolver) get(key, fallback string) string {
	if v, ok := r.subject[key]; ok && v != "" {
		return v
	}
	return fallback
}

func (r fieldResolver) require(key string) (string, error) {
	if v, ok := r.subject[key]; ok && v != "" {
		return v, nil
	}
	return "", &MissingFieldError{Field: key}
}

// header compose le bloc d'autorité centré
func header(center string) []TextOp {
	return []TextOp{
		{X: centerX - 28, Y: headerY, Size: 13, Style: "B", Text: headerRepublic},
		{X: centerX - 24, Y: headerY + 6, Size: 10, Style: "I", Text: headerMotto},
		{X: centerX - 12, Y: headerY + 14, Size: 11, Style: "B", Text: headerAuthority},
		{X: centerX - 34, Y: headerY + 20, Size: 10, Style: "", Text: center},
	}
}

// footer compose le bloc de délivrance: date, officier, emplacement de signature
func footer(doc Document) []TextOp {
	return []TextOp{
		{X: rightColX, Y: footerY, Size: 10, Style: "", Text: "Fait le " + doc.IssuedAt.Format("02/01/2006")},
		{X: rightColX, Y: footerY + linePitch, Size: 10, Style: "", Text: "L'Officier de l'état civil,"},
		{X: rightColX, Y: footerY + 3*linePitch, Size: 10, Style: "B", Text: doc.Officer},
		{X: rightColX, Y: footerY + 5*linePitch, Size: 9, Style: "I", Text: "Signature et cachet: ____________________"},
	}
}
