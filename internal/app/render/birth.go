package render

import "strings"

// BirthRenderer compose un extrait d'acte de naissance sur une page:
// colonne gauche pour le registre et l'identité, colonne droite pour les
// mentions déclaratives, interligne fixe.
type BirthRenderer struct{}

func (r *BirthRenderer) Family() Family { return FamilyBirth }

func (r *BirthRenderer) Compose(doc Document) ([]TextOp, error) {
	fields := fieldResolver{subject: doc.Subject}

	firstName, err := fields.require("childFirstName")
	if err != nil {
		return nil, err
	}
	lastName, err := fields.require("childLastName")
	if err != nil {
		return nil, err
	}
	birthDate, err := fields.require("birthDate")
	if err != nil {
		return nil, err
	}
	birthPlace, err := fields.require("birthPlace")
	if err != nil {
		return nil, err
	}

	// Seul embranchement autorisé sur les données du sujet: l'accord en genre
	born, child := "né", "fils de"
	if fields.get("childGender", "M") == "F" {
		born, child = "née", "fille de"
	}

	ops := header("Centre de déclaration de " + fields.get("registryCenter", "la commune"))
	ops = append(ops,
		TextOp{X: centerX - 38, Y: titleY, Size: 15, Style: "B", Text: "EXTRAIT D'ACTE DE NAISSANCE"},
	)

	// Colonne gauche: numéro de registre et bloc d'identité
	ops = append(ops,
		TextOp{X: leftColX, Y: bodyY, Size: 10, Style: "", Text: "N° " + fields.get("registryNumber", "............")},
		TextOp{X: leftColX, Y: bodyY + 6, Size: 9, Style: "", Text: "du registre des naissances"},
		TextOp{X: leftColX, Y: bodyY + 22, Size: 10, Style: "", Text: "NAISSANCE DE"},
		TextOp{X: leftColX, Y: bodyY + 30, Size: 11, Style: "B", Text: strings.ToUpper(lastName)},
		TextOp{X: leftColX, Y: bodyY + 37, Size: 11, Style: "B", Text: firstName},
	)

	// Colonne droite: mentions déclaratives, une ligne par interligne
	lines := []string{
		"Le " + birthDate + ",",
		"à " + fields.get("birthTime", "heure non renseignée") + ",",
		"est " + born + " à " + birthPlace,
		born + " " + lastName + " " + firstName,
		child + " " + fields.get("fatherName", "père non renseigné"),
		"et de " + fields.get("motherName", "mère non renseignée"),
		"Domicile: " + fields.get("residence", "non renseigné"),
		"Déclaré par: " + fields.get("declarant", "non renseigné"),
	}
	y := bodyY
	for _, line := range lines {
		ops = append(ops, TextOp{X: rightColX, Y: y, Size: 10, Style: "", Text: line})
		y += linePitch
	}

	ops = append(ops,
		TextOp{X: rightColX, Y: y + linePitch, Size: 9, Style: "I", Text: "Mentions marginales: " + fields.get("marginalNotes", "Néant")},
	)
	ops = append(ops, footer(doc)...)
	ops = append(ops,
		TextOp{X: leftColX, Y: footerY + 5*linePitch + 10, Size: 8, Style: "", Text: "Référence: " + doc.Reference},
	)
	return ops, nil
}
