package render

import "strings"

// DeathRenderer compose un extrait d'acte de décès.
// Même grille que l'extrait de naissance, mentions propres au décès.
type DeathRenderer struct{}

func (r *DeathRenderer) Family() Family { return FamilyDeath }

func (r *DeathRenderer) Compose(doc Document) ([]TextOp, error) {
	fields := fieldResolver{subject: doc.Subject}

	firstName, err := fields.require("deceasedFirstName")
	if err != nil {
		return nil, err
	}
	lastName, err := fields.require("deceasedLastName")
	if err != nil {
		return nil, err
	}
	deathDate, err := fields.require("deathDate")
	if err != nil {
		return nil, err
	}
	deathPlace, err := fields.require("deathPlace")
	if err != nil {
		return nil, err
	}

	deceased := "décédé"
	if fields.get("deceasedGender", "M") == "F" {
		deceased = "décédée"
	}

	ops := header("Centre de déclaration de " + fields.get("registryCenter", "la commune"))
	ops = append(ops,
		TextOp{X: centerX - 34, Y: titleY, Size: 15, Style: "B", Text: "EXTRAIT D'ACTE DE DÉCÈS"},
	)

	ops = append(ops,
		TextOp{X: leftColX, Y: bodyY, Size: 10, Style: "", Text: "N° " + fields.get("registryNumber", "............")},
		TextOp{X: leftColX, Y: bodyY + 6, Size: 9, Style: "", Text: "du registre des décès"},
		TextOp{X: leftColX, Y: bodyY + 22, Size: 10, Style: "", Text: "DÉCÈS DE"},
		TextOp{X: leftColX, Y: bodyY + 30, Size: 11, Style: "B", Text: strings.ToUpper(lastName)},
		TextOp{X: leftColX, Y: bodyY + 37, Size: 11, Style: "B", Text: firstName},
	)

	lines := []string{
		"Le " + deathDate + ",",
		"est " + deceased + " à " + deathPlace,
		lastName + " " + firstName,
		deceased + " à l'âge de " + fields.get("ageAtDeath", "non renseigné"),
		"Profession: " + fields.get("profession", "non renseignée"),
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
