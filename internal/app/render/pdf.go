package render

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

// Draw dessine les opérations composées sur une page A4 et retourne le PDF.
// Le dessin est mécanique: toute la logique de mise en page vit dans Compose.
func Draw(ops []TextOp) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	for _, op := range ops {
		pdf.SetFont("Times", op.Style, op.Size)
		pdf.Text(op.X, op.Y, tr(op.Text))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
