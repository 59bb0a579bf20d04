package export

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"
)

// RenderDOCX converts the neutral document model into DOCX bytes.
func RenderDOCX(doc *Document) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	for _, e := range doc.Elements {
		switch e.Kind {
		case ElementTitle:
			w.AddParagraph().Justification("center").AddText(e.Text).Size("36").Bold()
		case ElementHeading:
			w.AddParagraph().AddText(e.Text).Size("28").Bold()
		case ElementParagraph:
			w.AddParagraph().AddText(e.Text)
		case ElementBullet:
			w.AddParagraph().AddText("• " + e.Text)
		case ElementKeyValue:
			p := w.AddParagraph()
			p.AddText(e.Key + ": ").Bold()
			p.AddText(e.Value)
		case ElementBreak:
			w.AddParagraph()
		case ElementPageBreak:
			w.AddParagraph().AddPageBreaks()
		}
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}
	return buf.Bytes(), nil
}
