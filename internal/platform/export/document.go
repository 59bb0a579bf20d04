package export

import (
	"strings"
	"time"

	"github.com/radreport/radreport/internal/domain/report"
)

// ElementKind discriminates document elements.
type ElementKind string

const (
	ElementTitle     ElementKind = "title"
	ElementHeading   ElementKind = "heading"
	ElementParagraph ElementKind = "paragraph"
	ElementBullet    ElementKind = "bullet"
	ElementKeyValue  ElementKind = "keyvalue"
	ElementBreak     ElementKind = "break"
	ElementPageBreak ElementKind = "pagebreak"
)

// Element is one run of the structured document. Meta marks synthesized
// front-matter and trailer elements as opposed to report body content.
type Element struct {
	Kind  ElementKind `json:"kind"`
	Text  string      `json:"text,omitempty"`
	Key   string      `json:"key,omitempty"`
	Value string      `json:"value,omitempty"`
	Meta  bool        `json:"meta,omitempty"`
}

// Document is the neutral model the DOCX renderer consumes.
type Document struct {
	Elements []Element `json:"elements"`
}

// Branding identifies the issuing institution on exported reports.
type Branding struct {
	Hospital   string
	Department string
}

// Serialize walks report text line by line into a structured document.
// An ALL-CAPS line ending in a colon becomes a heading; lines opening
// with "-" or "*" become bullets; blank lines preserve spacing; anything
// else is a verbatim paragraph. Malformed input degrades to a heading
// misclassification, never an error.
func Serialize(reportText string, patient report.PatientInfo, date string, generatedBy string, branding Branding, now time.Time) *Document {
	doc := &Document{}
	doc.add(Element{Kind: ElementTitle, Text: "RADIOLOGY REPORT", Meta: true})

	if !patient.Empty() {
		doc.add(Element{Kind: ElementHeading, Text: "PATIENT INFORMATION", Meta: true})
		doc.addKeyValue("Patient Name", patient.Name)
		doc.addKeyValue("Patient ID", patient.ID)
		if patient.Age != "" || patient.Sex != "" {
			doc.addKeyValue("Age / Sex", strings.Trim(patient.Age+" / "+patient.Sex, " /"))
		}
		doc.addKeyValue("Accession #", patient.Accession)
		doc.addKeyValue("Clinical History", patient.History)
		if date != "" {
			doc.addKeyValue("Study Date", date)
		}
		doc.add(Element{Kind: ElementPageBreak, Meta: true})
	}

	for _, line := range strings.Split(reportText, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			doc.add(Element{Kind: ElementBreak})
		case isHeadingLine(trimmed):
			doc.add(Element{Kind: ElementHeading, Text: strings.TrimSuffix(trimmed, ":")})
		case strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "*"):
			doc.add(Element{Kind: ElementBullet, Text: strings.TrimLeft(trimmed, "-* ")})
		default:
			doc.add(Element{Kind: ElementParagraph, Text: line})
		}
	}

	doc.add(Element{Kind: ElementPageBreak, Meta: true})
	doc.add(Element{Kind: ElementHeading, Text: "REPORT DETAILS", Meta: true})
	if branding.Hospital != "" {
		doc.addKeyValue("Institution", strings.TrimSuffix(branding.Hospital+" - "+branding.Department, " - "))
	}
	doc.addKeyValue("Generated By", generatedBy)
	doc.addKeyValue("Generated At", now.Format("2006-01-02 15:04"))

	return doc
}

// isHeadingLine reports whether a line reads `<CAPS>:` once spaces are
// stripped.
func isHeadingLine(line string) bool {
	if !strings.HasSuffix(line, ":") {
		return false
	}
	body := strings.ReplaceAll(strings.TrimSuffix(line, ":"), " ", "")
	if body == "" {
		return false
	}
	return body == strings.ToUpper(body) && body != strings.ToLower(body)
}

// Headings returns the heading texts of the report body in order,
// excluding the synthesized title, front matter, and trailer.
func (d *Document) Headings() []string {
	var out []string
	for _, e := range d.Elements {
		if e.Kind == ElementHeading && !e.Meta {
			out = append(out, e.Text)
		}
	}
	return out
}

func (d *Document) add(e Element) {
	d.Elements = append(d.Elements, e)
}

func (d *Document) addKeyValue(key, value string) {
	if value == "" {
		return
	}
	d.add(Element{Kind: ElementKeyValue, Key: key, Value: value, Meta: true})
}
