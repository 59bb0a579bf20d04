package templates

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SectionType classifies a template by the report section it fills.
type SectionType string

const (
	SectionFindings     SectionType = "findings"
	SectionTechnique    SectionType = "technique"
	SectionImpression   SectionType = "impression"
	SectionClinical     SectionType = "clinical"
	SectionDifferential SectionType = "differential"
	SectionComparison   SectionType = "comparison"
)

// Template is a reusable block of boilerplate keyed by name.
type Template struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	Name        string      `db:"name" json:"name"`
	Content     string      `db:"content" json:"content"`
	SectionType SectionType `db:"section_type" json:"section_type"`
	Owner       string      `db:"owner" json:"owner"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UsageCount  int         `db:"usage_count" json:"usage_count"`
}

var sectionHeadings = map[SectionType]string{
	SectionTechnique:    "TECHNIQUE",
	SectionFindings:     "FINDINGS",
	SectionImpression:   "IMPRESSION",
	SectionClinical:     "CLINICAL HISTORY",
	SectionDifferential: "DIFFERENTIAL DIAGNOSIS",
	SectionComparison:   "COMPARISON",
}

// Heading returns the canonical report heading for the template's section
// type. Unknown types fall back to the template's own name, upper-cased.
func (t *Template) Heading() string {
	if h, ok := sectionHeadings[t.SectionType]; ok {
		return h
	}
	return strings.ToUpper(t.Name)
}
