package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/radreport/radreport/internal/domain/report"
)

// Entry is a persisted snapshot of a report at save time. Entries are
// append-only: deletable, never updated in place.
type Entry struct {
	ID            uuid.UUID          `db:"id" json:"id"`
	Name          string             `db:"name" json:"name"`
	Date          string             `db:"date" json:"date"`
	PatientInfo   report.PatientInfo `db:"patient_info" json:"patient_info"`
	Draft         string             `db:"draft" json:"draft"`
	Report        string             `db:"report" json:"report"`
	ReviewerNotes string             `db:"reviewer_notes" json:"reviewer_notes"`
	Finalized     bool               `db:"finalized" json:"finalized"`
	CreatedBy     string             `db:"created_by" json:"created_by"`
	CreatedAt     time.Time          `db:"created_at" json:"created_at"`
}

// SearchResults groups hits by content kind.
type SearchResults struct {
	Reports   []*Entry        `json:"reports"`
	Templates []TemplateMatch `json:"templates"`
	Drafts    []DraftMatch    `json:"drafts"`
}

// TemplateMatch is a template hit with a truncated content preview.
type TemplateMatch struct {
	Name    string `json:"name"`
	Preview string `json:"preview"`
}

// DraftMatch is a current-draft hit with a truncated preview.
type DraftMatch struct {
	Type    string `json:"type"`
	Preview string `json:"preview"`
}
