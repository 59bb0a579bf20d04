package report

import "time"

// PatientInfo is the demographic context attached to a report.
type PatientInfo struct {
	Name      string `json:"name"`
	ID        string `json:"id"`
	Age       string `json:"age"`
	Sex       string `json:"sex"`
	Accession string `json:"accession"`
	History   string `json:"history"`
}

// Empty reports whether every field is blank.
func (p PatientInfo) Empty() bool {
	return p.Name == "" && p.ID == "" && p.Age == "" && p.Sex == "" &&
		p.Accession == "" && p.History == ""
}

// TechniqueInfo describes how the study was performed.
type TechniqueInfo struct {
	Modality string `json:"modality"`
	Contrast string `json:"contrast"`
	Protocol string `json:"protocol"`
}

// AssembledReport is the immutable result of assembling a draft with its
// context. Edits require re-assembly, never in-place mutation.
type AssembledReport struct {
	Text          string        `json:"text"`
	PatientInfo   PatientInfo   `json:"patient_info"`
	TechniqueInfo TechniqueInfo `json:"technique_info"`
	CreatedBy     string        `json:"created_by"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Draft is a user's working free-text buffer, one per user.
type Draft struct {
	Owner     string    `db:"owner" json:"owner"`
	Text      string    `db:"text" json:"text"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
