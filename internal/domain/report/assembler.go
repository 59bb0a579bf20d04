package report

import (
	"strings"
	"time"
)

// DefaultContrast is substituted when technique info omits contrast.
const DefaultContrast = "Without contrast"

// DefaultImpression closes reports whose draft carries no impression of
// its own.
const DefaultImpression = "Findings as described above. Clinical correlation recommended."

// Assemble concatenates patient info, technique parameters, and the
// verbatim draft into one canonical multi-section report. The draft's
// internal structure is not validated here; that is the auditor's job.
// Reports always end with an IMPRESSION section: one is appended when the
// accumulated text has none.
func Assemble(patient PatientInfo, technique TechniqueInfo, draft, createdBy string) AssembledReport {
	var b strings.Builder

	if !patient.Empty() {
		b.WriteString("PATIENT INFORMATION:\n")
		writeLine(&b, "Name", patient.Name)
		writeLine(&b, "ID", patient.ID)
		if patient.Age != "" || patient.Sex != "" {
			writeLine(&b, "Age/Sex", strings.Trim(patient.Age+"/"+patient.Sex, "/"))
		}
		writeLine(&b, "Clinical History", patient.History)
		b.WriteString("\n")
	}

	if technique.Contrast == "" {
		technique.Contrast = DefaultContrast
	}
	b.WriteString("TECHNIQUE:\n")
	writeLine(&b, "Modality", technique.Modality)
	writeLine(&b, "Contrast", technique.Contrast)
	writeLine(&b, "Protocol", technique.Protocol)
	b.WriteString("\n")

	b.WriteString(draft)

	if !strings.Contains(strings.ToUpper(b.String()), "IMPRESSION") {
		b.WriteString("\n\nIMPRESSION:\n")
		b.WriteString(DefaultImpression)
	}

	return AssembledReport{
		Text:          b.String(),
		PatientInfo:   patient,
		TechniqueInfo: technique,
		CreatedBy:     createdBy,
		CreatedAt:     time.Now(),
	}
}

func writeLine(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}
