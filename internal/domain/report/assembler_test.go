package report

import (
	"strings"
	"testing"
)

func TestAssemble_FixedBlockOrder(t *testing.T) {
	patient := PatientInfo{Name: "Jane Doe", ID: "P-100", Age: "45", Sex: "F", History: "Headache"}
	technique := TechniqueInfo{Modality: "MRI", Contrast: "With contrast", Protocol: "Brain protocol"}

	r := Assemble(patient, technique, "FINDINGS:\nNo acute abnormality.\n\nIMPRESSION:\nNormal study.", "neuro")

	idxPatient := strings.Index(r.Text, "PATIENT INFORMATION:")
	idxTechnique := strings.Index(r.Text, "TECHNIQUE:")
	idxFindings := strings.Index(r.Text, "FINDINGS:")
	if idxPatient < 0 || idxTechnique < 0 || idxFindings < 0 {
		t.Fatalf("missing block in:\n%s", r.Text)
	}
	if !(idxPatient < idxTechnique && idxTechnique < idxFindings) {
		t.Errorf("blocks out of order in:\n%s", r.Text)
	}
	if !strings.Contains(r.Text, "Name: Jane Doe\n") {
		t.Error("missing name line")
	}
	if !strings.Contains(r.Text, "Age/Sex: 45/F\n") {
		t.Error("missing age/sex line")
	}
	if !strings.Contains(r.Text, "Clinical History: Headache\n") {
		t.Error("missing history line")
	}
}

func TestAssemble_EmptyPatientSkipsBlock(t *testing.T) {
	r := Assemble(PatientInfo{}, TechniqueInfo{Modality: "CT"}, "FINDINGS:\nClear.", "u")

	if strings.Contains(r.Text, "PATIENT INFORMATION") {
		t.Error("patient block present for empty patient info")
	}
	if !strings.HasPrefix(r.Text, "TECHNIQUE:\n") {
		t.Errorf("expected report to open with TECHNIQUE, got:\n%s", r.Text)
	}
}

func TestAssemble_ContrastDefault(t *testing.T) {
	r := Assemble(PatientInfo{}, TechniqueInfo{Modality: "MRI"}, "FINDINGS:\nClear.", "u")

	if !strings.Contains(r.Text, "Contrast: "+DefaultContrast+"\n") {
		t.Errorf("expected default contrast in:\n%s", r.Text)
	}
}

func TestAssemble_AutoImpression(t *testing.T) {
	r := Assemble(PatientInfo{}, TechniqueInfo{Modality: "CT", Contrast: "With contrast"},
		"FINDINGS:\nNo findings.", "u")

	if !strings.Contains(r.Text, "IMPRESSION:\n"+DefaultImpression) {
		t.Errorf("expected auto-appended impression in:\n%s", r.Text)
	}
}

func TestAssemble_KeepsExistingImpression(t *testing.T) {
	r := Assemble(PatientInfo{}, TechniqueInfo{Modality: "CT"},
		"FINDINGS:\nNodule.\n\nIMPRESSION:\nFollow-up in 6 months.", "u")

	if strings.Count(r.Text, "IMPRESSION") != 1 {
		t.Errorf("expected exactly one IMPRESSION in:\n%s", r.Text)
	}
	if strings.Contains(r.Text, DefaultImpression) {
		t.Error("default impression appended despite existing one")
	}
}

func TestAssemble_CaseInsensitiveImpressionCheck(t *testing.T) {
	r := Assemble(PatientInfo{}, TechniqueInfo{Modality: "CT"},
		"Findings fine. Impression: stable.", "u")

	if strings.Contains(r.Text, DefaultImpression) {
		t.Error("default impression appended despite lowercase impression present")
	}
}

func TestAssemble_OmitsEmptyPatientLines(t *testing.T) {
	r := Assemble(PatientInfo{ID: "P-1"}, TechniqueInfo{Modality: "CT"}, "FINDINGS:\nClear.", "u")

	if strings.Contains(r.Text, "Name:") {
		t.Error("name line present for empty name")
	}
	if strings.Contains(r.Text, "Age/Sex:") {
		t.Error("age/sex line present for empty age and sex")
	}
	if !strings.Contains(r.Text, "ID: P-1\n") {
		t.Error("missing id line")
	}
}

func TestAssemble_VerbatimDraft(t *testing.T) {
	draft := "FINDINGS:\n- bullet one\n- bullet two\n\nIMPRESSION:\nok"
	r := Assemble(PatientInfo{}, TechniqueInfo{Modality: "MRI"}, draft, "u")

	if !strings.Contains(r.Text, draft) {
		t.Errorf("draft not preserved verbatim in:\n%s", r.Text)
	}
}
