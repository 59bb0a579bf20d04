package dicomx

import (
	"testing"
	"time"
)

func TestToPatientInfo_FieldMapping(t *testing.T) {
	m := &Metadata{
		PatientName:      "DOE^JANE",
		PatientID:        "P-100",
		PatientBirthDate: "19800315",
		PatientSex:       "F",
		StudyDate:        "20260810",
		Modality:         "MR",
		StudyDescription: "Brain w/wo contrast",
	}
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	info := m.ToPatientInfo(now)

	if info.Name != "DOE^JANE" || info.ID != "P-100" {
		t.Errorf("unexpected identity: %+v", info)
	}
	if info.Age != "46" {
		t.Errorf("expected age 46, got %q", info.Age)
	}
	if info.Sex != "F" {
		t.Errorf("expected sex F, got %q", info.Sex)
	}
	if info.Accession != "DICOM-20260810" {
		t.Errorf("unexpected accession: %q", info.Accession)
	}
	if info.History != "MR: Brain w/wo contrast" {
		t.Errorf("unexpected history: %q", info.History)
	}
}

func TestMapSex(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"M", "M"},
		{"F", "F"},
		{"O", "Other"},
		{"", ""},
		{"X", ""},
	}
	for _, tt := range tests {
		if got := mapSex(tt.code); got != tt.want {
			t.Errorf("mapSex(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestAgeFromBirthDate(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		dob  string
		age  int
		ok   bool
	}{
		{"19800315", 46, true},
		{"2026", 0, true},
		{"abc", 0, false},
		{"", 0, false},
		{"20300101", 0, false},
	}
	for _, tt := range tests {
		age, ok := ageFromBirthDate(tt.dob, now)
		if ok != tt.ok || age != tt.age {
			t.Errorf("ageFromBirthDate(%q) = (%d, %v), want (%d, %v)", tt.dob, age, ok, tt.age, tt.ok)
		}
	}
}

func TestToTechniqueInfo(t *testing.T) {
	m := &Metadata{Modality: "CT", StudyDescription: "Chest routine"}
	ti := m.ToTechniqueInfo()
	if ti.Modality != "CT" || ti.Protocol != "Chest routine" {
		t.Errorf("unexpected technique: %+v", ti)
	}
}

func TestToPatientInfo_SparseMetadata(t *testing.T) {
	m := &Metadata{Modality: "CT"}
	info := m.ToPatientInfo(time.Now())

	if info.History != "CT" {
		t.Errorf("expected bare modality history, got %q", info.History)
	}
	if info.Accession != "" {
		t.Errorf("expected empty accession, got %q", info.Accession)
	}
	if info.Age != "" {
		t.Errorf("expected empty age, got %q", info.Age)
	}
}
