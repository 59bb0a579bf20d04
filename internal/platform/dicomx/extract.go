package dicomx

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"

	"github.com/radreport/radreport/internal/domain/report"
)

// Metadata is the flat tag→string record extracted from a DICOM stream.
type Metadata struct {
	PatientName      string `json:"patient_name"`
	PatientID        string `json:"patient_id"`
	PatientBirthDate string `json:"patient_birth_date"`
	PatientSex       string `json:"patient_sex"`
	StudyDate        string `json:"study_date"`
	Modality         string `json:"modality"`
	StudyDescription string `json:"study_description"`
}

// Extract parses a DICOM stream and returns its patient and study
// metadata. Pixel data is skipped; only string header elements matter
// here.
func Extract(r io.Reader, size int64) (*Metadata, error) {
	ds, err := dicom.Parse(r, size, nil, dicom.SkipPixelData())
	if err != nil {
		return nil, fmt.Errorf("parse dicom: %w", err)
	}

	m := &Metadata{
		PatientName:      elementString(&ds, tag.PatientName),
		PatientID:        elementString(&ds, tag.PatientID),
		PatientBirthDate: elementString(&ds, tag.PatientBirthDate),
		PatientSex:       elementString(&ds, tag.PatientSex),
		StudyDate:        elementString(&ds, tag.StudyDate),
		Modality:         elementString(&ds, tag.Modality),
		StudyDescription: elementString(&ds, tag.StudyDescription),
	}
	return m, nil
}

func elementString(ds *dicom.Dataset, t tag.Tag) string {
	el, err := ds.FindElementByTag(t)
	if err != nil {
		return ""
	}
	if values, ok := el.Value.GetValue().([]string); ok && len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}

// ToPatientInfo maps extracted metadata to report context. Sex codes map
// M→M, F→F, O→Other; the birth date yields an age in whole calendar
// years; accession and history lines follow the study fields.
func (m *Metadata) ToPatientInfo(now time.Time) report.PatientInfo {
	info := report.PatientInfo{
		Name: m.PatientName,
		ID:   m.PatientID,
		Sex:  mapSex(m.PatientSex),
	}
	if age, ok := ageFromBirthDate(m.PatientBirthDate, now); ok {
		info.Age = strconv.Itoa(age)
	}
	if m.StudyDate != "" {
		info.Accession = "DICOM-" + m.StudyDate
	}
	switch {
	case m.Modality != "" && m.StudyDescription != "":
		info.History = m.Modality + ": " + m.StudyDescription
	case m.Modality != "":
		info.History = m.Modality
	case m.StudyDescription != "":
		info.History = m.StudyDescription
	}
	return info
}

// ToTechniqueInfo maps the study fields to technique context.
func (m *Metadata) ToTechniqueInfo() report.TechniqueInfo {
	return report.TechniqueInfo{
		Modality: m.Modality,
		Protocol: m.StudyDescription,
	}
}

func mapSex(code string) string {
	switch code {
	case "M":
		return "M"
	case "F":
		return "F"
	case "O":
		return "Other"
	default:
		return ""
	}
}

// ageFromBirthDate derives age as currentYear - birthYear from a DICOM
// DA value (YYYYMMDD).
func ageFromBirthDate(dob string, now time.Time) (int, bool) {
	if len(dob) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(dob[:4])
	if err != nil || year <= 0 {
		return 0, false
	}
	age := now.Year() - year
	if age < 0 {
		return 0, false
	}
	return age, true
}
