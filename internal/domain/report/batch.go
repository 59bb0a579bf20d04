package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// BatchResult is one templated report produced from a CSV row.
type BatchResult struct {
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	Report      string `json:"report"`
}

// FillBatch reads CSV rows and substitutes each into templateText.
// Every `[COLUMN]` placeholder (column header upper-cased, bracketed) is
// replaced with the row's value. Missing PatientID/PatientName columns
// yield "Unknown" in the result metadata, matching placeholder-fill
// behavior for sparse sheets.
func FillBatch(r io.Reader, templateText string) ([]BatchResult, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var results []BatchResult
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		report := templateText
		res := BatchResult{PatientID: "Unknown", PatientName: "Unknown"}
		for i, col := range header {
			if i >= len(row) {
				break
			}
			value := row[i]
			report = strings.ReplaceAll(report, "["+strings.ToUpper(col)+"]", value)
			switch col {
			case "PatientID":
				res.PatientID = value
			case "PatientName":
				res.PatientName = value
			}
		}
		res.Report = report
		results = append(results, res)
	}
	return results, nil
}
