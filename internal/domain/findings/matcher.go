package findings

import "strings"

// MaxDifferentials caps the suggestion list.
const MaxDifferentials = 6

// CriticalFinding is one keyword hit in report text.
type CriticalFinding struct {
	Category string   `json:"category"`
	Finding  string   `json:"finding"`
	Severity Severity `json:"severity"`
	Action   string   `json:"action"`
	Modality string   `json:"modality"`
}

// FindCritical scans text for critical-finding keywords. Matching is a
// plain substring test against the lower-cased input ("mass" matches
// inside "massive"); results follow pattern-database declaration order,
// not severity order.
func FindCritical(text, modality string) []CriticalFinding {
	lower := strings.ToLower(text)
	var results []CriticalFinding
	for _, cat := range CriticalPatterns {
		for _, p := range cat.Patterns {
			if strings.Contains(lower, p.Keyword) {
				results = append(results, CriticalFinding{
					Category: cat.Region,
					Finding:  p.Keyword,
					Severity: p.Severity,
					Action:   p.Action,
					Modality: modality,
				})
			}
		}
	}
	return results
}

// SuggestDifferentials returns candidate diagnoses for the given findings
// text. Any trigger keyword hit appends the whole group; an optional
// modality filter excludes entries before deduplication; duplicates by
// diagnosis keep the first occurrence, so group declaration order decides
// the final ordering. Capped at MaxDifferentials. Advisory only: false
// positives are expected.
func SuggestDifferentials(text, modalityFilter string) []Differential {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var candidates []Differential
	for _, group := range DifferentialGroups {
		for _, trigger := range group.Triggers {
			if strings.Contains(lower, trigger) {
				candidates = append(candidates, group.Entries...)
				break
			}
		}
	}

	if modalityFilter != "" {
		filtered := candidates[:0]
		for _, d := range candidates {
			if strings.EqualFold(d.Modality, modalityFilter) {
				filtered = append(filtered, d)
			}
		}
		candidates = filtered
	}

	seen := make(map[string]bool, len(candidates))
	var results []Differential
	for _, d := range candidates {
		if seen[d.Diagnosis] {
			continue
		}
		seen[d.Diagnosis] = true
		results = append(results, d)
		if len(results) == MaxDifferentials {
			break
		}
	}
	return results
}

// NormalValuesFor returns the reference table for a body region, or nil
// when the region is unknown.
func NormalValuesFor(region string) []NormalValue {
	return NormalValues[region]
}

// NormalValuesText renders a region's reference table as report-ready
// text, for one-click insertion into a draft.
func NormalValuesText(region string) string {
	values := NormalValues[region]
	if len(values) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("NORMAL REFERENCE VALUES (")
	b.WriteString(region)
	b.WriteString("):\n")
	for _, v := range values {
		b.WriteString("- ")
		b.WriteString(v.Structure)
		b.WriteString(": ")
		b.WriteString(v.Reference)
		b.WriteString("\n")
	}
	return b.String()
}
