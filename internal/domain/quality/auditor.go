package quality

import (
	"regexp"
	"strings"
)

// Grade labels mapped from score thresholds.
const (
	GradeExcellent        = "Excellent"
	GradeGood             = "Good"
	GradeFair             = "Fair"
	GradeNeedsImprovement = "Needs Improvement"
)

// Hedging terms that each cost 3 points when present in FINDINGS.
var ambiguousTerms = []string{
	"possible", "likely", "suggestive of", "cannot exclude", "may represent", "probably",
}

// Vague terms that cost 5 points when FINDINGS is under 100 characters.
var vagueTerms = []string{"normal", "unremarkable"}

// findingsSection captures FINDINGS body text up to the next ALL-CAPS
// heading or end of string.
var findingsSection = regexp.MustCompile(`(?s)FINDINGS:\s*(.*?)(?:\n[A-Z][A-Z /]+:|\z)`)

// Result is the outcome of a report audit. Score is always in [0,100].
type Result struct {
	Score       int      `json:"score"`
	Grade       string   `json:"grade"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
	Strengths   []string `json:"strengths"`
}

// Audit scores report text against structural rules. Pure and
// deterministic: required sections, findings length bounds, hedging and
// vague language, bonus sections, clamped to [0,100].
func Audit(text string) Result {
	score := 100
	res := Result{
		Warnings:    []string{},
		Suggestions: []string{},
		Strengths:   []string{},
	}

	upper := strings.ToUpper(text)

	for _, section := range []string{"FINDINGS", "IMPRESSION"} {
		if !strings.Contains(upper, section) {
			score -= 20
			res.Warnings = append(res.Warnings, "Missing required section: "+section)
		}
	}

	if m := findingsSection.FindStringSubmatch(text); m != nil {
		body := m[1]
		switch {
		case len(body) < 50:
			score -= 10
			res.Warnings = append(res.Warnings, "Findings section is brief")
			res.Suggestions = append(res.Suggestions, "Add more descriptive detail to FINDINGS")
		case len(body) > 2000:
			score -= 5
			res.Warnings = append(res.Warnings, "Findings section is verbose")
			res.Suggestions = append(res.Suggestions, "Consider a more concise FINDINGS section")
		default:
			res.Strengths = append(res.Strengths, "Findings section has appropriate length")
		}

		lower := strings.ToLower(body)
		for _, term := range ambiguousTerms {
			if strings.Contains(lower, term) {
				score -= 3
				res.Suggestions = append(res.Suggestions, "Clarify ambiguous term: \""+term+"\"")
			}
		}
		if len(body) < 100 {
			for _, term := range vagueTerms {
				if strings.Contains(lower, term) {
					score -= 5
					res.Warnings = append(res.Warnings, "Avoid \""+term+"\" without supporting detail")
				}
			}
		}
	}

	if strings.Contains(upper, "COMPARISON") {
		score += 10
		res.Strengths = append(res.Strengths, "Includes comparison with prior studies")
	}
	if strings.Contains(upper, "DIFFERENTIAL") {
		score += 5
		res.Strengths = append(res.Strengths, "Includes differential diagnosis")
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	res.Score = score
	res.Grade = gradeFor(score)
	return res
}

func gradeFor(score int) string {
	switch {
	case score >= 90:
		return GradeExcellent
	case score >= 75:
		return GradeGood
	case score >= 60:
		return GradeFair
	default:
		return GradeNeedsImprovement
	}
}
