package findings

import (
	"strings"
	"testing"
)

func TestFindCritical_DeclarationOrder(t *testing.T) {
	results := FindCritical("Patient has acute infarct and hemorrhage", "MRI")

	if len(results) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(results))
	}
	if results[0].Finding != "acute infarct" || results[0].Severity != SeverityHigh {
		t.Errorf("expected acute infarct/High first, got %s/%s", results[0].Finding, results[0].Severity)
	}
	if results[1].Finding != "hemorrhage" || results[1].Severity != SeverityCritical {
		t.Errorf("expected hemorrhage/Critical second, got %s/%s", results[1].Finding, results[1].Severity)
	}
	for _, r := range results {
		if r.Category != "Brain" {
			t.Errorf("expected Brain category, got %s", r.Category)
		}
	}
}

func TestFindCritical_SubstringNotWordBoundary(t *testing.T) {
	// "abscess" matches inside "epidural abscess" text across categories
	results := FindCritical("epidural abscess at L3", "MRI")

	var keywords []string
	for _, r := range results {
		keywords = append(keywords, r.Finding)
	}
	joined := strings.Join(keywords, ",")
	if !strings.Contains(joined, "abscess") {
		t.Errorf("expected abscess hit, got %v", keywords)
	}
	if !strings.Contains(joined, "epidural abscess") {
		t.Errorf("expected epidural abscess hit, got %v", keywords)
	}
}

func TestFindCritical_CaseInsensitive(t *testing.T) {
	results := FindCritical("AORTIC DISSECTION suspected", "CT")
	if len(results) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(results))
	}
	if results[0].Category != "Chest" || results[0].Severity != SeverityCritical {
		t.Errorf("unexpected result: %+v", results[0])
	}
	if results[0].Modality != "CT" {
		t.Errorf("expected modality CT, got %s", results[0].Modality)
	}
}

func TestFindCritical_Empty(t *testing.T) {
	if got := FindCritical("", "MRI"); len(got) != 0 {
		t.Errorf("expected no findings for empty text, got %d", len(got))
	}
	if got := FindCritical("unremarkable study", "MRI"); len(got) != 0 {
		t.Errorf("expected no findings, got %d", len(got))
	}
}

func TestSuggestDifferentials_DedupAndCap(t *testing.T) {
	results := SuggestDifferentials("enhancing mass noted", "")

	if len(results) == 0 {
		t.Fatal("expected non-empty list")
	}
	if len(results) > MaxDifferentials {
		t.Errorf("expected at most %d results, got %d", MaxDifferentials, len(results))
	}
	seen := make(map[string]bool)
	for _, d := range results {
		if seen[d.Diagnosis] {
			t.Errorf("duplicate diagnosis %q", d.Diagnosis)
		}
		seen[d.Diagnosis] = true
	}
}

func TestSuggestDifferentials_GroupDeclarationOrder(t *testing.T) {
	// "lesion" fires both the brain and spinal groups; brain entries come
	// first because that group is declared first, and Multiple Sclerosis
	// from the spinal group dedupes against nothing so it survives.
	results := SuggestDifferentials("lesion", "")

	if len(results) != MaxDifferentials {
		t.Fatalf("expected %d results, got %d", MaxDifferentials, len(results))
	}
	if results[0].Diagnosis != "Meningioma" {
		t.Errorf("expected Meningioma first, got %s", results[0].Diagnosis)
	}
	// All five brain entries precede the first spinal entry
	if results[5].Diagnosis != "Multiple Sclerosis" {
		t.Errorf("expected Multiple Sclerosis sixth, got %s", results[5].Diagnosis)
	}
}

func TestSuggestDifferentials_DedupKeepsFirst(t *testing.T) {
	// "white matter" and "spinal cord" both list Multiple Sclerosis; the
	// white-matter entry wins because its group is declared first.
	results := SuggestDifferentials("white matter change with spinal cord signal", "")

	var ms *Differential
	count := 0
	for i := range results {
		if results[i].Diagnosis == "Multiple Sclerosis" {
			count++
			if ms == nil {
				ms = &results[i]
			}
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one Multiple Sclerosis entry, got %d", count)
	}
	if !strings.Contains(ms.Features, "Dawson") {
		t.Errorf("expected white-matter variant kept, got features %q", ms.Features)
	}
}

func TestSuggestDifferentials_ModalityFilter(t *testing.T) {
	results := SuggestDifferentials("enhancing lesion", "CT")
	if len(results) != 0 {
		t.Errorf("expected no CT entries, got %d", len(results))
	}

	results = SuggestDifferentials("enhancing lesion", "MRI")
	if len(results) == 0 {
		t.Error("expected MRI entries")
	}
}

func TestSuggestDifferentials_Empty(t *testing.T) {
	if got := SuggestDifferentials("", ""); got != nil {
		t.Errorf("expected nil for empty text, got %v", got)
	}
	if got := SuggestDifferentials("nothing relevant here", ""); len(got) != 0 {
		t.Errorf("expected no suggestions, got %d", len(got))
	}
}

func TestNormalValuesFor(t *testing.T) {
	brain := NormalValuesFor("Brain")
	if len(brain) != 6 {
		t.Errorf("expected 6 brain values, got %d", len(brain))
	}
	if NormalValuesFor("Pelvis") != nil {
		t.Error("expected nil for unknown region")
	}
}

func TestNormalValuesText(t *testing.T) {
	text := NormalValuesText("Spine")
	if !strings.HasPrefix(text, "NORMAL REFERENCE VALUES (Spine):\n") {
		t.Errorf("unexpected prefix: %q", text)
	}
	if !strings.Contains(text, "- Thecal sac (lumbar): ≥12 mm\n") {
		t.Errorf("missing thecal sac line in %q", text)
	}
	if NormalValuesText("Pelvis") != "" {
		t.Error("expected empty text for unknown region")
	}
}
