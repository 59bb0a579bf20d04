package report

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type mockDraftRepo struct {
	drafts map[string]string
	putErr error
}

func newMockDraftRepo() *mockDraftRepo {
	return &mockDraftRepo{drafts: make(map[string]string)}
}

func (m *mockDraftRepo) Get(ctx context.Context, owner string) (*Draft, error) {
	return &Draft{Owner: owner, Text: m.drafts[owner]}, nil
}

func (m *mockDraftRepo) Put(ctx context.Context, d *Draft) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.drafts[d.Owner] = d.Text
	return nil
}

func (m *mockDraftRepo) Delete(ctx context.Context, owner string) error {
	delete(m.drafts, owner)
	return nil
}

type stubGenerator struct {
	response string
	err      error
	calls    int
	lastMax  int
}

func (g *stubGenerator) Generate(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	g.calls++
	g.lastMax = maxTokens
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

type stubApplier struct{ result string }

func (a *stubApplier) Apply(ctx context.Context, name, draft, user string) (string, error) {
	if a.result == "" {
		return draft, nil
	}
	return a.result, nil
}

type nopRecorder struct{}

func (nopRecorder) Record(ctx context.Context, user, action, details string) {}

func TestGenerate_EmptyDraftSkipsCall(t *testing.T) {
	gen := &stubGenerator{response: "TECHNIQUE:\nMRI."}
	svc := NewService(newMockDraftRepo(), gen, nopRecorder{}, 1500, time.Minute)

	text, err := svc.Generate(context.Background(), TechniqueInfo{}, "", "u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "" {
		t.Errorf("expected empty result, got %q", text)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times for empty draft", gen.calls)
	}
}

func TestGenerate_PassesMaxTokens(t *testing.T) {
	gen := &stubGenerator{response: "REPORT"}
	svc := NewService(newMockDraftRepo(), gen, nopRecorder{}, 900, time.Minute)

	if _, err := svc.Generate(context.Background(), TechniqueInfo{Modality: "CT"}, "nodule", "u"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.lastMax != 900 {
		t.Errorf("expected maxTokens 900, got %d", gen.lastMax)
	}
}

func TestGenerate_FailureLeavesNoState(t *testing.T) {
	repo := newMockDraftRepo()
	repo.drafts["u"] = "original draft"
	gen := &stubGenerator{err: errors.New("upstream unavailable")}
	svc := NewService(repo, gen, nopRecorder{}, 1500, time.Minute)

	_, err := svc.Generate(context.Background(), TechniqueInfo{}, "findings", "u")
	if err == nil {
		t.Fatal("expected error")
	}
	if repo.drafts["u"] != "original draft" {
		t.Error("draft mutated on generator failure")
	}
}

func TestApplyTemplate_PersistsNewDraft(t *testing.T) {
	repo := newMockDraftRepo()
	repo.drafts["u"] = "existing"
	svc := NewService(repo, &stubGenerator{}, nopRecorder{}, 0, 0)

	d, err := svc.ApplyTemplate(context.Background(), &stubApplier{result: "existing\n\nFINDINGS:\nnew"}, "tpl", "u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Text != "existing\n\nFINDINGS:\nnew" {
		t.Errorf("unexpected draft: %q", d.Text)
	}
	if repo.drafts["u"] != d.Text {
		t.Error("applied draft not persisted")
	}
}

func TestApplyTemplate_UnknownTemplateNoWrite(t *testing.T) {
	repo := newMockDraftRepo()
	repo.drafts["u"] = "existing"
	repo.putErr = errors.New("should not write")
	svc := NewService(repo, &stubGenerator{}, nopRecorder{}, 0, 0)

	d, err := svc.ApplyTemplate(context.Background(), &stubApplier{}, "missing", "u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Text != "existing" {
		t.Errorf("draft changed: %q", d.Text)
	}
}

func TestAssembleAlwaysPassesImpressionCheck(t *testing.T) {
	svc := NewService(newMockDraftRepo(), &stubGenerator{}, nopRecorder{}, 0, 0)

	drafts := []string{
		"",
		"FINDINGS:\nNo findings.",
		"free text with nothing structured",
		"IMPRESSION:\nalready here",
	}
	for _, draft := range drafts {
		r := svc.Assemble(PatientInfo{}, TechniqueInfo{Modality: "CT", Contrast: "With contrast"}, draft, "u")
		if !strings.Contains(strings.ToUpper(r.Text), "IMPRESSION") {
			t.Errorf("assembled report lacks IMPRESSION for draft %q:\n%s", draft, r.Text)
		}
	}
}

func TestBuildPrompt_RequiredSections(t *testing.T) {
	p := BuildPrompt(TechniqueInfo{Modality: "MRI", Contrast: "Without contrast"}, "small lesion")

	for _, want := range []string{"TECHNIQUE", "FINDINGS", "IMPRESSION", "small lesion", "Modality: MRI"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q:\n%s", want, p)
		}
	}
}
