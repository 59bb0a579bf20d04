package templates

import (
	"context"
	"testing"
)

type mockTemplateRepo struct {
	byName    map[string]*Template
	saveErr   error
	usageErrs map[string]error
}

func newMockTemplateRepo() *mockTemplateRepo {
	return &mockTemplateRepo{byName: make(map[string]*Template)}
}

func (m *mockTemplateRepo) Save(ctx context.Context, t *Template) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	cp := *t
	m.byName[t.Name] = &cp
	return nil
}

func (m *mockTemplateRepo) Get(ctx context.Context, name string) (*Template, error) {
	t, ok := m.byName[name]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (m *mockTemplateRepo) ListByOwner(ctx context.Context, owner string) ([]*Template, error) {
	var out []*Template
	for _, t := range m.byName {
		if t.Owner == owner {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTemplateRepo) ListAll(ctx context.Context) ([]*Template, error) {
	var out []*Template
	for _, t := range m.byName {
		out = append(out, t)
	}
	return out, nil
}

func (m *mockTemplateRepo) IncrementUsage(ctx context.Context, name string) error {
	if err := m.usageErrs[name]; err != nil {
		return err
	}
	if t, ok := m.byName[name]; ok {
		t.UsageCount++
	}
	return nil
}

func (m *mockTemplateRepo) Delete(ctx context.Context, name string) error {
	delete(m.byName, name)
	return nil
}

type noopRecorder struct{ events []string }

func (r *noopRecorder) Record(ctx context.Context, user, action, details string) {
	r.events = append(r.events, action+":"+details)
}

func newTestService() (*Service, *mockTemplateRepo, *noopRecorder) {
	repo := newMockTemplateRepo()
	trail := &noopRecorder{}
	return NewService(repo, trail), repo, trail
}

func TestApply_UnknownNameReturnsDraftUnchanged(t *testing.T) {
	svc, _, _ := newTestService()

	draft := "FINDINGS:\nStable appearance."
	got, err := svc.Apply(context.Background(), "no-such-template", draft, "neuro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != draft {
		t.Errorf("expected draft unchanged, got %q", got)
	}
}

func TestApply_AppendsHeadingBlock(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.byName["normal brain"] = &Template{
		Name: "normal brain", Content: "No acute intracranial abnormality.",
		SectionType: SectionFindings, Owner: "neuro",
	}

	got, err := svc.Apply(context.Background(), "normal brain", "CLINICAL HISTORY:\nHeadache.", "neuro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "CLINICAL HISTORY:\nHeadache.\n\nFINDINGS:\nNo acute intracranial abnormality."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApply_EmptyDraftGetsBlockOnly(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.byName["contrast mri"] = &Template{
		Name: "contrast mri", Content: "MRI with and without contrast.",
		SectionType: SectionTechnique,
	}

	got, err := svc.Apply(context.Background(), "contrast mri", "", "neuro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "TECHNIQUE:\nMRI with and without contrast." {
		t.Errorf("unexpected result: %q", got)
	}
}

func TestApply_IncrementsUsageByExactlyOne(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.byName["tpl"] = &Template{Name: "tpl", Content: "x", SectionType: SectionFindings}

	for i := 1; i <= 2; i++ {
		if _, err := svc.Apply(context.Background(), "tpl", "draft", "u"); err != nil {
			t.Fatalf("apply %d: %v", i, err)
		}
		if got := repo.byName["tpl"].UsageCount; got != i {
			t.Errorf("after %d applies usage_count = %d", i, got)
		}
	}
}

func TestHeading_UnknownSectionTypeUsesName(t *testing.T) {
	tpl := &Template{Name: "pediatric addendum", SectionType: "addendum"}
	if got := tpl.Heading(); got != "PEDIATRIC ADDENDUM" {
		t.Errorf("got %q", got)
	}
}

func TestHeading_CanonicalLookup(t *testing.T) {
	tests := []struct {
		section SectionType
		want    string
	}{
		{SectionTechnique, "TECHNIQUE"},
		{SectionFindings, "FINDINGS"},
		{SectionImpression, "IMPRESSION"},
		{SectionClinical, "CLINICAL HISTORY"},
		{SectionDifferential, "DIFFERENTIAL DIAGNOSIS"},
		{SectionComparison, "COMPARISON"},
	}
	for _, tt := range tests {
		tpl := &Template{Name: "x", SectionType: tt.section}
		if got := tpl.Heading(); got != tt.want {
			t.Errorf("Heading(%s) = %q, want %q", tt.section, got, tt.want)
		}
	}
}

func TestSave_OverwritesSilently(t *testing.T) {
	svc, repo, _ := newTestService()

	if _, err := svc.Save(context.Background(), "tpl", "first", SectionFindings, "neuro"); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if _, err := svc.Save(context.Background(), "tpl", "second", SectionImpression, "msk"); err != nil {
		t.Fatalf("second save: %v", err)
	}

	stored := repo.byName["tpl"]
	if stored.Content != "second" || stored.Owner != "msk" {
		t.Errorf("expected last write to win, got %+v", stored)
	}
}

func TestSave_RejectsEmptyName(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.Save(context.Background(), "  ", "content", SectionFindings, "u"); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestDelete_RecordsAuditEvent(t *testing.T) {
	svc, repo, trail := newTestService()
	repo.byName["tpl"] = &Template{Name: "tpl"}

	if err := svc.Delete(context.Background(), "tpl", "admin"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := repo.byName["tpl"]; ok {
		t.Error("template still present after delete")
	}
	found := false
	for _, e := range trail.events {
		if e == "template_delete:tpl" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected audit event, got %v", trail.events)
	}
}
