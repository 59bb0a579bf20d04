package templates

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ActionRecorder receives audit-trail events for user actions. Recording
// is best-effort; failures never block the action itself.
type ActionRecorder interface {
	Record(ctx context.Context, user, action, details string)
}

type Service struct {
	repo  TemplateRepository
	trail ActionRecorder
}

func NewService(repo TemplateRepository, trail ActionRecorder) *Service {
	return &Service{repo: repo, trail: trail}
}

// Save stores a template, silently overwriting any existing template with
// the same name.
func (s *Service) Save(ctx context.Context, name, content string, sectionType SectionType, owner string) (*Template, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("template name is required")
	}
	t := &Template{
		Name:        name,
		Content:     content,
		SectionType: sectionType,
		Owner:       owner,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("save template %q: %w", name, err)
	}
	s.trail.Record(ctx, owner, "template_save", name)
	return t, nil
}

// Apply appends the named template to draft under its canonical heading.
// Unknown names fail softly: the draft comes back unchanged. Each
// successful apply increments the template's usage count, persisted
// before this call returns.
func (s *Service) Apply(ctx context.Context, name, draft, user string) (string, error) {
	t, err := s.repo.Get(ctx, name)
	if err != nil {
		return "", fmt.Errorf("load template %q: %w", name, err)
	}
	if t == nil {
		return draft, nil
	}
	if err := s.repo.IncrementUsage(ctx, name); err != nil {
		return "", fmt.Errorf("update usage count for %q: %w", name, err)
	}

	block := t.Heading() + ":\n" + t.Content
	s.trail.Record(ctx, user, "template_apply", name)
	if draft == "" {
		return block, nil
	}
	return draft + "\n\n" + block, nil
}

func (s *Service) Get(ctx context.Context, name string) (*Template, error) {
	return s.repo.Get(ctx, name)
}

// ListByOwner returns the owner's templates. Admins see everything.
func (s *Service) ListByOwner(ctx context.Context, owner string, isAdmin bool) ([]*Template, error) {
	if isAdmin {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByOwner(ctx, owner)
}

func (s *Service) Delete(ctx context.Context, name, user string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete template %q: %w", name, err)
	}
	s.trail.Record(ctx, user, "template_delete", name)
	return nil
}

// Recommend suggests templates relevant to the given draft text.
func (s *Service) Recommend(ctx context.Context, text string, limit int) ([]string, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return NewRecommender(all).Recommend(text, limit), nil
}
