package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/radreport/radreport/internal/domain/report"
	"github.com/radreport/radreport/internal/domain/templates"
)

const previewLen = 200

// ActionRecorder receives audit-trail events for user actions.
type ActionRecorder interface {
	Record(ctx context.Context, user, action, details string)
}

// TemplateLister provides templates for cross-content search.
type TemplateLister interface {
	ListAll(ctx context.Context) ([]*templates.Template, error)
}

// DraftReader provides the caller's current draft for search.
type DraftReader interface {
	Get(ctx context.Context, owner string) (*report.Draft, error)
}

type Service struct {
	entries EntryRepository
	tpls    TemplateLister
	drafts  DraftReader
	trail   ActionRecorder
}

func NewService(entries EntryRepository, tpls TemplateLister, drafts DraftReader, trail ActionRecorder) *Service {
	return &Service{entries: entries, tpls: tpls, drafts: drafts, trail: trail}
}

// Save appends a snapshot of the current report state.
func (s *Service) Save(ctx context.Context, e *Entry) (*Entry, error) {
	if e.Name == "" {
		return nil, fmt.Errorf("history entry name is required")
	}
	if e.Date == "" {
		e.Date = time.Now().Format("2006-01-02")
	}
	if err := s.entries.Append(ctx, e); err != nil {
		return nil, fmt.Errorf("save history entry: %w", err)
	}
	s.trail.Record(ctx, e.CreatedBy, "history_save", e.Name)
	return e, nil
}

// List returns snapshots newest-first, scoped to the owner unless admin.
func (s *Service) List(ctx context.Context, owner string, isAdmin bool, limit, offset int) ([]*Entry, int, error) {
	if isAdmin {
		return s.entries.ListAll(ctx, limit, offset)
	}
	return s.entries.List(ctx, owner, limit, offset)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID, owner string) error {
	if err := s.entries.Delete(ctx, id, owner); err != nil {
		return fmt.Errorf("delete history entry: %w", err)
	}
	s.trail.Record(ctx, owner, "history_delete", id.String())
	return nil
}

// Search scans history snapshots, template names/contents, and the
// caller's current draft for a case-insensitive substring.
func (s *Service) Search(ctx context.Context, query, owner string, isAdmin bool) (*SearchResults, error) {
	results := &SearchResults{
		Reports:   []*Entry{},
		Templates: []TemplateMatch{},
		Drafts:    []DraftMatch{},
	}
	q := strings.ToLower(query)
	if q == "" {
		return results, nil
	}

	entries, _, err := s.List(ctx, owner, isAdmin, 1000, 0)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Draft), q) ||
			strings.Contains(strings.ToLower(e.Report), q) {
			results.Reports = append(results.Reports, e)
		}
	}

	tpls, err := s.tpls.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tpls {
		if strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.Content), q) {
			results.Templates = append(results.Templates, TemplateMatch{
				Name:    t.Name,
				Preview: truncate(t.Content, previewLen),
			})
		}
	}

	d, err := s.drafts.Get(ctx, owner)
	if err != nil {
		return nil, err
	}
	if d != nil && strings.Contains(strings.ToLower(d.Text), q) {
		results.Drafts = append(results.Drafts, DraftMatch{
			Type:    "current_draft",
			Preview: truncate(d.Text, previewLen),
		})
	}

	return results, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
