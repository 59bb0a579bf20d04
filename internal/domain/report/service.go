package report

import (
	"context"
	"fmt"
	"io"
	"time"
)

// TextGenerator is the external text-generation collaborator: a prompt
// in, plain text out. Implementations are expected to respect context
// cancellation.
type TextGenerator interface {
	Generate(ctx context.Context, system, prompt string, maxTokens int) (string, error)
}

// ActionRecorder receives audit-trail events for user actions.
type ActionRecorder interface {
	Record(ctx context.Context, user, action, details string)
}

// TemplateApplier renders a named template onto draft text.
type TemplateApplier interface {
	Apply(ctx context.Context, name, draft, user string) (string, error)
}

type Service struct {
	drafts    DraftRepository
	gen       TextGenerator
	trail     ActionRecorder
	maxTokens int
	timeout   time.Duration
}

func NewService(drafts DraftRepository, gen TextGenerator, trail ActionRecorder, maxTokens int, timeout time.Duration) *Service {
	if maxTokens <= 0 {
		maxTokens = 1500
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Service{drafts: drafts, gen: gen, trail: trail, maxTokens: maxTokens, timeout: timeout}
}

func (s *Service) GetDraft(ctx context.Context, owner string) (*Draft, error) {
	return s.drafts.Get(ctx, owner)
}

func (s *Service) SaveDraft(ctx context.Context, owner, text string) (*Draft, error) {
	d := &Draft{Owner: owner, Text: text}
	if err := s.drafts.Put(ctx, d); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	s.trail.Record(ctx, owner, "draft_save", fmt.Sprintf("chars: %d", len(text)))
	return d, nil
}

func (s *Service) ClearDraft(ctx context.Context, owner string) error {
	if err := s.drafts.Delete(ctx, owner); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	s.trail.Record(ctx, owner, "draft_clear", "")
	return nil
}

// ApplyTemplate runs the template onto the user's stored draft and
// persists the result as the new draft.
func (s *Service) ApplyTemplate(ctx context.Context, applier TemplateApplier, name, owner string) (*Draft, error) {
	d, err := s.drafts.Get(ctx, owner)
	if err != nil {
		return nil, err
	}
	applied, err := applier.Apply(ctx, name, d.Text, owner)
	if err != nil {
		return nil, err
	}
	if applied == d.Text {
		return d, nil
	}
	d.Text = applied
	if err := s.drafts.Put(ctx, d); err != nil {
		return nil, fmt.Errorf("save applied draft: %w", err)
	}
	return d, nil
}

// Assemble builds the canonical report text from the given context and
// draft. Pure aside from the timestamp.
func (s *Service) Assemble(patient PatientInfo, technique TechniqueInfo, draft, user string) AssembledReport {
	if technique.Modality == "" {
		technique.Modality = "MRI"
	}
	return Assemble(patient, technique, draft, user)
}

// Generate sends the draft findings to the text-generation collaborator
// under a deadline. An empty draft short-circuits to an empty report with
// no external call. Generator failure leaves all state untouched.
func (s *Service) Generate(ctx context.Context, technique TechniqueInfo, draft, user string) (string, error) {
	if draft == "" {
		return "", nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.gen.Generate(ctx, GenerateSystemPrompt, BuildPrompt(technique, draft), s.maxTokens)
	if err != nil {
		return "", fmt.Errorf("generate report: %w", err)
	}
	s.trail.Record(ctx, user, "ai_generate", fmt.Sprintf("chars: %d", len(draft)))
	return text, nil
}

// Batch fills templateText from CSV rows.
func (s *Service) Batch(ctx context.Context, csv io.Reader, templateText, user string) ([]BatchResult, error) {
	results, err := FillBatch(csv, templateText)
	if err != nil {
		return nil, err
	}
	s.trail.Record(ctx, user, "batch_process", fmt.Sprintf("rows: %d", len(results)))
	return results, nil
}
