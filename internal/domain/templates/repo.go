package templates

import "context"

// TemplateRepository persists templates keyed by name. Get returns
// (nil, nil) when the name is unknown; Save overwrites silently.
type TemplateRepository interface {
	Save(ctx context.Context, t *Template) error
	Get(ctx context.Context, name string) (*Template, error)
	ListByOwner(ctx context.Context, owner string) ([]*Template, error)
	ListAll(ctx context.Context) ([]*Template, error)
	IncrementUsage(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) error
}
