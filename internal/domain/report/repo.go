package report

import "context"

// DraftRepository persists per-user working drafts. Get returns an empty
// draft rather than an error when none exists.
type DraftRepository interface {
	Get(ctx context.Context, owner string) (*Draft, error)
	Put(ctx context.Context, d *Draft) error
	Delete(ctx context.Context, owner string) error
}
