package history

import (
	"context"

	"github.com/google/uuid"
)

// EntryRepository persists history snapshots newest-first.
type EntryRepository interface {
	Append(ctx context.Context, e *Entry) error
	List(ctx context.Context, owner string, limit, offset int) ([]*Entry, int, error)
	ListAll(ctx context.Context, limit, offset int) ([]*Entry, int, error)
	Delete(ctx context.Context, id uuid.UUID, owner string) error
}
