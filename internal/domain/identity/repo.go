package identity

import "context"

// UserRepository persists accounts. Get returns (nil, nil) for unknown
// usernames.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	Get(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

// AuditLogRepository is the append-only audit trail.
type AuditLogRepository interface {
	Append(ctx context.Context, e *AuditLogEntry) error
	List(ctx context.Context, limit, offset int) ([]*AuditLogEntry, int, error)
}
