package identity

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/radreport/radreport/internal/platform/auth"
)

// AuditTrail records user actions to the append-only audit log.
// Recording is best-effort: failures are logged, never propagated, so an
// unavailable trail cannot block the action that triggered it.
type AuditTrail struct {
	repo   AuditLogRepository
	logger zerolog.Logger
}

func NewAuditTrail(repo AuditLogRepository, logger zerolog.Logger) *AuditTrail {
	return &AuditTrail{repo: repo, logger: logger}
}

func (t *AuditTrail) Record(ctx context.Context, user, action, details string) {
	e := &AuditLogEntry{
		User:    user,
		Action:  action,
		Details: details,
		IP:      auth.RemoteIPFromContext(ctx),
	}
	if err := t.repo.Append(ctx, e); err != nil {
		t.logger.Error().Err(err).Str("action", action).Msg("audit trail append failed")
	}
}

func (t *AuditTrail) List(ctx context.Context, limit, offset int) ([]*AuditLogEntry, int, error) {
	return t.repo.List(ctx, limit, offset)
}

type Service struct {
	users  UserRepository
	trail  *AuditTrail
	jwtCfg auth.JWTConfig
}

func NewService(users UserRepository, trail *AuditTrail, jwtCfg auth.JWTConfig) *Service {
	return &Service{users: users, trail: trail, jwtCfg: jwtCfg}
}

// Login verifies credentials and issues a signed token. Failures are
// uniform: callers cannot distinguish a bad username from a bad password.
func (s *Service) Login(ctx context.Context, username, password string) (string, *User, error) {
	u, err := s.users.Get(ctx, username)
	if err != nil {
		return "", nil, fmt.Errorf("load user: %w", err)
	}
	if u == nil || !u.CheckPassword(password) {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	token, err := auth.IssueToken(s.jwtCfg, u.Username, []string{u.Role}, u.Specialty)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	s.trail.Record(ctx, username, "login", "")
	return token, u, nil
}

// CreateUser registers an account with a hashed password.
func (s *Service) CreateUser(ctx context.Context, username, password, role, specialty, signature string) (*User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required")
	}
	if role == "" {
		role = "radiologist"
	}
	u := &User{
		Username:     username,
		PasswordHash: HashPassword(password),
		Role:         role,
		Specialty:    specialty,
		Signature:    signature,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user %q: %w", username, err)
	}
	s.trail.Record(ctx, username, "user_create", "role: "+role)
	return u, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*User, error) {
	return s.users.List(ctx)
}
