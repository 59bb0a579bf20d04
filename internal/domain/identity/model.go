package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// User is an account that can author reports.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	Specialty    string    `db:"specialty" json:"specialty"`
	Signature    string    `db:"signature" json:"signature"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// HashPassword hex-encodes the SHA-256 digest of a password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckPassword reports whether password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return u.PasswordHash == HashPassword(password)
}

// AuditLogEntry is one append-only record of a user action.
type AuditLogEntry struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
	User      string    `db:"username" json:"user"`
	Action    string    `db:"action" json:"action"`
	Details   string    `db:"details" json:"details"`
	IP        string    `db:"ip" json:"ip"`
}
