package ports

import (
	"context"
	"time"

	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/domain"
)

// RegisterInput is the DTO passed from the transport layer to AuthService.
// Roles carries the raw role strings requested at sign-up; unknown values
// coerce to USER, and an empty list yields the default role set.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Roles    []string
}

// AuthService orchestrates registration and login. Both paths return a signed
// bearer token embedding the user's full granted-authority set.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// IdentityLoader resolves a username into its request principal.
type IdentityLoader interface {
	Load(ctx context.Context, username string) (*domain.Principal, error)
}

// PasswordHasher is the one-way salted hashing contract.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenCodec creates and validates signed, self-contained bearer tokens.
type TokenCodec interface {
	Issue(subject string, authorities []string, ttl time.Duration) (string, error)
	ExtractSubject(token string) (string, error)
	IsValid(token, expectedSubject string) bool
}

// LoginThrottle limits failed login attempts per username.
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// AuditRecorder accepts authentication audit events for asynchronous persistence.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}
