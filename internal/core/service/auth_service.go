package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/domain"
	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/ports"
)

// AuthService implements registration and login on top of the password hasher,
// token codec, and user repository.
type AuthService struct {
	users    ports.UserRepository
	identity ports.IdentityLoader
	hasher   ports.PasswordHasher
	tokens   ports.TokenCodec
	throttle ports.LoginThrottle
	audit    ports.AuditRecorder
	tokenTTL time.Duration
	logger   zerolog.Logger
}

// NewAuthService wires the service. Throttle and audit are optional; a nil
// throttle disables failed-login limiting and a nil audit recorder drops
// audit events.
func NewAuthService(
	users ports.UserRepository,
	identity ports.IdentityLoader,
	hasher ports.PasswordHasher,
	tokens ports.TokenCodec,
	throttle ports.LoginThrottle,
	audit ports.AuditRecorder,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:    users,
		identity: identity,
		hasher:   hasher,
		tokens:   tokens,
		throttle: throttle,
		audit:    audit,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// Register creates a user and returns a token carrying the full computed
// authority set. The ExistsByUsername check is an early out; the unique index
// on the users collection is the race-free guarantee, surfacing as
// ErrUserExists from Create.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return "", domain.ErrValidation
	}

	exists, err := s.users.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return "", err
	}
	if exists {
		s.recordAudit(domain.AuditActionRegister, input.Username, false, "username taken")
		return "", domain.ErrUserExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Roles:        domain.ParseRoles(input.Roles),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			s.recordAudit(domain.AuditActionRegister, input.Username, false, "username taken")
		}
		return "", err
	}

	token, err := s.tokens.Issue(created.Username, created.Authorities(), s.tokenTTL)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered")
	s.recordAudit(domain.AuditActionRegister, created.Username, true, "")
	return token, nil
}

// Login verifies credentials and returns a token embedding the user's
// authorities. Unknown user and wrong password both surface as
// ErrInvalidCredentials so callers cannot tell which check failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		limited, err := s.throttle.TooManyFailures(ctx, username)
		if err != nil {
			s.logger.Warn().Err(err).Msg("login throttle check failed")
		} else if limited {
			return "", domain.ErrTooManyAttempts
		}
	}

	principal, err := s.identity.Load(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.failLogin(ctx, username, "unknown user")
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, principal.PasswordHash) {
		s.failLogin(ctx, username, "bad password")
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(principal.Username, principal.Authorities, s.tokenTTL)
	if err != nil {
		return "", err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	s.logger.Info().Str("username", username).Msg("user logged in")
	s.recordAudit(domain.AuditActionLogin, username, true, "")
	return token, nil
}

func (s *AuthService) failLogin(ctx context.Context, username, reason string) {
	if s.throttle != nil {
		if err := s.throttle.RecordFailure(ctx, username); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle record failed")
		}
	}
	s.recordAudit(domain.AuditActionLogin, username, false, reason)
}

func (s *AuthService) recordAudit(action, username string, success bool, reason string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		Username:  username,
		Action:    action,
		Success:   success,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	})
}
