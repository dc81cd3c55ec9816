package service

import (
	"context"

	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/domain"
	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/ports"
)

// IdentityLoader resolves usernames into request principals, mapping the
// stored role set onto granted authorities.
type IdentityLoader struct {
	users ports.UserRepository
}

func NewIdentityLoader(users ports.UserRepository) *IdentityLoader {
	return &IdentityLoader{users: users}
}

// Load fetches the user record and returns its principal. The password hash
// is included so the login path can verify credentials; callers must not
// expose it past the authentication boundary.
func (l *IdentityLoader) Load(ctx context.Context, username string) (*domain.Principal, error) {
	user, err := l.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return &domain.Principal{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Authorities:  user.Authorities(),
	}, nil
}
