package ports

import (
	"context"

	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/domain"
)

// UserRepository defines the persistence contract for identity records.
// Uniqueness of username and email is ultimately enforced by the store's
// unique indexes; the existence checks are pre-flight optimizations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListAll(ctx context.Context) ([]*domain.User, error)
}
