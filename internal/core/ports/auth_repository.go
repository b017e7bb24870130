package ports

import (
	"context"

	"github.com/cargotrack/cargo-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create validates the record against the store schema and inserts it.
	// A username or email collision yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// ExistsByUsernameOrEmail performs the single existence check covering
	// both unique fields.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
