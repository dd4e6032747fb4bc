package ports

import (
	"context"

	"github.com/cedarhouse/restaurant-api/internal/core/domain"
)

// UserRepository is the credential store.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no user has that email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns domain.ErrUserNotFound when the row is gone.
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// ExistsByEmailOrUsername reports whether either unique field is taken.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	// Create inserts the user and returns it with its generated ID.
	// A unique violation is reported as domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// SetAdmin flips the admin flag for the user with that email.
	SetAdmin(ctx context.Context, email string, isAdmin bool) error
	Count(ctx context.Context) (int64, error)
}

// LoginThrottle tracks failed logins per email.
type LoginThrottle interface {
	Blocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
