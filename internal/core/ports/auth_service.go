package ports

import (
	"context"

	"github.com/cedarhouse/restaurant-api/internal/core/domain"
)

// Session is a freshly issued token plus the public view of its owner.
type Session struct {
	Token string
	User  domain.PublicUser
}

// TokenVerifier is the gate used by the auth middleware.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}

type AuthService interface {
	TokenVerifier
	SignUp(ctx context.Context, username, email, password string) (*Session, error)
	LogIn(ctx context.Context, email, password string) (*Session, error)
	// CurrentUser re-reads the user behind a verified token.
	CurrentUser(ctx context.Context, userID int64) (domain.PublicUser, error)
}
