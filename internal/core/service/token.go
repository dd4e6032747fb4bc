package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/cedarhouse/restaurant-api/internal/core/domain"
)

// sessionClaims is the JWT payload. Field names match what the web client reads.
type sessionClaims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// tokenSigner issues and verifies HS256 session tokens with a single process-wide secret.
type tokenSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func newTokenSigner(secret string, ttl time.Duration) *tokenSigner {
	return &tokenSigner{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *tokenSigner) issue(user *domain.User) (string, error) {
	now := s.now()
	claims := sessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *tokenSigner) verify(token string) (*domain.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	claims := &sessionClaims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid || claims.UserID <= 0 {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.Claims{
		UserID:   claims.UserID,
		Username: claims.Username,
		IsAdmin:  claims.IsAdmin,
	}, nil
}
