package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cedarhouse/restaurant-api/internal/core/domain"
	"github.com/cedarhouse/restaurant-api/internal/core/ports"
)

// AuthService implements signup, login and token verification.
type AuthService struct {
	repo      ports.UserRepository
	throttle  ports.LoginThrottle
	tokens    *tokenSigner
	hashCost  int
	dummyHash []byte
	log       zerolog.Logger
}

// NewAuthService wires the credential store and signing secret. A nil throttle
// disables login throttling.
func NewAuthService(repo ports.UserRepository, throttle ports.LoginThrottle, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = domain.SessionTTL
	}
	if throttle == nil {
		throttle = noopThrottle{}
	}
	s := &AuthService{
		repo:     repo,
		throttle: throttle,
		tokens:   newTokenSigner(jwtSecret, tokenTTL),
		hashCost: bcrypt.DefaultCost,
		log:      log,
	}
	// Compared against when the email is unknown so both failure paths cost one bcrypt check.
	s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("unknown-user-placeholder"), s.hashCost)
	return s
}

func (s *AuthService) SignUp(ctx context.Context, username, email, password string) (*ports.Session, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.Invalid("All fields are required")
	}
	if utf8.RuneCountInString(password) < domain.MinPasswordLength {
		return nil, domain.Invalid(fmt.Sprintf("Password must be at least %d characters", domain.MinPasswordLength))
	}
	if len(password) > domain.MaxPasswordBytes {
		return nil, domain.Invalid(fmt.Sprintf("Password must be at most %d bytes", domain.MaxPasswordBytes))
	}
	if !strings.Contains(email, "@") {
		return nil, domain.Invalid("Invalid email address")
	}

	taken, err := s.repo.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	if taken {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("signup: hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      false,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("signup: %w", err)
	}

	token, err := s.tokens.issue(user)
	if err != nil {
		return nil, fmt.Errorf("signup: sign token: %w", err)
	}

	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user signed up")
	return &ports.Session{Token: token, User: user.Public()}, nil
}

func (s *AuthService) LogIn(ctx context.Context, email, password string) (*ports.Session, error) {
	if email == "" || password == "" {
		return nil, domain.Invalid("Email and password required")
	}

	blocked, err := s.throttle.Blocked(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Msg("login throttle check failed, continuing")
	} else if blocked {
		return nil, domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("login: %w", err)
	}

	hash := s.dummyHash
	if user != nil {
		hash = []byte(user.PasswordHash)
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil || user == nil {
		if ferr := s.throttle.RecordFailure(ctx, email); ferr != nil {
			s.log.Warn().Err(ferr).Msg("failed to record login failure")
		}
		return nil, domain.ErrInvalidCredentials
	}

	if rerr := s.throttle.Reset(ctx, email); rerr != nil {
		s.log.Warn().Err(rerr).Msg("failed to reset login throttle")
	}

	token, err := s.tokens.issue(user)
	if err != nil {
		return nil, fmt.Errorf("login: sign token: %w", err)
	}
	return &ports.Session{Token: token, User: user.Public()}, nil
}

// Verify checks signature and expiry. It never touches the store.
func (s *AuthService) Verify(token string) (*domain.Claims, error) {
	return s.tokens.verify(token)
}

func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (domain.PublicUser, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.PublicUser{}, err
		}
		return domain.PublicUser{}, fmt.Errorf("verify: %w", err)
	}
	return user.Public(), nil
}

type noopThrottle struct{}

func (noopThrottle) Blocked(context.Context, string) (bool, error) { return false, nil }
func (noopThrottle) RecordFailure(context.Context, string) error   { return nil }
func (noopThrottle) Reset(context.Context, string) error           { return nil }
