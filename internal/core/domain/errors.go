package domain

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("no token provided")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token has expired")
	ErrForbidden          = errors.New("admin access required")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrMenuItemNotFound   = errors.New("item not found")
	ErrMessageNotFound    = errors.New("message not found")
	ErrInvalidCategory    = errors.New("invalid table name")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// ValidationError reports rejected input. Reason is shown to the client as-is.
type ValidationError struct {
	Reason string
}

// Invalid returns a ValidationError with the given client-facing reason.
func Invalid(reason string) error {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string { return e.Reason }

// Is makes every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
