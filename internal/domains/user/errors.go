package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Service-level (business logic) errors
var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserInactive        = errors.New("user account is inactive")
	ErrTooManyAttempts     = errors.New("too many login attempts, please try again later")
	ErrInvalidRefreshToken = errors.New("refresh token is invalid or expired")
)

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return 404
	case errors.Is(err, ErrEmailAlreadyExists):
		return 409
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidRefreshToken):
		return 401
	case errors.Is(err, ErrUserInactive):
		return 403
	case errors.Is(err, ErrTooManyAttempts):
		return 429
	default:
		return 500
	}
}
