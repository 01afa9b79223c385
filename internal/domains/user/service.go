package user

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the account operations the admin panel needs.
type Service interface {
	// Register creates a new moderator account. Accounts start with
	// the moderator role; promotion to admin is a database operation.
	// Errors: ErrEmailAlreadyExists, validation errors
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Login verifies credentials and issues access/refresh tokens.
	// Failed attempts are throttled per email via the cache.
	// Errors: ErrInvalidCredentials, ErrUserInactive, ErrTooManyAttempts
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// Refresh exchanges a valid refresh token for a fresh token pair.
	// The account is re-checked so a deactivated user cannot keep
	// minting access tokens.
	// Errors: ErrInvalidRefreshToken, ErrUserInactive
	Refresh(ctx context.Context, refreshToken string) (*LoginResponse, error)

	// GetByID retrieves an account.
	// Errors: ErrUserNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}

// Repository defines data access for accounts.
type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}
