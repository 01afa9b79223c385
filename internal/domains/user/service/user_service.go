package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"cms-backend/internal/domains/user"
	"cms-backend/pkg/cache"
	"cms-backend/pkg/jwt"
	"cms-backend/pkg/logger"
)

const (
	// bcrypt cost 12: balance between security and latency
	bcryptCost = 12

	maxFailedLogins    = 5
	failedLoginsWindow = 15 * time.Minute
)

type UserService struct {
	repo  user.Repository
	jwt   *jwt.Manager
	cache cache.Cache
}

func NewUserService(repo user.Repository, jwtManager *jwt.Manager, c cache.Cache) user.Service {
	return &UserService{
		repo:  repo,
		jwt:   jwtManager,
		cache: c,
	}
}

func (s *UserService) Register(ctx context.Context, req user.RegisterRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, user.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &user.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         "moderator",
		IsActive:     true,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("user registered", map[string]interface{}{
		"user_id": created.ID.String(),
	})
	return created, nil
}

func (s *UserService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	throttleKey := "auth:failed:" + req.Email
	if n, err := s.cache.GetInt64(ctx, throttleKey); err == nil && n >= maxFailedLogins {
		return nil, user.ErrTooManyAttempts
	}

	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same answer as a wrong password: do not leak which
			// emails have accounts.
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	// Constant-time comparison
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		s.recordFailedLogin(ctx, throttleKey)
		return nil, user.ErrInvalidCredentials
	}

	if !u.IsActive {
		return nil, user.ErrUserInactive
	}

	access, err := s.jwt.GenerateAccessToken(u.ID.String(), u.Email, u.Role)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.jwt.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	if err := s.repo.TouchLastLogin(ctx, u.ID); err != nil {
		logger.Error("touch last login failed", err)
	}
	if err := s.cache.Delete(ctx, throttleKey); err != nil {
		logger.Error("reset login throttle failed", err)
	}

	return &user.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         *u,
	}, nil
}

func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*user.LoginResponse, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, user.ErrInvalidRefreshToken
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidRefreshToken
	}

	// Re-check the account: the token may outlive a deactivation.
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidRefreshToken
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, user.ErrUserInactive
	}

	access, err := s.jwt.GenerateAccessToken(u.ID.String(), u.Email, u.Role)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.jwt.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &user.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         *u,
	}, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) recordFailedLogin(ctx context.Context, key string) {
	n, err := s.cache.Increment(ctx, key)
	if err != nil {
		logger.Error("record failed login", err)
		return
	}
	if n == 1 {
		if err := s.cache.Expire(ctx, key, failedLoginsWindow); err != nil {
			logger.Error("set login throttle window", err)
		}
	}
}
