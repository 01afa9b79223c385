package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms-backend/internal/domains/user"
	"cms-backend/pkg/cache"
	"cms-backend/pkg/jwt"
)

type memoryRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]user.User
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{users: make(map[uuid.UUID]user.User)}
}

func (r *memoryRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = *u
	stored := r.users[u.ID]
	return &stored, nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &stored, nil
}

func (r *memoryRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			stored := u
			return &stored, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *memoryRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *memoryRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	return nil
}

func newTestService(t *testing.T) (user.Service, *memoryRepository, *jwt.Manager) {
	t.Helper()
	repo := newMemoryRepository()
	manager := jwt.NewManager("test-secret", 15, 72)
	svc := NewUserService(repo, manager, cache.NewMemory())
	return svc, repo, manager
}

func registerAndLogin(t *testing.T, svc user.Service) *user.LoginResponse {
	t.Helper()
	ctx := context.Background()

	_, err := svc.Register(ctx, user.RegisterRequest{
		Email:    "mod@example.com",
		Password: "correct-horse",
		FullName: "Mod Erator",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, user.LoginRequest{
		Email:    "mod@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	return resp
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	req := user.RegisterRequest{
		Email:    "mod@example.com",
		Password: "correct-horse",
		FullName: "Mod Erator",
	}
	created, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "moderator", created.Role, "accounts start as moderators")

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t)
	registerAndLogin(t, svc)

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "mod@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestRefresh_IssuesNewTokenPair(t *testing.T) {
	svc, _, manager := newTestService(t)
	login := registerAndLogin(t, svc)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)

	// The new access token must validate and carry the same identity.
	claims, err := manager.ValidateAccessToken(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, login.User.ID.String(), claims.UserID)
	assert.Equal(t, "moderator", claims.Role)

	// The new refresh token is itself usable.
	_, err = manager.ValidateRefreshToken(refreshed.RefreshToken)
	assert.NoError(t, err)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc, _, _ := newTestService(t)
	login := registerAndLogin(t, svc)

	// An access token is not a refresh token, even though both are
	// signed with the same key.
	_, err := svc.Refresh(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, user.ErrInvalidRefreshToken)
}

func TestRefresh_RejectsGarbage(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, user.ErrInvalidRefreshToken)
}

func TestRefresh_DeactivatedAccount(t *testing.T) {
	svc, repo, _ := newTestService(t)
	login := registerAndLogin(t, svc)

	repo.mu.Lock()
	u := repo.users[login.User.ID]
	u.IsActive = false
	repo.users[login.User.ID] = u
	repo.mu.Unlock()

	_, err := svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, user.ErrUserInactive)
}
