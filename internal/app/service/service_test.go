package service

import (
	"context"
	"testing"
	"time"
	"todo_api/internal/common/security"
	"todo_api/internal/domain/repository"
	"todo_api/internal/platform/database"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	db         *database.MemoryDB
	hasher     security.PasswordHasher
	tokens     *security.TokenService
	userRepo   repository.UserRepository
	auth       *AuthService
	users      *UserService
	todos      *TodoService
	authorizer *Authorizer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := database.NewMemoryDB()
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, database.SeedDemoUsers(db, hasher))

	tokens, err := security.NewTokenService(security.TokenConfig{
		Secret:     []byte("test-secret"),
		Algorithm:  "HS256",
		AccessTTL:  30 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	})
	require.NoError(t, err)

	userRepo := repository.NewMemUserRepository(db)
	return &testEnv{
		db:         db,
		hasher:     hasher,
		tokens:     tokens,
		userRepo:   userRepo,
		auth:       NewAuthService(userRepo, hasher, tokens),
		users:      NewUserService(userRepo, hasher),
		todos:      NewTodoService(repository.NewMemTodoRepository(db)),
		authorizer: NewAuthorizer(tokens, userRepo),
	}
}

func (e *testEnv) login(t *testing.T, username, password string) *TokenResponse {
	t.Helper()
	resp, err := e.auth.Login(context.Background(), LoginRequest{Username: username, Password: password})
	require.NoError(t, err)
	return resp
}
