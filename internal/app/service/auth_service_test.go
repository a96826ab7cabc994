package service

import (
	"context"
	"strings"
	"testing"
	"todo_api/internal/common"
	"todo_api/internal/common/security"
	"todo_api/internal/domain/model"
	"todo_api/internal/platform/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	resp := env.login(t, "alice", "wonderland")
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 30*60, resp.ExpiresIn)
	assert.NotEmpty(t, resp.RefreshToken)
	require.NotNil(t, resp.Info)
	assert.Equal(t, "Alice Sharpe", resp.Info.Name)
	assert.Equal(t, "asharpe@example.com", resp.Info.Email)

	claims, err := env.tokens.Verify(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, model.RoleUser, claims.Role)
	assert.False(t, claims.IsRefresh())

	refreshClaims, err := env.tokens.Verify(resp.RefreshToken)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefresh())
}

func TestAuthService_Login_Failures(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.db.Update(func(tb *database.Tables) error {
		tb.Users = append(tb.Users, &model.User{
			ID:             tb.NextUserID,
			Username:       "ghost",
			HashedPassword: mustHash(t, env, "boo"),
			Role:           model.RoleUser,
			Disabled:       true,
		})
		tb.NextUserID++
		return nil
	}))

	tests := []struct {
		name, username, password string
	}{
		{"wrong password", "alice", "WONDERLAND"},
		{"unknown user", "mallory", "wonderland"},
		{"disabled user", "ghost", "boo"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.auth.Login(ctx, LoginRequest{Username: tc.username, Password: tc.password})
			require.Error(t, err)
			assert.True(t, common.IsAuthKind(err, common.KindInvalidCredentials), "got %v", err)
		})
	}

	_, err := env.auth.Login(ctx, LoginRequest{Username: "alice"})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestAuthService_Refresh(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	login := env.login(t, "admin", "secret")

	for range 2 {
		resp, err := env.auth.Refresh(ctx, RefreshRequest{RefreshToken: login.RefreshToken})
		require.NoError(t, err)
		assert.Empty(t, resp.RefreshToken)
		assert.Nil(t, resp.Info)

		claims, err := env.tokens.Verify(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Subject)
		assert.Equal(t, model.RoleAdmin, claims.Role)
	}

	_, err := env.auth.Refresh(ctx, RefreshRequest{RefreshToken: login.AccessToken})
	assert.True(t, common.IsAuthKind(err, common.KindInvalidToken))

	_, err = env.auth.Refresh(ctx, RefreshRequest{})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func mustHash(t *testing.T, env *testEnv, password string) string {
	t.Helper()
	h, err := env.hasher.Hash(password)
	require.NoError(t, err)
	return h
}

// recordingHasher counts Verify calls and the hashes they were given.
type recordingHasher struct {
	security.PasswordHasher
	verified []string
}

func (h *recordingHasher) Verify(plaintext, hash string) bool {
	h.verified = append(h.verified, hash)
	return h.PasswordHasher.Verify(plaintext, hash)
}

func TestAuthService_Login_UnknownUserStillHashes(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	hasher := &recordingHasher{PasswordHasher: env.hasher}
	auth := NewAuthService(env.userRepo, hasher, env.tokens)

	_, err := auth.Login(context.Background(), LoginRequest{Username: "mallory", Password: "wonderland"})
	require.Error(t, err)
	assert.True(t, common.IsAuthKind(err, common.KindInvalidCredentials))

	require.Len(t, hasher.verified, 1)
	assert.NotEmpty(t, hasher.verified[0])
	assert.True(t, strings.HasPrefix(hasher.verified[0], "$2"), "compared against a real bcrypt hash")
}
