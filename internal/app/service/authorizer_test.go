package service

import (
	"context"
	"testing"
	"todo_api/internal/common"
	"todo_api/internal/domain/model"
	"todo_api/internal/platform/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizer_ResolveBearerIdentity(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	login := env.login(t, "alice", "wonderland")

	identity, err := env.authorizer.ResolveBearerIdentity(ctx, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, model.RoleUser, identity.Role)
	assert.True(t, identity.HasScope(model.ScopeWrite))

	_, err = env.authorizer.ResolveBearerIdentity(ctx, "")
	assert.True(t, common.IsAuthKind(err, common.KindNotAuthenticated))

	_, err = env.authorizer.ResolveBearerIdentity(ctx, "garbage")
	assert.True(t, common.IsAuthKind(err, common.KindInvalidToken))

	_, err = env.authorizer.ResolveBearerIdentity(ctx, login.RefreshToken)
	assert.True(t, common.IsAuthKind(err, common.KindInvalidToken), "refresh tokens are not access tokens")

	noSubject, err := env.tokens.IssueAccess("", model.RoleUser, nil)
	require.NoError(t, err)
	_, err = env.authorizer.ResolveBearerIdentity(ctx, noSubject)
	assert.True(t, common.IsAuthKind(err, common.KindMissingIdentity))
}

func TestAuthorizer_RequireRole(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	assert.NoError(t, env.authorizer.RequireRole(ctx, model.RoleAdmin, &model.Identity{Username: "admin"}))

	err := env.authorizer.RequireRole(ctx, model.RoleAdmin, &model.Identity{Username: "alice"})
	assert.ErrorIs(t, err, common.ErrForbidden)

	// The stored role wins over whatever the token claims.
	err = env.authorizer.RequireRole(ctx, model.RoleAdmin, &model.Identity{Username: "alice", Role: model.RoleAdmin})
	assert.ErrorIs(t, err, common.ErrForbidden)

	err = env.authorizer.RequireRole(ctx, model.RoleAdmin, &model.Identity{Username: "deleted"})
	assert.ErrorIs(t, err, common.ErrForbidden)

	err = env.authorizer.RequireRole(ctx, model.RoleAdmin, nil)
	assert.True(t, common.IsAuthKind(err, common.KindNotAuthenticated))

	require.NoError(t, env.db.Update(func(tb *database.Tables) error {
		for _, u := range tb.Users {
			if u.Username == "admin" {
				u.Disabled = true
			}
		}
		return nil
	}))
	err = env.authorizer.RequireRole(ctx, model.RoleAdmin, &model.Identity{Username: "admin"})
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestAuthorizer_RequireScopes(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	reader := &model.Identity{Username: "r", Scopes: []string{model.ScopeRead}}

	assert.NoError(t, env.authorizer.RequireScopes(reader, model.ScopeRead))
	assert.NoError(t, env.authorizer.RequireScopes(reader))
	assert.ErrorIs(t, env.authorizer.RequireScopes(reader, model.ScopeRead, model.ScopeWrite), common.ErrForbidden)
	assert.True(t, common.IsAuthKind(env.authorizer.RequireScopes(nil, model.ScopeRead), common.KindNotAuthenticated))
}
