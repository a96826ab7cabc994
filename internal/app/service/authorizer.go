package service

import (
	"context"
	"errors"
	"fmt"
	"todo_api/internal/common"
	"todo_api/internal/common/security"
	"todo_api/internal/domain/model"
	"todo_api/internal/domain/repository"
)

// Authorizer resolves the caller behind a bearer token and enforces role and
// scope policy. It has no state of its own beyond read-only collaborators.
type Authorizer struct {
	tokens   *security.TokenService
	userRepo repository.UserRepository
}

func NewAuthorizer(tokens *security.TokenService, userRepo repository.UserRepository) *Authorizer {
	return &Authorizer{tokens: tokens, userRepo: userRepo}
}

// ResolveBearerIdentity accepts access tokens only.
func (a *Authorizer) ResolveBearerIdentity(ctx context.Context, token string) (*model.Identity, error) {
	if token == "" {
		return nil, common.NewAuthError(common.KindNotAuthenticated, nil)
	}
	claims, err := a.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	if claims.IsRefresh() {
		return nil, common.NewAuthError(common.KindInvalidToken, errors.New("refresh token used as access token"))
	}
	if claims.Subject == "" {
		return nil, common.NewAuthError(common.KindMissingIdentity, nil)
	}
	return &model.Identity{
		Username: claims.Subject,
		Role:     claims.Role,
		Scopes:   claims.Scopes,
	}, nil
}

// RequireRole checks the role stored for the user, not the one in the token.
func (a *Authorizer) RequireRole(ctx context.Context, requiredRole string, identity *model.Identity) error {
	if identity == nil {
		return common.NewAuthError(common.KindNotAuthenticated, nil)
	}
	user, err := a.userRepo.FindByUsername(ctx, identity.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewAuthError(common.KindForbidden, fmt.Errorf("user %q not found", identity.Username))
		}
		return fmt.Errorf("failed to look up role: %w", err)
	}
	if user.Disabled || user.Role != requiredRole {
		return common.NewAuthError(common.KindForbidden, nil)
	}
	return nil
}

func (a *Authorizer) RequireScopes(identity *model.Identity, scopes ...string) error {
	if identity == nil {
		return common.NewAuthError(common.KindNotAuthenticated, nil)
	}
	for _, scope := range scopes {
		if !identity.HasScope(scope) {
			return common.NewAuthError(common.KindForbidden, fmt.Errorf("missing scope %q", scope))
		}
	}
	return nil
}
