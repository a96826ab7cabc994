package middleware

import (
	"context"
	"net/http"
	"todo_api/internal/app/service"
	"todo_api/internal/common"
	"todo_api/internal/common/security"
	"todo_api/internal/domain/model"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	IdentityCtxKey      contextKey = "identity"
	BasicUsernameCtxKey contextKey = "basicUsername"
)

// Authenticator resolves the bearer token into an Identity and stores it in the request context.
func Authenticator(authz *service.Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := jwtauth.TokenFromHeader(r)
			identity, err := authz.ResolveBearerIdentity(r.Context(), token)
			if err != nil {
				common.RespondWithAppError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireRole must run after Authenticator.
func RequireRole(authz *service.Authorizer, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, _ := IdentityFromContext(r.Context())
			if err := authz.RequireRole(r.Context(), role, identity); err != nil {
				common.RespondWithAppError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func RequireScope(authz *service.Authorizer, scopes ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, _ := IdentityFromContext(r.Context())
			if err := authz.RequireScopes(identity, scopes...); err != nil {
				common.RespondWithAppError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// BasicAuth guards a route with the fixed Basic credentials. A missing or
// malformed header gets the same challenge as a wrong password.
func BasicAuth(gate *security.BasicAuthGate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok {
				common.RespondWithAppError(w, common.NewAuthError(common.KindNotAuthenticated, nil).WithChallenge(gate.Challenge()))
				return
			}
			user, err := gate.Authenticate(username, password)
			if err != nil {
				common.RespondWithAppError(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), BasicUsernameCtxKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithIdentity(ctx context.Context, identity *model.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// Helper to get the caller from context
func IdentityFromContext(ctx context.Context) (*model.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(*model.Identity)
	return identity, ok && identity != nil
}

// Helper to get the Basic-authenticated username from context
func BasicUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(BasicUsernameCtxKey).(string)
	return username, ok
}
