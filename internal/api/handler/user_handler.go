package handler

import (
	"net/http"
	"todo_api/internal/api/middleware"
	"todo_api/internal/app/service"
	"todo_api/internal/common"
	"todo_api/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService *service.UserService
	authz       *service.Authorizer
}

func NewUserHandler(userService *service.UserService, authz *service.Authorizer) *UserHandler {
	return &UserHandler{userService: userService, authz: authz}
}

// RegisterRoutes expects to be mounted behind middleware.Authenticator.
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/me", h.me)
	r.With(middleware.RequireRole(h.authz, model.RoleAdmin)).Get("/", h.listUsers)
}

func (h *UserHandler) me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		common.RespondWithAppError(w, common.NewAuthError(common.KindNotAuthenticated, nil))
		return
	}
	user, err := h.userService.GetUser(r.Context(), identity.Username)
	if err != nil {
		common.RespondWithAppError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		common.RespondWithAppError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, users)
}
