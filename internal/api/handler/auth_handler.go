package handler

import (
	"encoding/json"
	"net/http"
	"todo_api/internal/app/service"
	"todo_api/internal/common"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService *service.AuthService
	userService *service.UserService
	loginGuard  func(http.Handler) http.Handler
}

// NewAuthHandler takes the middleware to wrap the login route with, usually a rate limiter.
func NewAuthHandler(authService *service.AuthService, userService *service.UserService, loginGuard func(http.Handler) http.Handler) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService, loginGuard: loginGuard}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(login chi.Router) {
		if h.loginGuard != nil {
			login.Use(h.loginGuard)
		}
		login.Post("/token", h.token)
	})
	r.Post("/refresh", h.refresh)
	r.Post("/register", h.register)
}

// token implements the OAuth2 password grant: form fields username and password.
func (h *AuthHandler) token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid form payload")
		return
	}
	req := service.LoginRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithAppError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

// refresh reads refresh_token from the form body or the query string.
func (h *AuthHandler) refresh(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid form payload")
		return
	}
	resp, err := h.authService.Refresh(r.Context(), service.RefreshRequest{
		RefreshToken: r.FormValue("refresh_token"),
	})
	if err != nil {
		common.RespondWithAppError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.userService.RegisterUser(r.Context(), req)
	if err != nil {
		common.RespondWithAppError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, user)
}
