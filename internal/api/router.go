package api

import (
	"net/http"
	"time"
	"todo_api/internal/api/handler"
	"todo_api/internal/api/middleware"
	"todo_api/internal/app/service"
	"todo_api/internal/common/security"
	"todo_api/internal/platform/logging"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

type RouterDeps struct {
	Logger      logging.Logger
	AuthService *service.AuthService
	UserService *service.UserService
	TodoService *service.TodoService
	Authorizer  *service.Authorizer
	BasicGate   *security.BasicAuthGate

	LoginRatePerMinute int
	LoginRateBurst     int
	TrustProxyHeaders  bool
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	if deps.TrustProxyHeaders {
		r.Use(chiMiddleware.RealIP)
	}
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(middleware.SecurityHeaders)

	// Public routes
	miscHandler := handler.NewMiscHandler(deps.BasicGate)
	miscHandler.RegisterRoutes(r)

	authHandler := handler.NewAuthHandler(deps.AuthService, deps.UserService,
		middleware.RateLimitByIP(deps.LoginRatePerMinute, deps.LoginRateBurst))
	r.Route("/auth", authHandler.RegisterRoutes)

	// Bearer-protected routes
	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Authenticator(deps.Authorizer))

		todoHandler := handler.NewTodoHandler(deps.TodoService, deps.Authorizer)
		api.Route("/todos", todoHandler.RegisterRoutes)

		userHandler := handler.NewUserHandler(deps.UserService, deps.Authorizer)
		api.Route("/users", userHandler.RegisterRoutes)
	})

	return r
}
