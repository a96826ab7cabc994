package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"todo_api/internal/api"
	"todo_api/internal/app/service"
	"todo_api/internal/common/security"
	"todo_api/internal/domain/repository"
	"todo_api/internal/platform/config"
	"todo_api/internal/platform/database"
	"todo_api/internal/platform/logging"
)

func main() {
	ctx := context.Background()

	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := logging.New(os.Stdout, cfg.LogLevel)
	logger.Info(ctx, "Configuration loaded.", "env", cfg.AppEnv)

	// 2. Initialize security primitives
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	tokens, err := security.NewTokenService(security.TokenConfig{
		Secret:     cfg.JWTKey,
		Algorithm:  cfg.JWTAlgorithm,
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize token service: %v", err)
	}
	basicGate := security.NewBasicAuthGate(cfg.BasicAuthUsername, cfg.BasicAuthPassword, cfg.BasicAuthRealm)

	// 3. Initialize Database
	db := database.NewMemoryDB()
	defer db.Close()
	if cfg.SeedDemoUsers {
		if err := database.SeedDemoUsers(db, hasher); err != nil {
			log.Fatalf("Failed to seed demo users: %v", err)
		}
		logger.Info(ctx, "Demo users seeded.")
	}

	// 4. Initialize Repositories
	userRepo := repository.NewMemUserRepository(db)
	todoRepo := repository.NewMemTodoRepository(db)

	// 5. Initialize Services
	authService := service.NewAuthService(userRepo, hasher, tokens)
	userService := service.NewUserService(userRepo, hasher)
	todoService := service.NewTodoService(todoRepo)
	authorizer := service.NewAuthorizer(tokens, userRepo)

	// 6. Initialize Router & HTTP Server
	router := api.NewRouter(api.RouterDeps{
		Logger:             logger,
		AuthService:        authService,
		UserService:        userService,
		TodoService:        todoService,
		Authorizer:         authorizer,
		BasicGate:          basicGate,
		LoginRatePerMinute: cfg.LoginRateLimitPerMinute,
		LoginRateBurst:     cfg.LoginRateLimitBurst,
		TrustProxyHeaders:  cfg.TrustProxyHeaders,
	})

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(ctx, "Server starting", "port", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
		}
	}()

	<-stop // Wait for interrupt signal

	logger.Info(ctx, "Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "Server shutdown failed", "error", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully.")
}
