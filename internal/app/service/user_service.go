package service

import (
	"context"
	"fmt"
	"todo_api/internal/common"
	"todo_api/internal/common/security"
	"todo_api/internal/domain/model"
	"todo_api/internal/domain/repository"
)

type UserService struct {
	userRepo repository.UserRepository
	hasher   security.PasswordHasher
}

func NewUserService(userRepo repository.UserRepository, hasher security.PasswordHasher) *UserService {
	return &UserService{userRepo: userRepo, hasher: hasher}
}

type RegisterUserRequest struct {
	Username string   `json:"username" validate:"required,min=3,max=50,alphanum"`
	Password string   `json:"password" validate:"required,min=6,maxbytes=72"`
	Name     string   `json:"name" validate:"max=100"`
	Email    string   `json:"email" validate:"omitempty,email"`
	Scopes   []string `json:"scopes" validate:"omitempty,dive,oneof=read write"`
}

// RegisterUser always creates a plain user; admin accounts are only seeded.
func (s *UserService) RegisterUser(ctx context.Context, req RegisterUserRequest) (*model.User, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:       req.Username,
		HashedPassword: hashedPassword,
		Name:           req.Name,
		Email:          req.Email,
		Role:           model.RoleUser, // Default role
		Scopes:         req.Scopes,
	}
	return s.userRepo.Create(ctx, user)
}

func (s *UserService) GetUser(ctx context.Context, username string) (*model.User, error) {
	return s.userRepo.FindByUsername(ctx, username)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.List(ctx)
}
