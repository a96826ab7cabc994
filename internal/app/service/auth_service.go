package service

import (
	"context"
	"errors"
	"fmt"
	"todo_api/internal/common"
	"todo_api/internal/common/security"
	"todo_api/internal/domain/repository"
)

const TokenTypeBearer = "bearer"

type AuthService struct {
	userRepo repository.UserRepository
	hasher   security.PasswordHasher
	tokens   *security.TokenService
	// dummyHash is verified against when the user does not exist so that
	// unknown usernames cost as much as wrong passwords.
	dummyHash string
}

func NewAuthService(userRepo repository.UserRepository, hasher security.PasswordHasher, tokens *security.TokenService) *AuthService {
	dummyHash, _ := hasher.Hash("not-a-real-password")
	return &AuthService{userRepo: userRepo, hasher: hasher, tokens: tokens, dummyHash: dummyHash}
}

type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `form:"refresh_token" validate:"required"`
}

type TokenInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TokenResponse struct {
	AccessToken  string     `json:"access_token"`
	TokenType    string     `json:"token_type"`
	ExpiresIn    int        `json:"expires_in"` // seconds
	RefreshToken string     `json:"refresh_token,omitempty"`
	Info         *TokenInfo `json:"info,omitempty"`
}

// Login checks the password and issues an access/refresh pair. Unknown users,
// wrong passwords and disabled accounts all fail the same way.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.hasher.Verify(req.Password, s.dummyHash)
			return nil, common.NewAuthError(common.KindInvalidCredentials, nil)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !s.hasher.Verify(req.Password, user.HashedPassword) || user.Disabled {
		return nil, common.NewAuthError(common.KindInvalidCredentials, nil)
	}

	access, err := s.tokens.IssueAccess(user.Username, user.Role, user.Scopes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefresh(user.Username, user.Role, user.Scopes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenResponse{
		AccessToken:  access,
		TokenType:    TokenTypeBearer,
		ExpiresIn:    int(s.tokens.AccessTTL().Seconds()),
		RefreshToken: refresh,
		Info:         &TokenInfo{Name: user.Name, Email: user.Email},
	}, nil
}

// Refresh exchanges a refresh token for a new access token. The refresh token
// stays valid until it expires.
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*TokenResponse, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}
	access, err := s.tokens.Refresh(req.RefreshToken)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{
		AccessToken: access,
		TokenType:   TokenTypeBearer,
		ExpiresIn:   int(s.tokens.AccessTTL().Seconds()),
	}, nil
}
