package security

import (
	"errors"
	"fmt"
	"slices"
	"time"
	"todo_api/internal/common"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

var errUnknownTokenType = errors.New("unknown token type")

// Claims is the only claim shape this service signs or accepts.
// An empty Type is read as an access token.
type Claims struct {
	Scopes []string  `json:"scopes,omitempty"`
	Role   string    `json:"role,omitempty"`
	Type   TokenType `json:"type,omitempty"`
	jwt.RegisteredClaims
}

func NewAccessClaims(subject, role string, scopes []string) Claims {
	return Claims{
		Scopes:           slices.Clone(scopes),
		Role:             role,
		Type:             TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
	}
}

func NewRefreshClaims(subject, role string, scopes []string) Claims {
	c := NewAccessClaims(subject, role, scopes)
	c.Type = TokenTypeRefresh
	return c
}

// Validate is called by the jwt parser after the registered claims pass.
func (c Claims) Validate() error {
	switch c.Type {
	case "", TokenTypeAccess, TokenTypeRefresh:
		return nil
	}
	return fmt.Errorf("%w: %q", errUnknownTokenType, c.Type)
}

func (c Claims) IsRefresh() bool { return c.Type == TokenTypeRefresh }

type TokenConfig struct {
	Secret     []byte
	Algorithm  string // HS256, HS384 or HS512
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// TokenService issues and verifies HMAC-signed JWTs. It holds no mutable state
// after construction and is safe for concurrent use.
type TokenService struct {
	secret     []byte
	method     jwt.SigningMethod
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("token service: empty signing secret")
	}
	alg := cfg.Algorithm
	if alg == "" {
		alg = jwt.SigningMethodHS256.Alg()
	}
	method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("token service: unsupported signing algorithm %q", alg)
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("token service: token lifetimes must be positive")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &TokenService{
		secret:     slices.Clone(cfg.Secret),
		method:     method,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        now,
	}, nil
}

func (s *TokenService) AccessTTL() time.Duration  { return s.accessTTL }
func (s *TokenService) RefreshTTL() time.Duration { return s.refreshTTL }

// Issue signs a copy of claims with exp = now + ttl. The caller is responsible
// for the subject, scopes and type.
func (s *TokenService) Issue(claims Claims, ttl time.Duration) (string, error) {
	now := s.now().UTC()
	c := claims
	c.Scopes = slices.Clone(claims.Scopes)
	c.IssuedAt = jwt.NewNumericDate(now)
	c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	c.ID = uuid.NewString()

	token := jwt.NewWithClaims(s.method, c)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *TokenService) IssueAccess(subject, role string, scopes []string) (string, error) {
	return s.Issue(NewAccessClaims(subject, role, scopes), s.accessTTL)
}

func (s *TokenService) IssueRefresh(subject, role string, scopes []string) (string, error) {
	return s.Issue(NewRefreshClaims(subject, role, scopes), s.refreshTTL)
}

// Verify checks signature, algorithm, expiry and claim shape.
// Expiry is reported as KindExpiredToken; everything else as KindInvalidToken.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.NewAuthError(common.KindExpiredToken, err)
		}
		return nil, common.NewAuthError(common.KindInvalidToken, err)
	}
	if !token.Valid {
		return nil, common.NewAuthError(common.KindInvalidToken, nil)
	}
	return claims, nil
}

// Refresh mints a new access token from a refresh token. Refresh tokens are
// not tracked, so an unexpired one can be replayed until it expires.
func (s *TokenService) Refresh(refreshToken string) (string, error) {
	claims, err := s.Verify(refreshToken)
	if err != nil {
		return "", err
	}
	if !claims.IsRefresh() {
		return "", common.NewAuthError(common.KindInvalidToken, errors.New("not a refresh token"))
	}
	if claims.Subject == "" {
		return "", common.NewAuthError(common.KindMissingIdentity, nil)
	}
	return s.IssueAccess(claims.Subject, claims.Role, claims.Scopes)
}
