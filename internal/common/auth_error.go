package common

import (
	"errors"
	"net/http"
)

// AuthErrorKind classifies authentication and authorization failures.
type AuthErrorKind string

const (
	KindInvalidCredentials AuthErrorKind = "invalid_credentials"
	KindInvalidToken       AuthErrorKind = "invalid_token"
	KindExpiredToken       AuthErrorKind = "expired_token"
	KindMissingIdentity    AuthErrorKind = "missing_identity"
	KindNotAuthenticated   AuthErrorKind = "not_authenticated"
	KindForbidden          AuthErrorKind = "forbidden"
)

const (
	BearerChallenge = "Bearer"
	msgInvalidToken = "Invalid or expired token"
)

// AuthError is returned by the security and authorization layers instead of
// writing responses directly. The boundary turns it into a 401/403.
type AuthError struct {
	Kind AuthErrorKind
	// Challenge is sent as WWW-Authenticate when non-empty.
	Challenge string
	cause     error
}

func NewAuthError(kind AuthErrorKind, cause error) *AuthError {
	e := &AuthError{Kind: kind, cause: cause}
	if kind != KindForbidden {
		e.Challenge = BearerChallenge
	}
	return e
}

// WithChallenge returns a copy of e advertising the given challenge.
func (e *AuthError) WithChallenge(challenge string) *AuthError {
	c := *e
	c.Challenge = challenge
	return &c
}

func (e *AuthError) Error() string {
	if e.cause != nil {
		return string(e.Kind) + ": " + e.cause.Error()
	}
	return string(e.Kind)
}

func (e *AuthError) Unwrap() error { return e.cause }

// Is lets errors.Is(err, ErrUnauthorized) and errors.Is(err, ErrForbidden) match.
func (e *AuthError) Is(target error) bool {
	switch target {
	case ErrForbidden:
		return e.Kind == KindForbidden
	case ErrUnauthorized:
		return e.Kind != KindForbidden
	}
	if t, ok := target.(*AuthError); ok {
		return t.Kind == e.Kind
	}
	return false
}

func (e *AuthError) Status() int {
	if e.Kind == KindForbidden {
		return http.StatusForbidden
	}
	return http.StatusUnauthorized
}

// Message is the client-facing text. All token failures share one message.
func (e *AuthError) Message() string {
	switch e.Kind {
	case KindInvalidCredentials:
		return "Incorrect username or password"
	case KindNotAuthenticated:
		return "Not authenticated"
	case KindForbidden:
		return "Not authorized"
	default:
		return msgInvalidToken
	}
}

// IsAuthKind reports whether err carries an AuthError of the given kind.
func IsAuthKind(err error, kind AuthErrorKind) bool {
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		return false
	}
	return authErr.Kind == kind
}
