package security

import (
	"crypto/subtle"
	"fmt"
	"todo_api/internal/common"
)

const DefaultBasicRealm = "Restricted"

// BasicAuthGate checks HTTP Basic credentials against one fixed identity.
// It does not consult the user store or the token service.
type BasicAuthGate struct {
	username  []byte
	password  []byte
	challenge string
}

func NewBasicAuthGate(username, password, realm string) *BasicAuthGate {
	if realm == "" {
		realm = DefaultBasicRealm
	}
	return &BasicAuthGate{
		username:  []byte(username),
		password:  []byte(password),
		challenge: fmt.Sprintf("Basic realm=%q", realm),
	}
}

func (g *BasicAuthGate) Challenge() string { return g.challenge }

// Authenticate compares both fields in constant time and always evaluates both.
// Response timing can still reveal whether the username alone matched.
func (g *BasicAuthGate) Authenticate(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), g.username)
	passOK := subtle.ConstantTimeCompare([]byte(password), g.password)
	if userOK&passOK != 1 {
		return "", common.NewAuthError(common.KindInvalidCredentials, nil).WithChallenge(g.challenge)
	}
	return username, nil
}
