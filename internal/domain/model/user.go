package model

import "slices"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	ScopeRead  = "read"
	ScopeWrite = "write"
	ScopeAdmin = "admin"
)

type User struct {
	ID             int      `json:"id"`
	Username       string   `json:"username"`
	HashedPassword string   `json:"-"` // Not exposed
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Role           string   `json:"role"`
	Scopes         []string `json:"scopes"`
	Disabled       bool     `json:"disabled"`
}

// Clone returns a deep copy so callers cannot mutate stored records.
func (u *User) Clone() *User {
	c := *u
	c.Scopes = slices.Clone(u.Scopes)
	if c.Scopes == nil {
		c.Scopes = []string{}
	}
	return &c
}

// Identity is the caller resolved for the duration of one request.
type Identity struct {
	Username string
	Role     string
	Scopes   []string
}

func (i *Identity) HasScope(scope string) bool {
	return slices.Contains(i.Scopes, scope)
}
