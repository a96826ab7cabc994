package database

import (
	"fmt"
	"todo_api/internal/common/security"
	"todo_api/internal/domain/model"
)

type seedUser struct {
	username string
	password string
	name     string
	email    string
	role     string
	scopes   []string
}

var demoUsers = []seedUser{
	{
		username: "alice",
		password: "wonderland",
		name:     "Alice Sharpe",
		email:    "asharpe@example.com",
		role:     model.RoleUser,
		scopes:   []string{model.ScopeRead, model.ScopeWrite},
	},
	{
		username: "admin",
		password: "secret",
		name:     "Admin",
		email:    "admin@example.com",
		role:     model.RoleAdmin,
		scopes:   []string{model.ScopeRead, model.ScopeWrite, model.ScopeAdmin},
	},
}

// SeedDemoUsers inserts the demo accounts (alice/wonderland, admin/secret)
// unless a user with the same name already exists.
func SeedDemoUsers(db *MemoryDB, hasher security.PasswordHasher) error {
	hashed := make([]string, len(demoUsers))
	for i, u := range demoUsers {
		h, err := hasher.Hash(u.password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.username, err)
		}
		hashed[i] = h
	}

	return db.Update(func(t *Tables) error {
		existing := make(map[string]struct{}, len(t.Users))
		for _, u := range t.Users {
			existing[u.Username] = struct{}{}
		}
		for i, u := range demoUsers {
			if _, ok := existing[u.username]; ok {
				continue
			}
			t.Users = append(t.Users, &model.User{
				ID:             t.NextUserID,
				Username:       u.username,
				HashedPassword: hashed[i],
				Name:           u.name,
				Email:          u.email,
				Role:           u.role,
				Scopes:         append([]string(nil), u.scopes...),
			})
			t.NextUserID++
		}
		return nil
	})
}
