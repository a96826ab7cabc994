package repository

import (
	"context"
	"fmt"
	"todo_api/internal/common"
	"todo_api/internal/domain/model"
	"todo_api/internal/platform/database"
)

// UserRepository is an ordered, append-only collection of users keyed by username.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
}

type memUserRepository struct {
	db *database.MemoryDB
}

func NewMemUserRepository(db *database.MemoryDB) UserRepository {
	return &memUserRepository{db: db}
}

// Create assigns the next ID and appends a copy of user.
func (r *memUserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var created *model.User
	err := r.db.Update(func(t *database.Tables) error {
		for _, u := range t.Users {
			if u.Username == user.Username {
				return common.WithMessage(common.ErrConflict, fmt.Sprintf("Username %q is already registered", user.Username))
			}
		}
		stored := user.Clone()
		stored.ID = t.NextUserID
		t.NextUserID++
		t.Users = append(t.Users, stored)
		created = stored.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *memUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var found *model.User
	r.db.View(func(t *database.Tables) {
		for _, u := range t.Users {
			if u.Username == username {
				found = u.Clone()
				return
			}
		}
	})
	if found == nil {
		return nil, common.ErrNotFound
	}
	return found, nil
}

// List returns users in registration order.
func (r *memUserRepository) List(ctx context.Context) ([]*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var users []*model.User
	r.db.View(func(t *database.Tables) {
		users = make([]*model.User, 0, len(t.Users))
		for _, u := range t.Users {
			users = append(users, u.Clone())
		}
	})
	return users, nil
}
