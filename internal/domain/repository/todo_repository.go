package repository

import (
	"context"
	"slices"
	"todo_api/internal/common"
	"todo_api/internal/domain/model"
	"todo_api/internal/platform/database"
)

var ErrTodoNotFound = common.WithMessage(common.ErrNotFound, "Todo not found")

type TodoRepository interface {
	List(ctx context.Context) ([]model.Todo, error)
	Create(ctx context.Context, todo model.Todo) (model.Todo, error)
	Get(ctx context.Context, id int) (model.Todo, error)
	Update(ctx context.Context, todo model.Todo) (model.Todo, error)
	Delete(ctx context.Context, id int) (model.Todo, error)
}

type memTodoRepository struct {
	db *database.MemoryDB
}

func NewMemTodoRepository(db *database.MemoryDB) TodoRepository {
	return &memTodoRepository{db: db}
}

func (r *memTodoRepository) List(ctx context.Context) ([]model.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var todos []model.Todo
	r.db.View(func(t *database.Tables) {
		todos = make([]model.Todo, 0, len(t.Todos))
		for _, td := range t.Todos {
			todos = append(todos, *td)
		}
	})
	return todos, nil
}

// Create ignores todo.ID and assigns the next one. IDs are never reused.
func (r *memTodoRepository) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	if err := ctx.Err(); err != nil {
		return model.Todo{}, err
	}
	err := r.db.Update(func(t *database.Tables) error {
		todo.ID = t.NextTodoID
		t.NextTodoID++
		stored := todo
		t.Todos = append(t.Todos, &stored)
		return nil
	})
	if err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}

func (r *memTodoRepository) Get(ctx context.Context, id int) (model.Todo, error) {
	if err := ctx.Err(); err != nil {
		return model.Todo{}, err
	}
	var (
		found model.Todo
		ok    bool
	)
	r.db.View(func(t *database.Tables) {
		if i := indexOfTodo(t.Todos, id); i >= 0 {
			found, ok = *t.Todos[i], true
		}
	})
	if !ok {
		return model.Todo{}, ErrTodoNotFound
	}
	return found, nil
}

func (r *memTodoRepository) Update(ctx context.Context, todo model.Todo) (model.Todo, error) {
	if err := ctx.Err(); err != nil {
		return model.Todo{}, err
	}
	err := r.db.Update(func(t *database.Tables) error {
		i := indexOfTodo(t.Todos, todo.ID)
		if i < 0 {
			return ErrTodoNotFound
		}
		*t.Todos[i] = todo
		return nil
	})
	if err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}

// Delete removes the item and returns it.
func (r *memTodoRepository) Delete(ctx context.Context, id int) (model.Todo, error) {
	if err := ctx.Err(); err != nil {
		return model.Todo{}, err
	}
	var deleted model.Todo
	err := r.db.Update(func(t *database.Tables) error {
		i := indexOfTodo(t.Todos, id)
		if i < 0 {
			return ErrTodoNotFound
		}
		deleted = *t.Todos[i]
		t.Todos = slices.Delete(t.Todos, i, i+1)
		return nil
	})
	if err != nil {
		return model.Todo{}, err
	}
	return deleted, nil
}

func indexOfTodo(todos []*model.Todo, id int) int {
	return slices.IndexFunc(todos, func(t *model.Todo) bool { return t.ID == id })
}
