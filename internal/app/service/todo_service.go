package service

import (
	"context"
	"todo_api/internal/common"
	"todo_api/internal/domain/model"
	"todo_api/internal/domain/repository"

	"github.com/gosimple/slug"
)

// TodoService is plain CRUD; callers are authenticated before they get here.
type TodoService struct {
	todoRepo repository.TodoRepository
}

func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

type CreateTodoRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100"`
}

type UpdateTodoRequest struct {
	Title     string `json:"title" validate:"required,min=1,max=100"`
	Completed bool   `json:"completed"`
}

func (s *TodoService) ListTodos(ctx context.Context) ([]model.Todo, error) {
	return s.todoRepo.List(ctx)
}

func (s *TodoService) CreateTodo(ctx context.Context, req CreateTodoRequest) (model.Todo, error) {
	if err := common.Validate(req); err != nil {
		return model.Todo{}, err
	}
	return s.todoRepo.Create(ctx, model.Todo{
		Title: req.Title,
		Slug:  slug.Make(req.Title),
	})
}

func (s *TodoService) GetTodo(ctx context.Context, id int) (model.Todo, error) {
	return s.todoRepo.Get(ctx, id)
}

func (s *TodoService) UpdateTodo(ctx context.Context, id int, req UpdateTodoRequest) (model.Todo, error) {
	if err := common.Validate(req); err != nil {
		return model.Todo{}, err
	}
	return s.todoRepo.Update(ctx, model.Todo{
		ID:        id,
		Title:     req.Title,
		Slug:      slug.Make(req.Title),
		Completed: req.Completed,
	})
}

func (s *TodoService) DeleteTodo(ctx context.Context, id int) (model.Todo, error) {
	return s.todoRepo.Delete(ctx, id)
}
