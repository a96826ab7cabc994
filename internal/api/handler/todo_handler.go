package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"todo_api/internal/api/middleware"
	"todo_api/internal/app/service"
	"todo_api/internal/common"
	"todo_api/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type TodoHandler struct {
	todoService *service.TodoService
	authz       *service.Authorizer
}

func NewTodoHandler(todoService *service.TodoService, authz *service.Authorizer) *TodoHandler {
	return &TodoHandler{todoService: todoService, authz: authz}
}

// RegisterRoutes expects to be mounted behind middleware.Authenticator.
func (h *TodoHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listTodos)
	r.Get("/{todoID}", h.getTodo)

	r.Group(func(write chi.Router) {
		write.Use(middleware.RequireScope(h.authz, model.ScopeWrite))
		write.Post("/", h.createTodo)
		write.Put("/{todoID}", h.updateTodo)
		write.Delete("/{todoID}", h.deleteTodo)
	})
}

func (h *TodoHandler) listTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todoService.ListTodos(r.Context())
	if err != nil {
		common.RespondWithAppError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, todos)
}

func (h *TodoHandler) createTodo(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	todo, err := h.todoService.CreateTodo(r.Context(), req)
	if err != nil {
		common.RespondWithAppError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, todo)
}

func (h *TodoHandler) getTodo(w http.ResponseWriter, r *http.Request) {
	id, err := todoIDParam(r)
	if err != nil {
		common.RespondWithAppError(w, err)
		return
	}
	todo, err := h.todoService.GetTodo(r.Context(), id)
	if err != nil {
		common.RespondWithAppError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) updateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := todoIDParam(r)
	if err != nil {
		common.RespondWithAppError(w, err)
		return
	}
	var req service.UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	todo, err := h.todoService.UpdateTodo(r.Context(), id, req)
	if err != nil {
		common.RespondWithAppError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := todoIDParam(r)
	if err != nil {
		common.RespondWithAppError(w, err)
		return
	}
	todo, err := h.todoService.DeleteTodo(r.Context(), id)
	if err != nil {
		common.RespondWithAppError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, todo)
}

func todoIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "todoID"))
	if err != nil {
		return 0, common.NewValidationError("todoID", "int", "")
	}
	return id, nil
}
