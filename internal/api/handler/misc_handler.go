package handler

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"todo_api/internal/api/middleware"
	"todo_api/internal/common"
	"todo_api/internal/common/security"

	"github.com/go-chi/chi/v5"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type DivideResponse struct {
	Result float64 `json:"result"`
}

// MiscHandler serves the greeting, the divide utility and the Basic auth demo.
type MiscHandler struct {
	basicGate *security.BasicAuthGate
}

func NewMiscHandler(basicGate *security.BasicAuthGate) *MiscHandler {
	return &MiscHandler{basicGate: basicGate}
}

func (h *MiscHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.root)
	r.Get("/health", h.health)
	r.Get("/util/divide", h.divide)
	r.With(middleware.BasicAuth(h.basicGate)).Get("/demo/basic-auth", h.basicAuthDemo)
}

func (h *MiscHandler) root(w http.ResponseWriter, r *http.Request) {
	common.RespondWithJSON(w, http.StatusOK, MessageResponse{Message: "Welcome to the to-do API!"})
}

func (h *MiscHandler) health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

func (h *MiscHandler) divide(w http.ResponseWriter, r *http.Request) {
	a, err := queryNumber(r, "a")
	if err != nil {
		common.RespondWithAppError(w, err)
		return
	}
	b, err := queryNumber(r, "b")
	if err != nil {
		common.RespondWithAppError(w, err)
		return
	}
	result, err := Divide(a, b)
	if err != nil {
		common.RespondWithAppError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, DivideResponse{Result: result})
}

func queryNumber(r *http.Request, name string) (float64, error) {
	v, err := strconv.ParseFloat(r.URL.Query().Get(name), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, common.NewValidationError(name, "number", "")
	}
	return v, nil
}

// Divide returns a/b, or a 400 APIError carrying both operands when b is zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, common.NewAPIError(http.StatusBadRequest, "Division by zero is not allowed", map[string]any{"a": a, "b": b})
	}
	return a / b, nil
}

func (h *MiscHandler) basicAuthDemo(w http.ResponseWriter, r *http.Request) {
	username, _ := middleware.BasicUsernameFromContext(r.Context())
	common.RespondWithJSON(w, http.StatusOK, MessageResponse{Message: fmt.Sprintf("Hello, %s!", username)})
}
