package common

import (
	"encoding/json"
	"errors"
	"net/http"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

type APIErrorResponse struct {
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, ErrorResponse{Error: message})
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithAppError is the single place where service errors become HTTP responses.
// Server-side failures are reported without their cause.
func RespondWithAppError(w http.ResponseWriter, err error) {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		if authErr.Challenge != "" {
			w.Header().Set("WWW-Authenticate", authErr.Challenge)
		}
		RespondWithError(w, authErr.Status(), authErr.Message())
		return
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		RespondWithJSON(w, apiErr.Code, APIErrorResponse{Message: apiErr.Message, Details: apiErr.Details})
		return
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		RespondWithJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "Validation failed",
			Details: validationErr.Violations,
		})
		return
	}

	status := HTTPStatusFromError(err)
	if status >= http.StatusInternalServerError {
		RespondWithError(w, status, "Internal server error")
		return
	}
	RespondWithError(w, status, err.Error())
}
