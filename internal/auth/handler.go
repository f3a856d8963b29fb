package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tammam101/temox/backend/internal/common"
	"github.com/tammam101/temox/backend/internal/models"
	"github.com/tammam101/temox/backend/internal/validation"
)

const maxBodyBytes = 1 << 20

// Registrar is implemented by *Service.
type Registrar interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.UserProjection, error)
}

// Handler holds auth-related HTTP handlers.
type Handler struct {
	users Registrar
}

func NewHandler(users Registrar) *Handler {
	return &Handler{users: users}
}

type messageResponse struct {
	Message string                  `json:"message"`
	User    *models.UserProjection  `json:"user,omitempty"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Register creates a new user.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
		return
	}

	user, err := h.users.Register(r.Context(), req)
	if err != nil {
		var ve *validation.Errors
		switch {
		case errors.As(err, &ve):
			writeJSON(w, http.StatusUnprocessableEntity, messageResponse{Message: "Validation failed", Errors: ve.Fields})
		case errors.Is(err, common.ErrConflict):
			writeJSON(w, http.StatusConflict, messageResponse{Message: "Username already exists"})
		default:
			writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
		}
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "User registered successfully", User: user})
}
