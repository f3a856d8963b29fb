package contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tammam101/temox/backend/internal/models"
	"github.com/tammam101/temox/backend/internal/validation"
)

const maxBodyBytes = 1 << 20

// Handler serves the JSON contact API.
type Handler struct {
	submitter Submitter
}

func NewHandler(s Submitter) *Handler {
	return &Handler{submitter: s}
}

type response struct {
	Message string                  `json:"message"`
	ID      string                  `json:"id,omitempty"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Create handles POST /api/contact.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Message: "Invalid request body"})
		return
	}

	sub, err := h.submitter.Submit(r.Context(), req, r.RemoteAddr)
	if err != nil {
		var ve *validation.Errors
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusUnprocessableEntity, response{Message: "Validation failed", Errors: ve.Fields})
			return
		}
		writeJSON(w, http.StatusInternalServerError, response{Message: "Internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, response{Message: "Request received", ID: sub.ID})
}
