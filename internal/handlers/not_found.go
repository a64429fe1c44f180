package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/telehedr/auth-api/internal/models"
)

// NewNotFoundHandler answers unknown routes with the standard envelope.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(models.Response{
			Success: false,
			Message: "Endpoint not found",
		})
	}
}
