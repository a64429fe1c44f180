package handlers

import (
	"encoding/json"
	"net/http"
)

// HealthResponse is the informational root endpoint body
// swagger:model HealthResponse
type HealthResponse struct {
	// default: true
	Success bool `json:"success"`

	// default: TeleHEDR API is running
	Message string `json:"message"`

	// default: 1.0.0
	Version string `json:"version"`

	// Endpoint listing
	Endpoints map[string]string `json:"endpoints"`
}

// NewHealthHandler returns the informational root endpoint.
// @Summary Health check
// @Description Reports that the service is up and lists its endpoints.
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is running"
// @Router / [get]
func NewHealthHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{
			Success: true,
			Message: "TeleHEDR API is running",
			Version: version,
			Endpoints: map[string]string{
				"POST /register": "Create a new user",
				"POST /login":    "Authenticate user and get JWT",
				"GET /profile":   "Get user profile (requires JWT)",
			},
		})
	}
}
