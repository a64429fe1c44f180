package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/telehedr/auth-api/internal/logger"
	"github.com/telehedr/auth-api/internal/models"
	"github.com/telehedr/auth-api/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password string) (*models.User, string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// AuthData is the payload returned on successful registration or login
// swagger:model AuthData
type AuthData struct {
	// Redacted user projection
	User models.UserProfile `json:"user"`

	// Signed bearer token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique username, hashes the password, and returns the new user together with a signed token.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} models.Response "User registered, token issued"
// @Failure 400 {object} models.Response "Missing fields or username already exists"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Response{
				Success: false,
				Message: "Invalid request body",
			})
			return
		}

		if req.Username == "" || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Response{
				Success: false,
				Message: "Username and password are required",
			})
			return
		}

		user, token, err := svc.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.Response{
					Success: false,
					Message: "Username already exists",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.Response{
					Success: false,
					Message: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Response{
			Success: true,
			Message: "User registered successfully",
			Data: AuthData{
				User:  user.Profile(),
				Token: token,
			},
		})
	}
}
