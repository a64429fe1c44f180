package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/telehedr/auth-api/internal/logger"
	"github.com/telehedr/auth-api/internal/middlewares"
	"github.com/telehedr/auth-api/internal/models"
	"github.com/telehedr/auth-api/internal/services"
)

// ProfileGetter defines the interface that the profile service must implement.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// ProfileData is the payload returned on a successful profile request
// swagger:model ProfileData
type ProfileData struct {
	// Redacted user projection
	User models.UserProfile `json:"user"`
}

// NewProfileHandler returns an HTTP handler for the protected profile route.
// It reads the identity attached by the auth middleware and resolves it back
// to a directory record.
// @Summary Get user profile
// @Description Returns the profile of the authenticated user.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response "Profile retrieved"
// @Failure 401 {object} models.Response "Access token required"
// @Failure 403 {object} models.Response "Invalid or expired token"
// @Failure 404 {object} models.Response "User not found"
// @Router /profile [get]
func NewProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			// The route is wired behind the auth middleware; reaching this
			// point without claims means the pipeline is misassembled.
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.Response{
				Success: false,
				Message: "Access token required",
			})
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			logger.Log.Errorw("invalid subject claim", "err", err, "subject", claims.Subject)
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(models.Response{
				Success: false,
				Message: "Invalid or expired token",
			})
			return
		}

		user, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(models.Response{
					Success: false,
					Message: "User not found",
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.Response{
			Success: true,
			Message: "Profile retrieved successfully",
			Data: ProfileData{
				User: user.Profile(),
			},
		})
	}
}
