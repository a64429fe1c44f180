package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/telehedr/auth-api/internal/jwt"
	"github.com/telehedr/auth-api/internal/middlewares"
	"github.com/telehedr/auth-api/internal/models"
	"github.com/telehedr/auth-api/internal/services"
)

func TestProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.User{
		ID:        userID,
		Username:  "alice",
		CreatedAt: time.Now().UTC(),
	}

	claimsFor := func(subject string) *jwt.Claims {
		return &jwt.Claims{
			RegisteredClaims: jwtlib.RegisteredClaims{Subject: subject},
			Username:         "alice",
		}
	}

	tests := []struct {
		name            string
		claims          *jwt.Claims
		mockSetup       func(m *MockProfileGetter)
		expectedCode    int
		expectedSuccess bool
		expectedMessage string
	}{
		{
			name:   "success",
			claims: claimsFor(userID.String()),
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().
					GetProfile(gomock.Any(), userID).
					Return(user, nil)
			},
			expectedCode:    http.StatusOK,
			expectedSuccess: true,
			expectedMessage: "Profile retrieved successfully",
		},
		{
			// Directory no longer resolves the token's subject
			name:   "user gone",
			claims: claimsFor(userID.String()),
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().
					GetProfile(gomock.Any(), userID).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "User not found",
		},
		{
			// Gate not in front of the route: no identity attached
			name:            "no claims in context",
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Access token required",
		},
		{
			name:            "unparseable subject",
			claims:          claimsFor("not-a-uuid"),
			expectedCode:    http.StatusForbidden,
			expectedMessage: "Invalid or expired token",
		},
		{
			name:   "internal server error",
			claims: claimsFor(userID.String()),
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().
					GetProfile(gomock.Any(), userID).
					Return(nil, errors.New("directory failure"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfileGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewProfileHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			if tt.claims != nil {
				req = req.WithContext(middlewares.SetClaimsToContext(req.Context(), tt.claims))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]interface{}
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedSuccess, resp["success"])
			assert.Equal(t, tt.expectedMessage, resp["message"])

			if tt.expectedSuccess {
				data := resp["data"].(map[string]interface{})
				userData := data["user"].(map[string]interface{})
				assert.Equal(t, userID.String(), userData["id"])
				assert.Equal(t, "alice", userData["username"])
				assert.NotContains(t, userData, "password")
			}
		})
	}
}
