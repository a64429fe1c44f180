package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	handler := NewHealthHandler("1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp HealthResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "TeleHEDR API is running", resp.Message)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.Contains(t, resp.Endpoints, "POST /register")
	assert.Contains(t, resp.Endpoints, "POST /login")
	assert.Contains(t, resp.Endpoints, "GET /profile")
}

func TestNotFoundHandler(t *testing.T) {
	handler := NewNotFoundHandler()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Endpoint not found", resp["message"])
}
