package jwt

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID, "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Wire format: three dot-separated segments
	assert.Len(t, strings.Split(token, "."), 3)

	// Valid token should pass validation
	err = j.Validate(ctx, token)
	assert.NoError(t, err)

	// Extract claims
	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)

	gotID, err := claims.UserID()
	assert.NoError(t, err)
	assert.Equal(t, userID, gotID)

	assert.NotNil(t, claims.IssuedAt)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute)) // already expired

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID, "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Validation should fail with the expiry reason
	err = j.Validate(ctx, token)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwtlib.ErrTokenExpired)

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_NotYetExpiredToken(t *testing.T) {
	// A token still inside its lifetime verifies fine
	j := New(WithSecretKey("test-secret"), WithExpiration(2*time.Second))
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New(), "alice")
	assert.NoError(t, err)
	assert.NoError(t, j.Validate(ctx, token))
}

func TestJWT_MalformedToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	err := j.Validate(ctx, "invalid-token")
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwtlib.ErrTokenMalformed)

	claims, err := j.GetClaims(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_Validate_WrongSecret(t *testing.T) {
	// Create token with one secret
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))
	ctx := context.Background()

	token, err := j1.Generate(ctx, uuid.New(), "alice")
	assert.NoError(t, err)

	// Validate with wrong secret should fail as a signature error
	err = j2.Validate(ctx, token)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwtlib.ErrTokenSignatureInvalid)
}

func TestJWT_TamperedPayload(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New(), "alice")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Rewrite the username inside the payload so the claims still parse
	// structurally but no longer match the signature.
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var claims map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &claims))
	claims["username"] = "mallory"
	tampered, err := json.Marshal(claims)
	require.NoError(t, err)

	parts[1] = base64.RawURLEncoding.EncodeToString(tampered)
	tamperedToken := strings.Join(parts, ".")

	err = j.Validate(ctx, tamperedToken)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwtlib.ErrTokenSignatureInvalid)
}

func TestJWT_RejectsNonHMACAlg(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	ctx := context.Background()

	// alg=none token with a parseable claim set
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, jwtlib.MapClaims{
		"sub":      uuid.New().String(),
		"username": "alice",
	})
	signed, err := token.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	err = j.Validate(ctx, signed)
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"TooManyParts", "Bearer a b c", "", true},
		{"SchemeOnly", "Bearer", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
