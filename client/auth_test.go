package client

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	claims := jwt.RegisteredClaims{
		Subject:   "witsml.user",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestBearerAuthHeaders(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))
	auth := NewBearerAuth(token)
	headers := auth.Headers()
	assert.Equal(t, "Bearer "+token, headers["Authorization"])
}

func TestBearerAuthExpiry(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
	auth := NewBearerAuth(signedToken(t, expiresAt))

	reporter, ok := auth.(expiryReporter)
	require.True(t, ok)
	expiry, known := reporter.Expiry()
	require.True(t, known)
	assert.WithinDuration(t, expiresAt, expiry, time.Second)
}

func TestBearerAuthOpaqueTokenHasNoExpiry(t *testing.T) {
	auth := NewBearerAuth("not-a-jwt")
	reporter, ok := auth.(expiryReporter)
	require.True(t, ok)
	_, known := reporter.Expiry()
	assert.False(t, known)
}

func TestBasicAuthHeaders(t *testing.T) {
	auth := NewBasicAuth("witsml.user", "secret")
	headers := auth.Headers()
	expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("witsml.user:secret"))
	assert.Equal(t, expected, headers["Authorization"])
}
