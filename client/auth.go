package client

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthProvider supplies authentication headers for the session handshake.
type AuthProvider interface {
	// Headers returns HTTP headers to attach to the opening handshake.
	Headers() map[string]string
}

// bearerAuth implements AuthProvider with Bearer token authentication
type bearerAuth struct {
	token string
}

// NewBearerAuth creates a new Bearer token auth provider
func NewBearerAuth(token string) AuthProvider {
	return &bearerAuth{token: token}
}

// Headers implements AuthProvider.Headers
func (a *bearerAuth) Headers() map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", a.token),
	}
}

// Expiry returns the token's exp claim when the token parses as a JWT. The
// token is not validated; the store does that. This only exists so the
// client can warn before presenting a token that is already expired.
func (a *bearerAuth) Expiry() (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(a.token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// basicAuth implements AuthProvider with Basic authentication
type basicAuth struct {
	token string // computed base64 token
}

// NewBasicAuth creates a new Basic auth provider
func NewBasicAuth(username, password string) AuthProvider {
	token := base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", username, password)))
	return &basicAuth{token: token}
}

// Headers implements AuthProvider.Headers
func (a *basicAuth) Headers() map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf("Basic %s", a.token),
	}
}

// expiryReporter is implemented by providers whose credential can expire.
type expiryReporter interface {
	Expiry() (time.Time, bool)
}
