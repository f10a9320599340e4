// Package sessioncookie reads and writes the signed selfcare session cookie.
//
// The cookie value is an HS256 token whose jti carries the session id. It has
// no Max-Age, so browsers drop it when the browsing session ends.
package sessioncookie

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/requestmeta"
)

// Name is the session cookie name.
const Name = "selfcare_session"

const issuer = "selfcare"

// ErrInvalidToken reports a cookie value that does not verify.
var ErrInvalidToken = errors.New("invalid session token")

// Codec signs and verifies session ids.
type Codec struct {
	secret []byte
	now    func() time.Time
}

// NewCodec builds a codec for secret. The secret must be at least 32 bytes.
func NewCodec(secret []byte) (Codec, error) {
	if len(secret) < 32 {
		return Codec{}, fmt.Errorf("session secret must be at least 32 bytes, got %d", len(secret))
	}
	key := make([]byte, len(secret))
	copy(key, secret)
	return Codec{secret: key, now: time.Now}, nil
}

// Sign returns the cookie value for sessionID.
func (c Codec) Sign(sessionID string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", fmt.Errorf("session id is required")
	}
	if len(c.secret) == 0 {
		return "", fmt.Errorf("session codec is not configured")
	}
	claims := jwt.RegisteredClaims{
		ID:       sessionID,
		Issuer:   issuer,
		IssuedAt: jwt.NewNumericDate(c.now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify returns the session id carried by value.
func (c Codec) Verify(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" || len(c.secret) == 0 {
		return "", ErrInvalidToken
	}
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(value, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if strings.TrimSpace(claims.ID) == "" {
		return "", fmt.Errorf("%w: jti is required", ErrInvalidToken)
	}
	return claims.ID, nil
}

// Read returns the trimmed cookie value when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the session cookie.
func Write(w http.ResponseWriter, r *http.Request, value string, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(value),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie.
func Clear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
