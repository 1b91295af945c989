// Package middleware provides the authentication gates applied by the
// router in front of protected endpoints.
package middleware

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	// ContextKeyLogin holds the authenticated login in the request context.
	ContextKeyLogin contextKey = "auth_login"

	// TokenExpiry is the lifetime of issued bearer tokens.
	TokenExpiry = 24 * time.Hour
)

// CredentialVerifier checks a login/password pair. Implementations decide
// where credentials live: a fixed configured pair, the user store, etc.
type CredentialVerifier interface {
	Verify(login, password string) bool
}

// StaticCredentials verifies against a single fixed pair.
type StaticCredentials struct {
	Login    string
	Password string
}

// Verify compares both fields in constant time.
func (c StaticCredentials) Verify(login, password string) bool {
	loginOK := subtle.ConstantTimeCompare([]byte(login), []byte(c.Login)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
	return loginOK && passOK
}

// BasicAuth returns middleware that gates requests behind HTTP Basic
// authentication against the given verifier. Absent or rejected
// credentials get a 401 with the realm challenge before the handler runs.
func BasicAuth(realm string, verifier CredentialVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			login, password, ok := r.BasicAuth()
			if !ok || !verifier.Verify(login, password) {
				w.Header().Set("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", realm))
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), ContextKeyLogin, login)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Claims is the JWT claims structure used for bearer tokens.
type Claims struct {
	Login string `json:"login"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed HS256 JWT for the given login.
func GenerateToken(secret, login string) (string, error) {
	claims := &Claims{
		Login: login,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   login,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// BearerAuth returns middleware that validates HS256 bearer tokens from
// the Authorization header.
func BearerAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := extractBearer(r)
			if tokenStr == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyLogin, claims.Login)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoginFromContext extracts the authenticated login from the request
// context.
func LoginFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ContextKeyLogin).(string)
	return v
}

func extractBearer(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
