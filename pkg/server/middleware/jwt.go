package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/labelforge/labelforge/pkg/identity"
)

const bearerPrefix = "Bearer "

// SessionAuthenticator is middleware that validates session tokens
type SessionAuthenticator struct {
	key []byte
	ttl time.Duration
}

// NewSessionAuthenticator creates a new session authenticator middleware.
// Tokens are HS256-signed with the given key and expire after ttl.
func NewSessionAuthenticator(key []byte, ttl time.Duration) *SessionAuthenticator {
	return &SessionAuthenticator{key: key, ttl: ttl}
}

// IssueToken signs a session token for a principal.
func (s *SessionAuthenticator) IssueToken(principalID, login string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   principalID,
		ID:        login,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})
	return token.SignedString(s.key)
}

// ParseToken validates a session token and returns its claims.
func (s *SessionAuthenticator) ParseToken(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// Middleware returns an HTTP middleware that validates session tokens and
// stores the resolved identity on the request context.
func (s *SessionAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Authorization missing"))
			return
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Malformed authorization header"))
			return
		}

		claims, err := s.ParseToken(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid session token"))
			return
		}

		if claims.Subject == "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid session token"))
			return
		}

		var issuedAt time.Time
		if claims.IssuedAt != nil {
			issuedAt = claims.IssuedAt.Time
		}

		remote := r.RemoteAddr
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			remote = forwarded
		}

		id := identity.FromClaims(claims.Subject, claims.ID, issuedAt).WithRemoteIP(remote)
		r = r.WithContext(identity.Set(r.Context(), id))

		next.ServeHTTP(w, r)
	})
}
