package identity

import (
	"context"
	"net"
	"strings"
	"time"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Identity.
	Key ContextKey = "identity"
)

// Identity represents the authenticated identity for a request.
type Identity struct {
	// Token claims
	PrincipalID string
	Login       string
	IssuedAt    time.Time

	// Request context
	RemoteIP string
}

// FromClaims creates an Identity from validated session token claims.
func FromClaims(principalID, login string, issuedAt time.Time) *Identity {
	return &Identity{
		PrincipalID: principalID,
		Login:       login,
		IssuedAt:    issuedAt,
	}
}

// WithRemoteIP records the client address on the identity. The value may
// be a bare IP, a host:port pair, or an X-Forwarded-For list; only the
// first address is kept.
func (i *Identity) WithRemoteIP(remote string) *Identity {
	if idx := strings.IndexByte(remote, ','); idx >= 0 {
		remote = remote[:idx]
	}
	remote = strings.TrimSpace(remote)
	if host, _, err := net.SplitHostPort(remote); err == nil {
		remote = host
	}
	i.RemoteIP = remote
	return i
}

// Set stores the identity in a context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, Key, id)
}

// Get retrieves the identity from a context.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(Key).(*Identity)
	return id, ok && id != nil
}
