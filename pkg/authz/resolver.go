package authz

import (
	"context"
	"fmt"

	"github.com/labelforge/labelforge/pkg/model"
)

// Resolver maps authenticated identities to stored principals.
type Resolver struct {
	principals PrincipalReader
}

// NewResolver creates a Resolver over the given principal storage.
func NewResolver(principals PrincipalReader) *Resolver {
	return &Resolver{principals: principals}
}

// Resolve returns the principal for an identity id. It fails with
// ErrUnauthenticated when the identity is empty or has no stored profile;
// profile creation belongs to the signup path, never to the resolver.
func (r *Resolver) Resolve(ctx context.Context, identity string) (*model.Principal, error) {
	if identity == "" {
		return nil, ErrUnauthenticated
	}

	principal, err := r.principals.FetchPrincipal(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("resolve principal: %w", err)
	}
	if principal == nil {
		return nil, ErrUnauthenticated
	}

	return principal, nil
}

// HasGlobalRole reports whether a principal holds the given global role.
// Pure predicate, no storage access.
func HasGlobalRole(p *model.Principal, role string) bool {
	return p != nil && p.Role == role
}

// IsReviewer reports whether a principal may act on annotations across
// projects it does not own.
func IsReviewer(p *model.Principal) bool {
	return HasGlobalRole(p, model.RoleReviewer) || HasGlobalRole(p, model.RoleAdmin)
}
