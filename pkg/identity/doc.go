// Package identity carries the authenticated identity of a request.
//
// The middleware package handles parsing and validating the raw session
// token. This package builds on that to provide the request-scoped
// identity: the claims plus the client address, stored on the request
// context.
//
//	id := identity.FromClaims(principalID, login, issuedAt)
//	ctx = identity.Set(ctx, id)
//
//	id, ok := identity.Get(ctx)
package identity
