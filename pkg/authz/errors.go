package authz

import "errors"

var (
	// ErrUnauthenticated means no valid identity was presented, or the
	// identity has no stored principal.
	ErrUnauthenticated = errors.New("authz: unauthenticated")

	// ErrEntityNotFound means the referenced row does not exist. Callers
	// outside the core must surface this the same way as a denial so that
	// unauthorized principals cannot probe for existence.
	ErrEntityNotFound = errors.New("authz: entity not found")

	// ErrDenied means rule evaluation returned Deny.
	ErrDenied = errors.New("authz: denied by policy")
)
