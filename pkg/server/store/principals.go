package store

import (
	"context"

	"github.com/labelforge/labelforge/pkg/model"
)

// PrincipalsStore abstracts principal and credential storage
type PrincipalsStore interface {
	// FetchPrincipal returns a principal by id, or (nil, nil) when absent.
	FetchPrincipal(ctx context.Context, id string) (*model.Principal, error)

	// FetchPrincipalByLogin returns a principal by login, or (nil, nil)
	// when absent.
	FetchPrincipalByLogin(ctx context.Context, login string) (*model.Principal, error)

	// CreatePrincipal inserts a principal and its credential in one
	// transaction. Duplicate logins fail with ErrUniqueViolation.
	CreatePrincipal(ctx context.Context, principal *model.Principal, passwordHash []byte) error

	// FetchPasswordHash returns the stored password hash for a principal.
	FetchPasswordHash(ctx context.Context, principalID string) ([]byte, error)

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, principalID string, hash []byte) error
}
