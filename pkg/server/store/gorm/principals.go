package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/labelforge/labelforge/pkg/model"
	"github.com/labelforge/labelforge/pkg/server/store"
)

// Ensure PrincipalsStore implements store.PrincipalsStore
var _ store.PrincipalsStore = (*PrincipalsStore)(nil)

// PrincipalsStore implements store.PrincipalsStore using GORM
type PrincipalsStore struct {
	db *gorm.DB
}

// NewPrincipalsStore creates a new PrincipalsStore
func NewPrincipalsStore(db *gorm.DB) *PrincipalsStore {
	return &PrincipalsStore{db: db}
}

// FetchPrincipal returns a principal by id, or (nil, nil) when absent.
func (s *PrincipalsStore) FetchPrincipal(ctx context.Context, id string) (*model.Principal, error) {
	var principal model.Principal
	err := s.db.WithContext(ctx).First(&principal, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &principal, nil
}

// FetchPrincipalByLogin returns a principal by login, or (nil, nil) when absent.
func (s *PrincipalsStore) FetchPrincipalByLogin(ctx context.Context, login string) (*model.Principal, error) {
	var principal model.Principal
	err := s.db.WithContext(ctx).First(&principal, "login = ?", login).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &principal, nil
}

// CreatePrincipal inserts a principal and its credential in one transaction.
func (s *PrincipalsStore) CreatePrincipal(ctx context.Context, principal *model.Principal, passwordHash []byte) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(principal).Error; err != nil {
			return err
		}
		credential := model.Credential{
			PrincipalID:  principal.ID,
			PasswordHash: passwordHash,
		}
		return tx.Create(&credential).Error
	})
	return mapError(err)
}

// FetchPasswordHash returns the stored password hash for a principal.
func (s *PrincipalsStore) FetchPasswordHash(ctx context.Context, principalID string) ([]byte, error) {
	var credential model.Credential
	err := s.db.WithContext(ctx).First(&credential, "principal_id = ?", principalID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return credential.PasswordHash, nil
}

// UpdatePasswordHash replaces the stored password hash.
func (s *PrincipalsStore) UpdatePasswordHash(ctx context.Context, principalID string, hash []byte) error {
	result := s.db.WithContext(ctx).
		Model(&model.Credential{}).
		Where("principal_id = ?", principalID).
		Update("password_hash", hash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
