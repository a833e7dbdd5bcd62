package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/labelforge/labelforge/pkg/model"
	"github.com/labelforge/labelforge/pkg/server/store"
)

// Ensure MembershipsStore implements store.MembershipsStore
var _ store.MembershipsStore = (*MembershipsStore)(nil)

// MembershipsStore implements store.MembershipsStore using GORM
type MembershipsStore struct {
	db *gorm.DB
}

// NewMembershipsStore creates a new MembershipsStore
func NewMembershipsStore(db *gorm.DB) *MembershipsStore {
	return &MembershipsStore{db: db}
}

// CreateMembership inserts a membership row. Racing duplicate enrollments
// are resolved by the primary key, surfaced as store.ErrUniqueViolation.
func (s *MembershipsStore) CreateMembership(ctx context.Context, membership *model.ProjectMembership) error {
	return mapError(s.db.WithContext(ctx).Create(membership).Error)
}

// ListMemberships returns the memberships of a project.
func (s *MembershipsStore) ListMemberships(ctx context.Context, projectID string) ([]model.ProjectMembership, error) {
	var memberships []model.ProjectMembership
	err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}
