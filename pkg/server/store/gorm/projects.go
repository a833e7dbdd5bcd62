package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/labelforge/labelforge/pkg/model"
	"github.com/labelforge/labelforge/pkg/server/store"
)

// Ensure ProjectsStore implements store.ProjectsStore
var _ store.ProjectsStore = (*ProjectsStore)(nil)

// ProjectsStore implements store.ProjectsStore using GORM
type ProjectsStore struct {
	db *gorm.DB
}

// NewProjectsStore creates a new ProjectsStore
func NewProjectsStore(db *gorm.DB) *ProjectsStore {
	return &ProjectsStore{db: db}
}

// CreateProject inserts a project row.
func (s *ProjectsStore) CreateProject(ctx context.Context, project *model.Project) error {
	return mapError(s.db.WithContext(ctx).Create(project).Error)
}

// FetchProject returns a project by id, or (nil, nil) when absent.
func (s *ProjectsStore) FetchProject(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	err := s.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ListProjectsByCreator returns the projects created by a principal, newest first.
func (s *ProjectsStore) ListProjectsByCreator(ctx context.Context, creatorID string, limit, offset int) ([]model.Project, error) {
	query := s.db.WithContext(ctx).
		Where("created_by = ?", creatorID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var projects []model.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateProject updates name, description, and status. created_by is
// immutable and excluded from the write.
func (s *ProjectsStore) UpdateProject(ctx context.Context, project *model.Project) error {
	result := s.db.WithContext(ctx).
		Model(&model.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]interface{}{
			"name":        project.Name,
			"description": project.Description,
			"status":      project.Status,
		})
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteProject removes a project; dependent rows cascade in the schema.
func (s *ProjectsStore) DeleteProject(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
