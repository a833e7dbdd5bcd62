package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/labelforge/labelforge/pkg/model"
	"github.com/labelforge/labelforge/pkg/server/store"
)

// Ensure LabelsStore implements store.LabelsStore
var _ store.LabelsStore = (*LabelsStore)(nil)

// LabelsStore implements store.LabelsStore using GORM
type LabelsStore struct {
	db *gorm.DB
}

// NewLabelsStore creates a new LabelsStore
func NewLabelsStore(db *gorm.DB) *LabelsStore {
	return &LabelsStore{db: db}
}

// CreateLabel inserts a label. Duplicate names within a project surface
// as store.ErrUniqueViolation.
func (s *LabelsStore) CreateLabel(ctx context.Context, label *model.Label) error {
	return mapError(s.db.WithContext(ctx).Create(label).Error)
}

// FetchLabel returns a label by id, or (nil, nil) when absent.
func (s *LabelsStore) FetchLabel(ctx context.Context, id string) (*model.Label, error) {
	var label model.Label
	err := s.db.WithContext(ctx).First(&label, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &label, nil
}

// ListLabels returns the labels of a project ordered by name.
func (s *LabelsStore) ListLabels(ctx context.Context, projectID string) ([]model.Label, error) {
	var labels []model.Label
	err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("name").
		Find(&labels).Error
	if err != nil {
		return nil, err
	}
	return labels, nil
}

// UpdateLabel updates name, color, and annotation type.
func (s *LabelsStore) UpdateLabel(ctx context.Context, label *model.Label) error {
	result := s.db.WithContext(ctx).
		Model(&model.Label{}).
		Where("id = ?", label.ID).
		Updates(map[string]interface{}{
			"name":            label.Name,
			"color":           label.Color,
			"annotation_type": label.Type,
		})
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteLabel removes a label; its annotations cascade in the schema.
func (s *LabelsStore) DeleteLabel(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&model.Label{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
