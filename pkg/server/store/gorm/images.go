package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/labelforge/labelforge/pkg/model"
	"github.com/labelforge/labelforge/pkg/server/store"
)

// Ensure ImagesStore implements store.ImagesStore
var _ store.ImagesStore = (*ImagesStore)(nil)

// ImagesStore implements store.ImagesStore using GORM
type ImagesStore struct {
	db *gorm.DB
}

// NewImagesStore creates a new ImagesStore
func NewImagesStore(db *gorm.DB) *ImagesStore {
	return &ImagesStore{db: db}
}

// CreateImage inserts an image row.
func (s *ImagesStore) CreateImage(ctx context.Context, image *model.Image) error {
	return mapError(s.db.WithContext(ctx).Create(image).Error)
}

// FetchImage returns an image by id, or (nil, nil) when absent.
func (s *ImagesStore) FetchImage(ctx context.Context, id string) (*model.Image, error) {
	var image model.Image
	err := s.db.WithContext(ctx).First(&image, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// ListImages returns the images of a project, optionally filtered by
// status, newest first.
func (s *ImagesStore) ListImages(ctx context.Context, projectID, status string, limit, offset int) ([]model.Image, error) {
	query := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var images []model.Image
	if err := query.Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// CountImages returns the number of images matching the criteria.
func (s *ImagesStore) CountImages(ctx context.Context, projectID, status string) (int, error) {
	query := s.db.WithContext(ctx).
		Model(&model.Image{}).
		Where("project_id = ?", projectID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// UpdateImage updates status and assignee.
func (s *ImagesStore) UpdateImage(ctx context.Context, image *model.Image) error {
	result := s.db.WithContext(ctx).
		Model(&model.Image{}).
		Where("id = ?", image.ID).
		Updates(map[string]interface{}{
			"status":      image.Status,
			"assigned_to": image.AssignedTo,
		})
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteImage removes an image row; annotations cascade in the schema.
func (s *ImagesStore) DeleteImage(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&model.Image{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
