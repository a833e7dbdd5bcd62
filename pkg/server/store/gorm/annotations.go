package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/labelforge/labelforge/pkg/model"
	"github.com/labelforge/labelforge/pkg/server/store"
)

// Ensure AnnotationsStore implements store.AnnotationsStore
var _ store.AnnotationsStore = (*AnnotationsStore)(nil)

// AnnotationsStore implements store.AnnotationsStore using GORM
type AnnotationsStore struct {
	db *gorm.DB
}

// NewAnnotationsStore creates a new AnnotationsStore
func NewAnnotationsStore(db *gorm.DB) *AnnotationsStore {
	return &AnnotationsStore{db: db}
}

// CreateAnnotation inserts an annotation. Missing parents surface as
// store.ErrForeignKeyViolation.
func (s *AnnotationsStore) CreateAnnotation(ctx context.Context, annotation *model.Annotation) error {
	return mapError(s.db.WithContext(ctx).Create(annotation).Error)
}

// FetchAnnotation returns an annotation by id, or (nil, nil) when absent.
func (s *AnnotationsStore) FetchAnnotation(ctx context.Context, id string) (*model.Annotation, error) {
	var annotation model.Annotation
	err := s.db.WithContext(ctx).First(&annotation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &annotation, nil
}

// ListAnnotations returns the annotations on an image, oldest first.
func (s *AnnotationsStore) ListAnnotations(ctx context.Context, imageID string) ([]model.Annotation, error) {
	var annotations []model.Annotation
	err := s.db.WithContext(ctx).
		Where("image_id = ?", imageID).
		Order("created_at").
		Find(&annotations).Error
	if err != nil {
		return nil, err
	}
	return annotations, nil
}

// UpdateAnnotation updates payload, label, reviewer, and approval.
// Approval is tri-state; NULL means pending.
func (s *AnnotationsStore) UpdateAnnotation(ctx context.Context, annotation *model.Annotation) error {
	result := s.db.WithContext(ctx).
		Model(&model.Annotation{}).
		Where("id = ?", annotation.ID).
		Updates(map[string]interface{}{
			"label_id":    annotation.LabelID,
			"payload":     annotation.Payload,
			"reviewed_by": annotation.ReviewedBy,
			"approved":    annotation.Approved,
		})
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteAnnotation removes an annotation.
func (s *AnnotationsStore) DeleteAnnotation(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&model.Annotation{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
