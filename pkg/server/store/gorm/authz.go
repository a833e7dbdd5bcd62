package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/labelforge/labelforge/pkg/server/store"
)

// Ensure AuthzStore implements store.AuthzStore
var _ store.AuthzStore = (*AuthzStore)(nil)

// AuthzStore implements store.AuthzStore using GORM. The lookups are the
// narrow single-column reads the policy core issues on every request, so
// they bypass model hydration and scan directly.
type AuthzStore struct {
	*PrincipalsStore
	db *gorm.DB
}

// NewAuthzStore creates a new AuthzStore
func NewAuthzStore(db *gorm.DB) *AuthzStore {
	return &AuthzStore{
		PrincipalsStore: NewPrincipalsStore(db),
		db:              db,
	}
}

// ProjectExists reports whether a project row exists.
func (s *AuthzStore) ProjectExists(ctx context.Context, projectID string) (bool, error) {
	var exists bool
	err := s.db.WithContext(ctx).
		Raw(`SELECT EXISTS(SELECT 1 FROM projects WHERE id = ?)`, projectID).
		Scan(&exists).Error
	return exists, err
}

// LabelProject returns the owning project of a label, or "" when absent.
func (s *AuthzStore) LabelProject(ctx context.Context, labelID string) (string, error) {
	var projectID string
	err := s.db.WithContext(ctx).
		Raw(`SELECT COALESCE((SELECT project_id FROM labels WHERE id = ?), '')`, labelID).
		Scan(&projectID).Error
	return projectID, err
}

// ImageProject returns the owning project of an image, or "" when absent.
func (s *AuthzStore) ImageProject(ctx context.Context, imageID string) (string, error) {
	var projectID string
	err := s.db.WithContext(ctx).
		Raw(`SELECT COALESCE((SELECT project_id FROM images WHERE id = ?), '')`, imageID).
		Scan(&projectID).Error
	return projectID, err
}

// AnnotationImage returns the owning image of an annotation, or "" when absent.
func (s *AuthzStore) AnnotationImage(ctx context.Context, annotationID string) (string, error) {
	var imageID string
	err := s.db.WithContext(ctx).
		Raw(`SELECT COALESCE((SELECT image_id FROM annotations WHERE id = ?), '')`, annotationID).
		Scan(&imageID).Error
	return imageID, err
}

// ProjectCreator returns a project's created_by, or "" when absent.
func (s *AuthzStore) ProjectCreator(ctx context.Context, projectID string) (string, error) {
	var createdBy string
	err := s.db.WithContext(ctx).
		Raw(`SELECT COALESCE((SELECT created_by FROM projects WHERE id = ?), '')`, projectID).
		Scan(&createdBy).Error
	return createdBy, err
}

// AnnotationCreator returns an annotation's created_by, or "" when absent.
func (s *AuthzStore) AnnotationCreator(ctx context.Context, annotationID string) (string, error) {
	var createdBy string
	err := s.db.WithContext(ctx).
		Raw(`SELECT COALESCE((SELECT created_by FROM annotations WHERE id = ?), '')`, annotationID).
		Scan(&createdBy).Error
	return createdBy, err
}
