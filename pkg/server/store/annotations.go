package store

import (
	"context"

	"github.com/labelforge/labelforge/pkg/model"
)

// AnnotationsStore abstracts annotation storage operations
type AnnotationsStore interface {
	// CreateAnnotation inserts an annotation. A missing image or label
	// fails with ErrForeignKeyViolation.
	CreateAnnotation(ctx context.Context, annotation *model.Annotation) error

	// FetchAnnotation returns an annotation by id, or (nil, nil) when absent.
	FetchAnnotation(ctx context.Context, id string) (*model.Annotation, error)

	// ListAnnotations returns the annotations on an image, oldest first.
	ListAnnotations(ctx context.Context, imageID string) ([]model.Annotation, error)

	// UpdateAnnotation updates payload, label, reviewer, and the
	// tri-state approval. Any authorized writer may set any approval
	// value; no transition ordering is enforced.
	UpdateAnnotation(ctx context.Context, annotation *model.Annotation) error

	// DeleteAnnotation removes an annotation.
	DeleteAnnotation(ctx context.Context, id string) error
}
