package store

import (
	"context"

	"github.com/labelforge/labelforge/pkg/model"
)

// ImagesStore abstracts image metadata storage operations
type ImagesStore interface {
	// CreateImage inserts an image row.
	CreateImage(ctx context.Context, image *model.Image) error

	// FetchImage returns an image by id, or (nil, nil) when absent.
	FetchImage(ctx context.Context, id string) (*model.Image, error)

	// ListImages returns the images of a project, optionally filtered by
	// status, newest first.
	ListImages(ctx context.Context, projectID, status string, limit, offset int) ([]model.Image, error)

	// CountImages returns the number of images matching the criteria.
	CountImages(ctx context.Context, projectID, status string) (int, error)

	// UpdateImage updates status and assignee.
	UpdateImage(ctx context.Context, image *model.Image) error

	// DeleteImage removes an image row; its annotations cascade. The blob
	// object is the caller's to clean up.
	DeleteImage(ctx context.Context, id string) error
}
