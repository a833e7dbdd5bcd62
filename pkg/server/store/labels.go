package store

import (
	"context"

	"github.com/labelforge/labelforge/pkg/model"
)

// LabelsStore abstracts label storage operations
type LabelsStore interface {
	// CreateLabel inserts a label. A duplicate name within the project
	// fails with ErrUniqueViolation.
	CreateLabel(ctx context.Context, label *model.Label) error

	// FetchLabel returns a label by id, or (nil, nil) when absent.
	FetchLabel(ctx context.Context, id string) (*model.Label, error)

	// ListLabels returns the labels of a project ordered by name.
	ListLabels(ctx context.Context, projectID string) ([]model.Label, error)

	// UpdateLabel updates name, color, and annotation type.
	UpdateLabel(ctx context.Context, label *model.Label) error

	// DeleteLabel removes a label; its annotations cascade.
	DeleteLabel(ctx context.Context, id string) error
}
