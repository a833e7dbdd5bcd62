package store

import (
	"context"

	"github.com/labelforge/labelforge/pkg/model"
)

// ProjectsStore abstracts project storage operations
type ProjectsStore interface {
	// CreateProject inserts a project row.
	CreateProject(ctx context.Context, project *model.Project) error

	// FetchProject returns a project by id, or (nil, nil) when absent.
	FetchProject(ctx context.Context, id string) (*model.Project, error)

	// ListProjectsByCreator returns the projects created by a principal,
	// newest first.
	ListProjectsByCreator(ctx context.Context, creatorID string, limit, offset int) ([]model.Project, error)

	// UpdateProject updates name, description, and status. created_by is
	// immutable and never written.
	UpdateProject(ctx context.Context, project *model.Project) error

	// DeleteProject removes a project; labels, images, annotations, and
	// memberships cascade.
	DeleteProject(ctx context.Context, id string) error
}
