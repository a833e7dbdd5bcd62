package store

import (
	"context"

	"github.com/labelforge/labelforge/pkg/model"
)

// MembershipsStore abstracts project membership bookkeeping. Membership
// rows are not an authorization input; see pkg/authz.
type MembershipsStore interface {
	// CreateMembership inserts a membership. A duplicate
	// (project, user) pair fails with ErrUniqueViolation.
	CreateMembership(ctx context.Context, membership *model.ProjectMembership) error

	// ListMemberships returns the memberships of a project.
	ListMemberships(ctx context.Context, projectID string) ([]model.ProjectMembership, error)
}
