package authz

import (
	"context"

	"github.com/labelforge/labelforge/pkg/model"
)

// PrincipalReader is the storage surface the Resolver needs.
type PrincipalReader interface {
	// FetchPrincipal returns the principal row for an identity id, or
	// (nil, nil) when no such row exists.
	FetchPrincipal(ctx context.Context, id string) (*model.Principal, error)
}

// GraphReader is the storage surface the ownership Graph needs. Each
// method returns the parent id, or ("", nil) when the row is absent.
// These lookups read immutable foreign keys only.
type GraphReader interface {
	ProjectExists(ctx context.Context, projectID string) (bool, error)
	LabelProject(ctx context.Context, labelID string) (string, error)
	ImageProject(ctx context.Context, imageID string) (string, error)
	AnnotationImage(ctx context.Context, annotationID string) (string, error)
}

// RuleReader is the additional storage surface the Evaluator's rule
// functions need beyond the ownership graph.
type RuleReader interface {
	// ProjectCreator returns the creator principal id of a project, or
	// ("", nil) when the project is absent.
	ProjectCreator(ctx context.Context, projectID string) (string, error)

	// AnnotationCreator returns the created_by principal id of an
	// annotation, or ("", nil) when the annotation is absent.
	AnnotationCreator(ctx context.Context, annotationID string) (string, error)
}
