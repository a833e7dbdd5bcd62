package store

import "context"

// AuthzStore supplies the single-column reads the authorization core
// needs: principal lookup, parent foreign keys, and creator columns. Its
// method set satisfies authz.PrincipalReader, authz.GraphReader, and
// authz.RuleReader.
type AuthzStore interface {
	PrincipalsStore

	// ProjectExists reports whether a project row exists.
	ProjectExists(ctx context.Context, projectID string) (bool, error)

	// LabelProject returns the owning project of a label, or "" when the
	// label is absent.
	LabelProject(ctx context.Context, labelID string) (string, error)

	// ImageProject returns the owning project of an image, or "" when the
	// image is absent.
	ImageProject(ctx context.Context, imageID string) (string, error)

	// AnnotationImage returns the owning image of an annotation, or ""
	// when the annotation is absent.
	AnnotationImage(ctx context.Context, annotationID string) (string, error)

	// ProjectCreator returns a project's created_by, or "" when absent.
	ProjectCreator(ctx context.Context, projectID string) (string, error)

	// AnnotationCreator returns an annotation's created_by, or "" when
	// absent.
	AnnotationCreator(ctx context.Context, annotationID string) (string, error)
}
